package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/anton-mel/macro-extract/internal/model"
)

const reportPerm = 0o644

// ReportStore persists verification reports and annotation dumps.
type ReportStore interface {
	SaveVerification(path m.Path, report m.VerificationReport) error
	SaveAnnotations(path m.Path, annotations m.AnnotationMap) error
}

type reportStore struct {
	fs     SourceFSAdapter
	format m.ReportFormat
}

// NewReportStore constructs a ReportStore writing through fs in the given
// format.
func NewReportStore(fs SourceFSAdapter, format m.ReportFormat) ReportStore {
	return &reportStore{fs: fs, format: format}
}

// SaveVerification implements ReportStore.
func (s *reportStore) SaveVerification(path m.Path, report m.VerificationReport) error {
	data, err := EncodeVerification(s.format, report)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(path, data, reportPerm); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

// SaveAnnotations implements ReportStore.
func (s *reportStore) SaveAnnotations(path m.Path, annotations m.AnnotationMap) error {
	data, err := EncodeAnnotations(s.format, annotations)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(path, data, reportPerm); err != nil {
		slog.Error("Failed to write annotation dump", "path", path, "error", err)
		return fmt.Errorf("failed to write annotation dump %s: %w", path, err)
	}

	return nil
}

type verdictRecord struct {
	Function string `json:"function" yaml:"function"`
	Clause   string `json:"clause" yaml:"clause"`
	Outcome  string `json:"outcome" yaml:"outcome"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
}

type diagnosticRecord struct {
	Kind    string `json:"kind" yaml:"kind"`
	Subject string `json:"subject" yaml:"subject"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

type verificationRecord struct {
	Source      string             `json:"source" yaml:"source"`
	Skeleton    string             `json:"skeleton" yaml:"skeleton"`
	Summary     m.Summary          `json:"summary" yaml:"summary"`
	Verdicts    []verdictRecord    `json:"verdicts" yaml:"verdicts"`
	Diagnostics []diagnosticRecord `json:"diagnostics" yaml:"diagnostics"`
}

type kindRecord struct {
	Kind string   `json:"kind" yaml:"kind"`
	Args []string `json:"args" yaml:"args"`
}

type annotationRecord struct {
	Name        string       `json:"name" yaml:"name"`
	Declaration string       `json:"declaration" yaml:"declaration"`
	Annotations []kindRecord `json:"annotations" yaml:"annotations"`
}

// EncodeVerification serialises a report in the given format.
func EncodeVerification(format m.ReportFormat, report m.VerificationReport) ([]byte, error) {
	if format == m.FormatText || format == "" {
		return verificationText(report), nil
	}

	record := verificationRecord{
		Source:      report.Source.Origin.String(),
		Skeleton:    report.Source.Skeleton.String(),
		Summary:     report.Summary(),
		Verdicts:    make([]verdictRecord, 0, len(report.Verdicts)),
		Diagnostics: make([]diagnosticRecord, 0, len(report.Diagnostics)),
	}

	for _, v := range report.Verdicts {
		record.Verdicts = append(record.Verdicts, verdictRecord{
			Function: v.Function,
			Clause:   v.Clause.String(),
			Outcome:  v.Outcome.String(),
			Reason:   v.Reason,
			Line:     v.Line,
		})
	}

	for _, d := range report.Diagnostics {
		record.Diagnostics = append(record.Diagnostics, diagnosticRecord{
			Kind:    string(d.Kind),
			Subject: d.Subject,
			Detail:  d.Detail,
			Line:    d.Line,
		})
	}

	return encode(format, record)
}

// EncodeAnnotations serialises an annotation map in the given format.
func EncodeAnnotations(format m.ReportFormat, annotations m.AnnotationMap) ([]byte, error) {
	if format == m.FormatText || format == "" {
		return annotationsText(annotations), nil
	}

	records := make([]annotationRecord, 0, annotations.Len())

	for _, name := range annotations.Names() {
		entry, _ := annotations.Entry(name)
		record := annotationRecord{Name: name, Declaration: string(entry.DeclKind)}

		for _, kind := range entry.Kinds() {
			record.Annotations = append(record.Annotations, kindRecord{Kind: kind, Args: entry.Texts(kind)})
		}

		records = append(records, record)
	}

	return encode(format, records)
}

func encode(format m.ReportFormat, v any) ([]byte, error) {
	switch format {
	case m.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json report: %w", err)
		}

		return append(data, '\n'), nil

	case m.FormatYAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml report: %w", err)
		}

		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// annotationsText renders one block per qualified name:
//
//	Counter::inc {
//	   mutates: counter,total
//	}
func annotationsText(annotations m.AnnotationMap) []byte {
	blocks := make([]string, 0, annotations.Len())

	for _, name := range annotations.Names() {
		entry, _ := annotations.Entry(name)

		var b strings.Builder

		b.WriteString(name + " {\n")

		for _, kind := range entry.Kinds() {
			b.WriteString("   " + kind + ": " + strings.Join(entry.Texts(kind), ",") + "\n")
		}

		b.WriteString("}\n")
		blocks = append(blocks, b.String())
	}

	return []byte(strings.Join(blocks, "\n"))
}

func verificationText(report m.VerificationReport) []byte {
	var b strings.Builder

	for _, v := range report.Verdicts {
		line := fmt.Sprintf("%s %s %s", v.Function, v.Clause, v.Outcome)
		if v.Reason != "" {
			line += ": " + v.Reason
		}

		b.WriteString(line + "\n")
	}

	for _, d := range report.Diagnostics {
		b.WriteString(d.String() + "\n")
	}

	s := report.Summary()
	fmt.Fprintf(&b, "%d satisfied, %d unsatisfied, %d inconclusive, %d missing, %d skipped, %d malformed\n",
		s.Satisfied, s.Unsatisfied, s.Inconclusive, s.Missing, s.Skipped, s.Malformed)

	return []byte(b.String())
}

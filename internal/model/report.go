package model

// VerificationReport holds the verdicts of one verification run.
type VerificationReport struct {
	Source      Source
	Verdicts    []Verdict
	Diagnostics []Diagnostic
}

// Summary counts verdicts by outcome and diagnostics by kind.
type Summary struct {
	Satisfied    int `json:"satisfied" yaml:"satisfied"`
	Unsatisfied  int `json:"unsatisfied" yaml:"unsatisfied"`
	Inconclusive int `json:"inconclusive" yaml:"inconclusive"`
	Missing      int `json:"missing" yaml:"missing"`
	Skipped      int `json:"skipped" yaml:"skipped"`
	Malformed    int `json:"malformed" yaml:"malformed"`
}

// Summary computes the counts of the report.
func (r VerificationReport) Summary() Summary {
	var s Summary

	for _, v := range r.Verdicts {
		switch v.Outcome {
		case Satisfied:
			s.Satisfied++
		case Unsatisfied:
			s.Unsatisfied++
		case Inconclusive:
			s.Inconclusive++
		}
	}

	for _, d := range r.Diagnostics {
		switch d.Kind {
		case DiagnosticMissing:
			s.Missing++
		case DiagnosticSkipped:
			s.Skipped++
		case DiagnosticMalformed:
			s.Malformed++
		}
	}

	return s
}

// Failed reports whether any clause is unsatisfied or a declared function is
// missing.
func (s Summary) Failed() bool {
	return s.Unsatisfied > 0 || s.Missing > 0
}

// ReportFormat selects the serialisation of report artifacts.
type ReportFormat string

const (
	// FormatText is the line-oriented format described in the README.
	FormatText ReportFormat = "text"
	// FormatJSON serialises the report as indented JSON.
	FormatJSON ReportFormat = "json"
	// FormatYAML serialises the report as YAML.
	FormatYAML ReportFormat = "yaml"
)

// ReportMode selects what the watcher writes for an annotated skeleton.
type ReportMode string

const (
	// ModeVerify writes verdicts.
	ModeVerify ReportMode = "verify"
	// ModeDump writes the annotation map.
	ModeDump ReportMode = "dump"
)

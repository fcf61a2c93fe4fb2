package domain

import (
	"context"
	"fmt"
	"sort"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// Verifier checks the clauses of an annotation map against an
// implementation tree.
type Verifier interface {
	Verify(ctx context.Context, impl *m.File, annotations m.AnnotationMap) (m.VerificationReport, error)
}

type verifier struct{}

// NewVerifier creates a new Verifier instance.
func NewVerifier() Verifier {
	return &verifier{}
}

// Verify matches annotated declarations to implementation functions by
// qualified name and checks every clause. Entries are visited in skeleton
// source order, so the result is deterministic.
func (v *verifier) Verify(ctx context.Context, impl *m.File, annotations m.AnnotationMap) (m.VerificationReport, error) {
	if err := ctx.Err(); err != nil {
		return m.VerificationReport{}, err
	}

	functions := implementationFunctions(impl)

	var report m.VerificationReport

	for _, name := range annotations.Names() {
		if err := ctx.Err(); err != nil {
			return m.VerificationReport{}, err
		}

		entry, _ := annotations.Entry(name)
		annotated := inSourceOrder(entry.All())

		if entry.DeclKind != m.ItemFunction {
			report.Diagnostics = append(report.Diagnostics, skippedOnDeclaration(name, entry.DeclKind, annotated)...)
			continue
		}

		fn, ok := functions[name]
		if !ok {
			report.Diagnostics = append(report.Diagnostics, m.Diagnostic{
				Kind:    m.DiagnosticMissing,
				Subject: name,
				Line:    annotated[0].Line,
			})

			continue
		}

		for _, a := range annotated {
			verdicts, diagnostics := checkAnnotation(name, fn, a)
			report.Verdicts = append(report.Verdicts, verdicts...)
			report.Diagnostics = append(report.Diagnostics, diagnostics...)
		}
	}

	return report, nil
}

func checkAnnotation(name string, fn *m.Item, a m.Annotation) ([]m.Verdict, []m.Diagnostic) {
	var (
		verdicts    []m.Verdict
		diagnostics []m.Diagnostic
	)

	clauses, malformed := parseClauses(a)

	for _, detail := range malformed {
		diagnostics = append(diagnostics, m.Diagnostic{
			Kind:    m.DiagnosticMalformed,
			Subject: name,
			Detail:  detail,
			Line:    a.Line,
		})
	}

	for _, clause := range clauses {
		check, ok := clauseCheckers[clause.Kind]
		if !ok {
			diagnostics = append(diagnostics, m.Diagnostic{
				Kind:    m.DiagnosticSkipped,
				Subject: name,
				Detail:  clause.RawKind,
				Line:    a.Line,
			})

			continue
		}

		outcome, reason := check(fn, clause.Target)
		verdicts = append(verdicts, m.Verdict{
			Function: name,
			Clause:   clause,
			Outcome:  outcome,
			Reason:   reason,
			Line:     a.Line,
		})
	}

	return verdicts, diagnostics
}

// skippedOnDeclaration reports clause annotations placed on declarations
// that are not functions. Other attributes (derive, cfg, ...) are ignored.
func skippedOnDeclaration(name string, kind m.ItemKind, annotated []m.Annotation) []m.Diagnostic {
	var diagnostics []m.Diagnostic

	for _, a := range annotated {
		if !isClauseKind(a.Kind) {
			continue
		}

		diagnostics = append(diagnostics, m.Diagnostic{
			Kind:    m.DiagnosticSkipped,
			Subject: name,
			Detail:  fmt.Sprintf("%s on %s", a.Kind, kind),
			Line:    a.Line,
		})
	}

	return diagnostics
}

// implementationFunctions indexes the functions of impl by qualified name.
// The first declaration wins when a name is declared twice.
func implementationFunctions(impl *m.File) map[string]*m.Item {
	functions := make(map[string]*m.Item)

	Walk(impl, func(ev WalkEvent) {
		if ev.Kind != WalkEnter || ev.Item.Kind != m.ItemFunction {
			return
		}

		name := ev.Path.QualifiedName()
		if _, seen := functions[name]; !seen {
			functions[name] = ev.Item
		}
	})

	return functions
}

func inSourceOrder(annotations []m.Annotation) []m.Annotation {
	sort.SliceStable(annotations, func(i, j int) bool {
		return annotations[i].Order < annotations[j].Order
	})

	return annotations
}

package model

import "fmt"

// ClauseKind identifies a contract clause type.
type ClauseKind string

const (
	// ClauseMutates requires the function to assign to a field.
	ClauseMutates ClauseKind = "mutates"
	// ClauseCalls requires the function to call a function or macro.
	ClauseCalls ClauseKind = "calls"
	// ClauseUnknown preserves an annotation whose kind has no checker.
	ClauseUnknown ClauseKind = "unknown"
)

// Clause is one typed obligation derived from an annotation.
type Clause struct {
	Kind   ClauseKind
	Target string
	// RawKind and RawArg keep the annotation text the clause came from.
	RawKind string
	RawArg  string
}

// String renders the clause the way it is written in a skeleton.
func (c Clause) String() string {
	if c.Kind == ClauseUnknown {
		return fmt.Sprintf("%s(%s)", c.RawKind, c.RawArg)
	}

	return fmt.Sprintf("%s(%s)", c.Kind, c.Target)
}

// Outcome is the result of checking one clause.
type Outcome int

const (
	// Satisfied means syntactic evidence for the clause was found.
	Satisfied Outcome = iota
	// Unsatisfied means no evidence was found.
	Unsatisfied
	// Inconclusive means the syntactic check cannot decide.
	Inconclusive
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "Satisfied"
	case Unsatisfied:
		return "Unsatisfied"
	case Inconclusive:
		return "Inconclusive"
	default:
		return "Unknown"
	}
}

// MarshalText lets the outcome serialise as its name in JSON and YAML.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Verdict is the outcome of one (function, clause) pair.
type Verdict struct {
	Function string
	Clause   Clause
	Outcome  Outcome
	Reason   string
	Line     int // line of the annotation in the skeleton
}

// DiagnosticKind classifies non-verdict findings.
type DiagnosticKind string

const (
	// DiagnosticMissing marks a skeleton function without implementation.
	DiagnosticMissing DiagnosticKind = "missing"
	// DiagnosticSkipped marks an annotation that is not checked.
	DiagnosticSkipped DiagnosticKind = "skipped"
	// DiagnosticMalformed marks a payload that cannot become a clause.
	DiagnosticMalformed DiagnosticKind = "malformed"
)

// Diagnostic is a finding that is reported without asserting correctness.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string // qualified name
	Detail  string
	Line    int
}

// String renders the diagnostic as a report line.
func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticMissing:
		return fmt.Sprintf("%s: declared but missing", d.Subject)
	case DiagnosticSkipped:
		return fmt.Sprintf("%s: skipped: %s", d.Subject, d.Detail)
	default:
		return fmt.Sprintf("%s: %s: %s", d.Subject, d.Kind, d.Detail)
	}
}

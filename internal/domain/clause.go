package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// contractKind is the attribute kind that spells clauses as `kind: target`.
const contractKind = "contract"

var clauseKinds = map[string]m.ClauseKind{
	string(m.ClauseMutates): m.ClauseMutates,
	string(m.ClauseCalls):   m.ClauseCalls,
}

var identifierPattern = regexp.MustCompile(`^(r#)?[A-Za-z_][A-Za-z0-9_]*$`)

// isClauseKind reports whether annotations of kind produce checked clauses.
func isClauseKind(kind string) bool {
	_, ok := clauseKinds[kind]
	return ok || kind == contractKind
}

// parseClauses turns one annotation into clauses. Arguments that cannot form
// a clause are returned as malformed details.
func parseClauses(a m.Annotation) ([]m.Clause, []string) {
	if a.Malformed {
		return nil, []string{fmt.Sprintf("%s(%s): unbalanced arguments", a.Kind, a.Raw)}
	}

	if a.Kind == contractKind {
		return parseContract(a)
	}

	kind, ok := clauseKinds[a.Kind]
	if !ok {
		return []m.Clause{{Kind: m.ClauseUnknown, RawKind: a.Kind, RawArg: a.Text()}}, nil
	}

	return parseTargets(kind, a.Kind, a.Args)
}

func parseTargets(kind m.ClauseKind, rawKind string, args []string) ([]m.Clause, []string) {
	var (
		clauses   []m.Clause
		malformed []string
	)

	if len(args) == 0 {
		return nil, []string{rawKind + ": missing target"}
	}

	for _, arg := range args {
		target := strings.TrimSpace(arg)
		if !validTarget(kind, target) {
			malformed = append(malformed, fmt.Sprintf("%s(%s): target must be an identifier", rawKind, target))
			continue
		}

		clauses = append(clauses, m.Clause{Kind: kind, Target: target, RawKind: rawKind, RawArg: arg})
	}

	return clauses, malformed
}

// parseContract handles `contract(mutates: a, calls: b)`.
func parseContract(a m.Annotation) ([]m.Clause, []string) {
	var (
		clauses   []m.Clause
		malformed []string
	)

	if len(a.Args) == 0 {
		return nil, []string{contractKind + ": missing clauses"}
	}

	for _, arg := range a.Args {
		name, target, found := strings.Cut(arg, ":")
		name = strings.TrimSpace(name)

		if !found || !identifierPattern.MatchString(name) || strings.HasPrefix(target, ":") {
			malformed = append(malformed, fmt.Sprintf("%s(%s): expected kind: target", contractKind, strings.TrimSpace(arg)))
			continue
		}

		kind, ok := clauseKinds[name]
		if !ok {
			clauses = append(clauses, m.Clause{Kind: m.ClauseUnknown, RawKind: name, RawArg: strings.TrimSpace(target)})
			continue
		}

		c, bad := parseTargets(kind, name, []string{target})
		clauses = append(clauses, c...)
		malformed = append(malformed, bad...)
	}

	return clauses, malformed
}

func validTarget(kind m.ClauseKind, target string) bool {
	if kind == m.ClauseCalls {
		target = strings.TrimSuffix(target, "!")
	}

	return target != "_" && identifierPattern.MatchString(target)
}

// clauseCheckers maps each checked clause kind to its syntactic check.
var clauseCheckers = map[m.ClauseKind]func(fn *m.Item, target string) (m.Outcome, string){
	m.ClauseMutates: checkMutates,
	m.ClauseCalls:   checkCalls,
}

// checkMutates looks for an assignment whose place expression names field.
// A body that only borrows the field mutably cannot be decided.
func checkMutates(fn *m.Item, field string) (m.Outcome, string) {
	if !fn.HasBody() {
		return m.Inconclusive, "function has no body"
	}

	var assigned, borrowed *m.Node

	fn.Body.Inspect(func(n *m.Node) bool {
		switch n.Kind {
		case m.NodeAssignment, m.NodeCompoundAssignment:
			if assigned == nil && placeNames(n.Child("left"), field) {
				assigned = n
			}

		case m.NodeReference:
			if borrowed == nil && hasChild(n, m.NodeMutableSpecifier) && placeNames(n.Child("value"), field) {
				borrowed = n
			}
		}

		return true
	})

	switch {
	case assigned != nil:
		return m.Satisfied, fmt.Sprintf("%s assigned at line %d", field, assigned.Line)
	case borrowed != nil:
		return m.Inconclusive, fmt.Sprintf("%s borrowed mutably at line %d without assignment", field, borrowed.Line)
	default:
		return m.Unsatisfied, fmt.Sprintf("no assignment to %s", field)
	}
}

// checkCalls looks for a call or macro invocation of target. Inside macro
// arguments `target(..)` counts as a call.
func checkCalls(fn *m.Item, target string) (m.Outcome, string) {
	if !fn.HasBody() {
		return m.Unsatisfied, "function has no body"
	}

	name, isMacro := strings.CutSuffix(target, "!")

	var called *m.Node

	fn.Body.Inspect(func(n *m.Node) bool {
		if called != nil {
			return false
		}

		switch n.Kind {
		case m.NodeCallExpression:
			if !isMacro && calleeName(n.Child("function")) == name {
				called = n
			}

		case m.NodeMacroInvocation:
			if isMacro && calleeName(n.Child("macro")) == name {
				called = n
			}

		case m.NodeTokenTree:
			if !isMacro {
				called = tokenCall(n, name)
			}
		}

		return true
	})

	if called != nil {
		return m.Satisfied, fmt.Sprintf("%s called at line %d", target, called.Line)
	}

	return m.Unsatisfied, fmt.Sprintf("no call to %s", target)
}

// tokenCall returns the identifier name in tree that is directly followed by
// a parenthesised token tree.
func tokenCall(tree *m.Node, name string) *m.Node {
	for i := 0; i+1 < len(tree.Children); i++ {
		ident, next := tree.Children[i], tree.Children[i+1]
		if ident.Kind == m.NodeIdentifier && ident.Text == name &&
			next.Kind == m.NodeTokenTree && strings.HasPrefix(next.Text, "(") {
			return ident
		}
	}

	return nil
}

// placeNames reports whether the place expression n accesses field through
// a chain of field, index, deref and parenthesised expressions.
func placeNames(n *m.Node, field string) bool {
	for n != nil {
		switch n.Kind {
		case m.NodeFieldExpression:
			if f := n.Child("field"); f != nil && f.Text == field {
				return true
			}

			n = n.Child("value")

		case m.NodeIndexExpression, m.NodeUnaryExpression, m.NodeParenthesized:
			n = firstChild(n)

		default:
			return false
		}
	}

	return false
}

// calleeName returns the last path segment of a callee expression.
func calleeName(n *m.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case m.NodeIdentifier:
		return n.Text
	case m.NodeScopedIdentifier:
		return calleeName(n.Child("name"))
	case m.NodeFieldExpression:
		if f := n.Child("field"); f != nil {
			return f.Text
		}
	case m.NodeGenericFunction:
		return calleeName(n.Child("function"))
	}

	return ""
}

func hasChild(n *m.Node, kind string) bool {
	for _, child := range n.Children {
		if child.Kind == kind {
			return true
		}
	}

	return false
}

func firstChild(n *m.Node) *m.Node {
	for _, child := range n.Children {
		if child.Kind != m.NodeAttribute {
			return child
		}
	}

	return nil
}

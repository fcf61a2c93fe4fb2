package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/anton-mel/macro-extract/internal/model"
)

func verify(t *testing.T, impl, skeleton *m.File) m.VerificationReport {
	t.Helper()

	report, err := NewVerifier().Verify(context.Background(), impl, NewExtractor().Extract(skeleton))
	require.NoError(t, err)

	return report
}

func verdictLines(report m.VerificationReport) []string {
	lines := make([]string, 0, len(report.Verdicts))
	for _, v := range report.Verdicts {
		lines = append(lines, v.Function+" "+v.Clause.String()+" "+v.Outcome.String())
	}

	return lines
}

func diagnosticLines(report m.VerificationReport) []string {
	lines := make([]string, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		lines = append(lines, d.String())
	}

	return lines
}

func TestVerifier_Counter(t *testing.T) {
	report := verify(t, parseExample(t, "counter", "lib.rs"), parseExample(t, "counter", "lib.macros"))

	assert.Equal(t, []string{
		"Counter::increment mutates(value) Satisfied",
		"Counter::increment calls(log_change) Satisfied",
		"Counter::reset mutates(value) Unsatisfied",
		"Counter::peek calls(log_change) Unsatisfied",
		"log_change calls(println!) Satisfied",
	}, verdictLines(report))

	assert.Equal(t, []string{
		"Counter::peek: skipped: pure",
		"Counter::decrement: declared but missing",
	}, diagnosticLines(report))

	assert.Equal(t, m.Summary{Satisfied: 3, Unsatisfied: 2, Missing: 1, Skipped: 1}, report.Summary())
	assert.True(t, report.Summary().Failed())

	increment := report.Verdicts[0]
	assert.Equal(t, "value assigned at line 13", increment.Reason)
	assert.Equal(t, 6, increment.Line)
}

func TestVerifier_Deterministic(t *testing.T) {
	impl := parseExample(t, "counter", "lib.rs")
	skeleton := parseExample(t, "counter", "lib.macros")

	first := verify(t, impl, skeleton)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, verify(t, impl, skeleton))
	}
}

func TestVerifier_Mutates(t *testing.T) {
	impl := parseRust(t, `
struct S { a: u8, b: Vec<u8>, c: [u8; 2], d: Box<u8>, e: u8 }

impl S {
    fn assign(&mut self) { self.a = 1; }
    fn compound(&mut self) { self.a -= 1; }
    fn index(&mut self) { self.c[0] = 1; }
    fn deref(&mut self) { *self.d = 1; }
    fn nested(&mut self, o: &mut S) { (o.a) = 2; }
    fn method(&mut self) { self.b.push(1); }
    fn borrow(&mut self) { let r = &mut self.e; }
    fn in_macro(&mut self) { update!(self.a); }
    fn show(&self) { println!("{:?}", self.b); }
    fn size(&self) -> usize { self.b.len() }
    fn check(&self) { assert!(self.b.is_empty()); }
    fn local(&mut self) { let a = 1; }
    fn read(&self) -> u8 { self.a }
    fn closure(&mut self) { let f = || { self.a = 3; }; }
    fn declared(&mut self);
}
`)

	skeleton := parseRust(t, `
impl S {
    #[mutates(a)] fn assign(&mut self) {}
    #[mutates(a)] fn compound(&mut self) {}
    #[mutates(c)] fn index(&mut self) {}
    #[mutates(d)] fn deref(&mut self) {}
    #[mutates(a)] fn nested(&mut self, o: &mut S) {}
    #[mutates(b)] fn method(&mut self) {}
    #[mutates(e)] fn borrow(&mut self) {}
    #[mutates(a)] fn in_macro(&mut self) {}
    #[mutates(b)] fn show(&self) {}
    #[mutates(b)] fn size(&self) {}
    #[mutates(b)] fn check(&self) {}
    #[mutates(a)] fn local(&mut self) {}
    #[mutates(a)] fn read(&self) {}
    #[mutates(a)] fn closure(&mut self) {}
    #[mutates(a)] fn declared(&mut self) {}
}
`)

	assert.Equal(t, []string{
		"S::assign mutates(a) Satisfied",
		"S::compound mutates(a) Satisfied",
		"S::index mutates(c) Satisfied",
		"S::deref mutates(d) Satisfied",
		"S::nested mutates(a) Satisfied",
		"S::method mutates(b) Unsatisfied",
		"S::borrow mutates(e) Inconclusive",
		"S::in_macro mutates(a) Unsatisfied",
		"S::show mutates(b) Unsatisfied",
		"S::size mutates(b) Unsatisfied",
		"S::check mutates(b) Unsatisfied",
		"S::local mutates(a) Unsatisfied",
		"S::read mutates(a) Unsatisfied",
		"S::closure mutates(a) Satisfied",
		"S::declared mutates(a) Inconclusive",
	}, verdictLines(verify(t, impl, skeleton)))
}

func TestVerifier_Calls(t *testing.T) {
	impl := parseRust(t, `
mod util {
    pub fn helper() {}
}

fn plain() { helper(); }
fn scoped() { util::helper(); }
fn method(v: Vec<u8>) { v.helper(); }
fn generic() { helper::<u8>(); }
fn in_macro() { println!("{}", helper); }
fn in_macro_call() { println!("{}", helper(1)); }
fn in_assert() { assert_eq!(util::helper(1), 1); }
fn indexed() { println!("{}", helper[0]); }
fn macro_call() { println!("x"); }
fn qualified_macro() { std::println!("x"); }
fn none() { other(); }

struct S;

impl S {
    fn declared(&self);
}
`)

	skeleton := parseRust(t, `
#[calls(helper)] fn plain() {}
#[calls(helper)] fn scoped() {}
#[calls(helper)] fn method(v: Vec<u8>) {}
#[calls(helper)] fn generic() {}
#[calls(helper)] fn in_macro() {}
#[calls(helper)] fn in_macro_call() {}
#[calls(helper)] fn in_assert() {}
#[calls(helper)] fn indexed() {}
#[calls(println!)] fn macro_call() {}
#[calls(println!)] fn qualified_macro() {}
#[calls(helper, println!)] fn none() {}

impl S {
    #[calls(helper)] fn declared(&self) {}
}
`)

	report := verify(t, impl, skeleton)

	assert.Equal(t, []string{
		"plain calls(helper) Satisfied",
		"scoped calls(helper) Satisfied",
		"method calls(helper) Satisfied",
		"generic calls(helper) Satisfied",
		"in_macro calls(helper) Unsatisfied",
		"in_macro_call calls(helper) Satisfied",
		"in_assert calls(helper) Satisfied",
		"indexed calls(helper) Unsatisfied",
		"macro_call calls(println!) Satisfied",
		"qualified_macro calls(println!) Satisfied",
		"none calls(helper) Unsatisfied",
		"none calls(println!) Unsatisfied",
		"S::declared calls(helper) Unsatisfied",
	}, verdictLines(report))

	assert.Equal(t, "no call to println!", report.Verdicts[11].Reason)
	assert.Equal(t, "function has no body", report.Verdicts[12].Reason)
}

func TestVerifier_Diagnostics(t *testing.T) {
	impl := parseRust(t, `
struct S { a: u8 }

fn f(s: &mut S) { s.a = 1; }
`)

	skeleton := parseRust(t, `
#[mutates(a)]
struct S {}

#[requires(x > 0)]
#[mutates()]
#[mutates(a.b, _)]
#[calls('(')]
#[inline]
fn f(s: &mut S) {}

#[calls(g)]
fn gone() {}
`)

	report := verify(t, impl, skeleton)

	assert.Empty(t, report.Verdicts)
	assert.Equal(t, []string{
		"S: skipped: mutates on struct",
		"f: skipped: requires",
		"f: malformed: mutates: missing target",
		"f: malformed: mutates(a.b): target must be an identifier",
		"f: malformed: mutates(_): target must be an identifier",
		"f: malformed: calls('('): unbalanced arguments",
		"f: skipped: inline",
		"gone: declared but missing",
	}, diagnosticLines(report))

	assert.Equal(t, m.Summary{Missing: 1, Skipped: 3, Malformed: 4}, report.Summary())
}

func TestVerifier_ContractForm(t *testing.T) {
	impl := parseRust(t, `
struct S { a: u8 }

impl S {
    fn f(&mut self) { self.a = 1; g(); }
}

fn g() {}
`)

	skeleton := parseRust(t, `
impl S {
    #[contract(mutates: a, calls: g, ensures: ok, broken)]
    fn f(&mut self) {}
}
`)

	report := verify(t, impl, skeleton)

	assert.Equal(t, []string{
		"S::f mutates(a) Satisfied",
		"S::f calls(g) Satisfied",
	}, verdictLines(report))
	assert.Equal(t, []string{
		"S::f: malformed: contract(broken): expected kind: target",
		"S::f: skipped: ensures",
	}, diagnosticLines(report))
}

func TestVerifier_TraitImplMethods(t *testing.T) {
	impl := parseExample(t, "nested", "lib.rs")

	skeleton := parseRust(t, `
mod shapes {
    impl std::fmt::Display for Square {
        #[calls(write!)]
        fn fmt(&self, f: &mut std::fmt::Formatter<'_>) {}
    }
}

#[calls(inner)]
fn outer(x: i32) {}
`)

	assert.Equal(t, []string{
		"shapes::<Square as std::fmt::Display>::fmt calls(write!) Satisfied",
		"outer calls(inner) Satisfied",
	}, verdictLines(verify(t, impl, skeleton)))
}

func TestVerifier_EmptyAnnotations(t *testing.T) {
	report := verify(t, parseExample(t, "counter", "lib.rs"), parseExample(t, "empty", "lib.rs"))

	assert.Empty(t, report.Verdicts)
	assert.Empty(t, report.Diagnostics)
	assert.False(t, report.Summary().Failed())
}

func TestVerifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVerifier().Verify(ctx, &m.File{}, m.AnnotationMap{})
	assert.ErrorIs(t, err, context.Canceled)
}

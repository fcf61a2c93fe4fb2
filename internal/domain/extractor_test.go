package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/anton-mel/macro-extract/internal/model"
)

func TestExtractor_CounterSkeleton(t *testing.T) {
	annotations := NewExtractor().Extract(parseExample(t, "counter", "lib.macros"))

	assert.Equal(t, []string{
		"Counter::increment",
		"Counter::reset",
		"Counter::peek",
		"Counter::decrement",
		"log_change",
	}, annotations.Names())
	assert.Equal(t, 7, annotations.Count())

	assert.Equal(t, []string{"value"}, annotations.Get("Counter::increment", "mutates"))
	assert.Equal(t, []string{"log_change"}, annotations.Get("Counter::increment", "calls"))
	assert.Equal(t, []string{"println!"}, annotations.Get("log_change", "calls"))

	peek, ok := annotations.Entry("Counter::peek")
	require.True(t, ok)
	assert.Equal(t, m.ItemFunction, peek.DeclKind)
	assert.Equal(t, []string{"calls", "pure"}, peek.Kinds())

	pure := peek.Annotations("pure")
	require.Len(t, pure, 1)
	assert.Nil(t, pure[0].Args)
	assert.Empty(t, pure[0].Text())
}

func TestExtractor_GroupsByKindInSourceOrder(t *testing.T) {
	file := parseRust(t, `
#[calls(a)]
#[mutates(x, y)]
#[calls(b)]
#[contract::calls(c)]
fn f() {}
`)

	annotations := NewExtractor().Extract(file)

	entry, ok := annotations.Entry("f")
	require.True(t, ok)
	assert.Equal(t, []string{"calls", "mutates"}, entry.Kinds())
	assert.Equal(t, []string{"a", "b", "c"}, annotations.Get("f", "calls"))
	assert.Equal(t, []string{"x,y"}, annotations.Get("f", "mutates"))

	calls := entry.Annotations("calls")
	require.Len(t, calls, 3)
	assert.Less(t, calls[0].Order, calls[1].Order)
	assert.Less(t, calls[1].Order, calls[2].Order)
	assert.Equal(t, 2, calls[0].Line)
	assert.Equal(t, "f", calls[0].Owner)
}

func TestExtractor_Owners(t *testing.T) {
	file := parseRust(t, `
#![crate_level]

#[derive(Debug)]
struct S {
    #[serde(skip)]
    a: u8,
}

impl std::fmt::Display for S {
    #[calls(write!)]
    fn fmt(&self) {
        #[allow(unused)]
        let x = 1;
    }
}
`)

	annotations := NewExtractor().Extract(file)

	assert.Equal(t, []string{"crate", "S", "<S as std::fmt::Display>::fmt"}, annotations.Names())

	root, ok := annotations.Entry("crate")
	require.True(t, ok)
	assert.Equal(t, m.ItemModule, root.DeclKind)
	assert.Equal(t, []string{"crate_level"}, root.Kinds())

	s, ok := annotations.Entry("S")
	require.True(t, ok)
	assert.Equal(t, m.ItemStruct, s.DeclKind)
	assert.Equal(t, []string{"derive", "serde"}, s.Kinds())

	assert.Equal(t, []string{"write!"}, annotations.Get("<S as std::fmt::Display>::fmt", "calls"))
	assert.Equal(t, []string{"unused"}, annotations.Get("<S as std::fmt::Display>::fmt", "allow"))
}

func TestExtractor_MalformedPayload(t *testing.T) {
	file := parseRust(t, `
#[calls('(')]
fn f() {}
`)

	annotations := NewExtractor().Extract(file)

	entry, ok := annotations.Entry("f")
	require.True(t, ok)

	calls := entry.Annotations("calls")
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Malformed)
	assert.Equal(t, "'('", calls[0].Raw)
}

func TestExtractor_EmptyFile(t *testing.T) {
	annotations := NewExtractor().Extract(parseExample(t, "empty", "lib.rs"))

	assert.Zero(t, annotations.Len())
	assert.Zero(t, annotations.Count())
	assert.Empty(t, annotations.Get("anything", "calls"))
}

package domain

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton-mel/macro-extract/internal/adapter"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var ignoreSourcePositions = cmp.Options{
	cmpopts.IgnoreFields(m.File{}, "Path"),
	cmpopts.IgnoreFields(m.Item{}, "Offset", "Line"),
	cmpopts.EquateEmpty(),
}

func TestSkeletonGenerator_Counter(t *testing.T) {
	skeleton := NewSkeletonGenerator().Generate(parseExample(t, "counter", "lib.rs"))

	want := `pub struct Counter {}

impl Counter {
    pub fn new() {}

    pub fn increment(&mut self) {}

    pub fn reset(&mut self) {}

    pub fn peek(&self) {}
}

fn log_change(value: u64) {}
`

	assert.Equal(t, want, string(adapter.NewPrinter().Print(skeleton)))
}

func TestSkeletonGenerator_Nested(t *testing.T) {
	impl := parseExample(t, "nested", "lib.rs")
	skeleton := NewSkeletonGenerator().Generate(impl)

	assert.Equal(t, impl.Path, skeleton.Path)
	assert.Empty(t, skeleton.Attributes)
	require.Equal(t, []string{"module shapes", "function outer"}, kindNames(skeleton.Items))

	shapes := skeleton.Items[0]
	assert.Equal(t, "pub", shapes.Visibility)
	require.Equal(t, []string{
		"struct Square",
		"enum Shape",
		"impl Square",
		"impl Square",
	}, kindNames(shapes.Items))

	assert.Empty(t, shapes.Items[0].Fields)
	assert.Empty(t, shapes.Items[1].Items)

	display := shapes.Items[2]
	assert.Equal(t, "std::fmt::Display", display.Trait)
	require.Len(t, display.Items, 1)
	assert.Equal(t, "fmt", display.Items[0].Name)
	assert.Equal(t, "(&self, f: &mut std::fmt::Formatter<'_>)", display.Items[0].Params)
	assert.True(t, display.Items[0].HasBody())
	assert.Empty(t, display.Items[0].Body.Children)

	from := shapes.Items[3]
	assert.Equal(t, "<T: Clone>", from.Generics)
	assert.Equal(t, "From<T>", from.Trait)

	outer := skeleton.Items[1]
	assert.Empty(t, outer.Items, "items nested in bodies are not mirrored")
	assert.Empty(t, outer.Inner)
	assert.Empty(t, outer.Attributes)
}

func TestSkeletonGenerator_DoesNotModifyInput(t *testing.T) {
	impl := parseExample(t, "counter", "lib.rs")
	before := parseExample(t, "counter", "lib.rs")

	NewSkeletonGenerator().Generate(impl)

	if diff := cmp.Diff(before, impl); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}

func TestSkeletonGenerator_Idempotent(t *testing.T) {
	for _, name := range []string{"counter", "nested", "empty"} {
		t.Run(name, func(t *testing.T) {
			generator := NewSkeletonGenerator()
			printer := adapter.NewPrinter()

			first := generator.Generate(parseExample(t, name, "lib.rs"))
			printed := printer.Print(first)

			reparsed, err := adapter.NewRustFileAdapter().Parse(context.Background(), "lib.macros", printed)
			require.NoError(t, err, "generated skeleton must parse:\n%s", printed)

			second := generator.Generate(reparsed)

			if diff := cmp.Diff(first, second, ignoreSourcePositions); diff != "" {
				t.Fatalf("regenerated skeleton differs (-first +second):\n%s", diff)
			}

			assert.Equal(t, string(printed), string(printer.Print(second)))
		})
	}
}

func TestSkeletonGenerator_Nil(t *testing.T) {
	skeleton := NewSkeletonGenerator().Generate(nil)

	require.NotNil(t, skeleton)
	assert.Empty(t, skeleton.Items)
}

func kindNames(items []*m.Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, string(item.Kind)+" "+item.Name)
	}

	return names
}

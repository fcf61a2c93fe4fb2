package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclPath(t *testing.T) {
	t.Run("empty path is the crate root", func(t *testing.T) {
		var p DeclPath

		assert.Equal(t, RootName, p.QualifiedName())
		assert.Equal(t, Frame{Kind: ItemModule, Name: RootName}, p.Top())
		assert.Equal(t, 0, p.Depth())
	})

	t.Run("With does not modify the receiver", func(t *testing.T) {
		base := DeclPath{}.With(Frame{Kind: ItemModule, Name: "outer"})
		left := base.With(Frame{Kind: ItemStruct, Name: "A"})
		right := base.With(Frame{Kind: ItemStruct, Name: "B"})

		assert.Equal(t, "outer", base.QualifiedName())
		assert.Equal(t, "outer::A", left.QualifiedName())
		assert.Equal(t, "outer::B", right.QualifiedName())
		assert.Equal(t, 1, base.Depth())
	})

	t.Run("Frames returns a copy", func(t *testing.T) {
		p := DeclPath{}.With(Frame{Kind: ItemImpl, Name: "Counter"}).
			With(Frame{Kind: ItemFunction, Name: "inc"})

		frames := p.Frames()
		frames[0].Name = "changed"

		assert.Equal(t, "Counter::inc", p.String())
		assert.Equal(t, Frame{Kind: ItemFunction, Name: "inc"}, p.Top())
	})
}

package domain

import (
	m "github.com/anton-mel/macro-extract/internal/model"
)

// SkeletonGenerator derives the declaration skeleton of an implementation.
type SkeletonGenerator interface {
	Generate(file *m.File) *m.File
}

type skeletonGenerator struct{}

// NewSkeletonGenerator creates a new SkeletonGenerator instance.
func NewSkeletonGenerator() SkeletonGenerator {
	return &skeletonGenerator{}
}

// Generate keeps modules, structs, enums, impls and functions with their
// signatures. Bodies are emptied and attributes, fields, variants, traits and
// items nested in function bodies are dropped.
func (g *skeletonGenerator) Generate(file *m.File) *m.File {
	root := &m.Item{Kind: m.ItemModule}
	out := &m.File{}

	if file != nil {
		out.Path = file.Path
	}

	// A nil entry marks a subtree that is not mirrored.
	stack := []*m.Item{root}

	Walk(file, func(ev WalkEvent) {
		switch ev.Kind {
		case WalkEnter:
			parent := stack[len(stack)-1]
			if parent == nil || !mirrored(parent.Kind, ev.Item.Kind) {
				stack = append(stack, nil)
				return
			}

			clone := skeletonItem(ev.Item)
			parent.Items = append(parent.Items, clone)
			stack = append(stack, clone)

		case WalkLeave:
			stack = stack[:len(stack)-1]

		case WalkAnnotation:
		}
	})

	out.Items = root.Items

	return out
}

// mirrored reports whether a child declaration of the given kind appears in
// the skeleton of its parent.
func mirrored(parent, child m.ItemKind) bool {
	switch parent {
	case m.ItemModule:
		switch child {
		case m.ItemModule, m.ItemStruct, m.ItemEnum, m.ItemImpl, m.ItemFunction:
			return true
		}
	case m.ItemImpl:
		return child == m.ItemFunction
	}

	return false
}

func skeletonItem(item *m.Item) *m.Item {
	clone := &m.Item{
		Kind:       item.Kind,
		Name:       item.Name,
		Trait:      item.Trait,
		Visibility: item.Visibility,
		Generics:   item.Generics,
	}

	if item.Kind == m.ItemFunction {
		clone.Params = item.Params
		clone.Body = m.EmptyBlock()
	}

	return clone
}

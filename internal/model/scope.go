package model

import "strings"

// ItemKind is the kind of a declaration in the syntax tree. It doubles as the
// kind of a scope frame.
type ItemKind string

const (
	// ItemModule is a `mod name { ... }` declaration.
	ItemModule ItemKind = "module"
	// ItemStruct is a struct or union declaration.
	ItemStruct ItemKind = "struct"
	// ItemEnum is an enum declaration.
	ItemEnum ItemKind = "enum"
	// ItemVariant is a variant of an enum.
	ItemVariant ItemKind = "variant"
	// ItemImpl is an impl block; its frame name is the implementing type.
	ItemImpl ItemKind = "impl"
	// ItemTrait is a trait declaration.
	ItemTrait ItemKind = "trait"
	// ItemFunction is a free function, method or function signature.
	ItemFunction ItemKind = "function"
	// ItemOther covers named items without contract surface (const, static,
	// type alias, macro_rules) and unnamed ones (use, extern crate).
	ItemOther ItemKind = "other"
)

// RootName is the qualified name of the synthetic scope that owns
// annotations declared before or outside of any declaration.
const RootName = "crate"

// PathSeparator joins frame names into a qualified name.
const PathSeparator = "::"

// Frame is one level of lexical nesting.
type Frame struct {
	Kind ItemKind
	Name string
}

// DeclPath is an ordered, immutable sequence of frames. Use With to derive
// the path of a nested declaration.
type DeclPath struct {
	frames []Frame
}

// With returns a new path with frame appended. The receiver is not modified.
func (p DeclPath) With(frame Frame) DeclPath {
	frames := make([]Frame, len(p.frames), len(p.frames)+1)
	copy(frames, p.frames)

	return DeclPath{frames: append(frames, frame)}
}

// Depth returns the number of frames.
func (p DeclPath) Depth() int {
	return len(p.frames)
}

// Frames returns a copy of the frames from outermost to innermost.
func (p DeclPath) Frames() []Frame {
	out := make([]Frame, len(p.frames))
	copy(out, p.frames)

	return out
}

// Top returns the innermost frame. For the root path it returns a module
// frame named RootName.
func (p DeclPath) Top() Frame {
	if len(p.frames) == 0 {
		return Frame{Kind: ItemModule, Name: RootName}
	}

	return p.frames[len(p.frames)-1]
}

// QualifiedName joins the frame names with PathSeparator.
func (p DeclPath) QualifiedName() string {
	if len(p.frames) == 0 {
		return RootName
	}

	names := make([]string, len(p.frames))
	for i, frame := range p.frames {
		names[i] = frame.Name
	}

	return strings.Join(names, PathSeparator)
}

// String implements fmt.Stringer.
func (p DeclPath) String() string {
	return p.QualifiedName()
}

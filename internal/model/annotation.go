package model

import "strings"

// Annotation is one attribute occurrence attributed to a declaration.
type Annotation struct {
	Owner string // qualified name of the owning declaration
	Kind  string // last path segment of the attribute name
	// Args are the argument tokens of the parenthesised payload, with the
	// single space following each separating comma removed.
	Args      []string
	Malformed bool   // payload is unbalanced (e.g. unterminated string)
	Raw       string // payload as written
	Order     int    // position among all annotations of the file
	Line      int
}

// Text returns the normalised argument text: the tokens joined by ",".
func (a Annotation) Text() string {
	return strings.Join(a.Args, ",")
}

// AnnotationEntry groups the annotations of one declaration by kind.
type AnnotationEntry struct {
	Name     string
	DeclKind ItemKind
	kinds    []string
	byKind   map[string][]Annotation
}

// Kinds returns the annotation kinds in first-seen order.
func (e *AnnotationEntry) Kinds() []string {
	out := make([]string, len(e.kinds))
	copy(out, e.kinds)

	return out
}

// Annotations returns the annotations of a kind in source order.
func (e *AnnotationEntry) Annotations(kind string) []Annotation {
	list := e.byKind[kind]
	out := make([]Annotation, len(list))
	copy(out, list)

	return out
}

// Texts returns the argument texts of a kind in source order.
func (e *AnnotationEntry) Texts(kind string) []string {
	list := e.byKind[kind]
	out := make([]string, len(list))

	for i, a := range list {
		out[i] = a.Text()
	}

	return out
}

// All returns every annotation of the entry, grouped by kind in first-seen
// order.
func (e *AnnotationEntry) All() []Annotation {
	var out []Annotation
	for _, kind := range e.kinds {
		out = append(out, e.byKind[kind]...)
	}

	return out
}

// AnnotationMap maps qualified names to their annotations. It is immutable
// once built; use AnnotationMapBuilder to construct one.
type AnnotationMap struct {
	names   []string
	entries map[string]*AnnotationEntry
}

// Names returns the qualified names in first-seen order.
func (m AnnotationMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// Entry returns the entry of a qualified name.
func (m AnnotationMap) Entry(name string) (*AnnotationEntry, bool) {
	entry, ok := m.entries[name]
	return entry, ok
}

// Get returns the argument texts for (name, kind).
func (m AnnotationMap) Get(name, kind string) []string {
	entry, ok := m.entries[name]
	if !ok {
		return nil
	}

	return entry.Texts(kind)
}

// Len returns the number of declarations carrying annotations.
func (m AnnotationMap) Len() int {
	return len(m.names)
}

// Count returns the total number of annotations.
func (m AnnotationMap) Count() int {
	total := 0
	for _, entry := range m.entries {
		for _, list := range entry.byKind {
			total += len(list)
		}
	}

	return total
}

// AnnotationMapBuilder accumulates annotations in visitation order.
type AnnotationMapBuilder struct {
	m     AnnotationMap
	order int
	done  bool
}

// NewAnnotationMapBuilder returns an empty builder.
func NewAnnotationMapBuilder() *AnnotationMapBuilder {
	return &AnnotationMapBuilder{
		m: AnnotationMap{entries: make(map[string]*AnnotationEntry)},
	}
}

// Add appends an annotation for owner. Annotations of the same kind on the
// same owner are kept in call order. Add panics after Build.
func (b *AnnotationMapBuilder) Add(owner string, declKind ItemKind, a Annotation) {
	if b.done {
		panic("model: AnnotationMapBuilder.Add called after Build")
	}

	entry, ok := b.m.entries[owner]
	if !ok {
		entry = &AnnotationEntry{
			Name:     owner,
			DeclKind: declKind,
			byKind:   make(map[string][]Annotation),
		}
		b.m.entries[owner] = entry
		b.m.names = append(b.m.names, owner)
	}

	if _, seen := entry.byKind[a.Kind]; !seen {
		entry.kinds = append(entry.kinds, a.Kind)
	}

	a.Owner = owner
	a.Order = b.order
	b.order++

	entry.byKind[a.Kind] = append(entry.byKind[a.Kind], a)
}

// Build freezes the builder and returns the map.
func (b *AnnotationMapBuilder) Build() AnnotationMap {
	b.done = true
	return b.m
}

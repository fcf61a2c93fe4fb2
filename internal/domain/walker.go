// Package domain contains the contract extraction and verification logic.
package domain

import (
	"sort"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// WalkEventKind is the kind of a traversal event.
type WalkEventKind int

const (
	// WalkEnter is emitted before the members of a declaration are visited.
	WalkEnter WalkEventKind = iota
	// WalkAnnotation is emitted once per attribute.
	WalkAnnotation
	// WalkLeave is emitted after the members of a declaration were visited.
	WalkLeave
)

// String returns a string representation of the event kind.
func (k WalkEventKind) String() string {
	switch k {
	case WalkEnter:
		return "enter"
	case WalkAnnotation:
		return "annotation"
	case WalkLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// WalkEvent is reported by Walk. Path is the scope the event belongs to:
// for enter and leave the path of Item, for annotations the path of the
// owning declaration. Item is nil for annotations owned by the crate root.
type WalkEvent struct {
	Kind      WalkEventKind
	Path      m.DeclPath
	Item      *m.Item
	Attribute m.Attribute
}

// WalkFunc receives traversal events.
type WalkFunc func(WalkEvent)

// Walk traverses file depth-first in source order.
func Walk(file *m.File, fn WalkFunc) {
	if file == nil {
		return
	}

	walkMembers(m.DeclPath{}, nil, file.Attributes, file.Items, fn)
}

// Events collects the events of a traversal.
func Events(file *m.File) []WalkEvent {
	var events []WalkEvent

	Walk(file, func(ev WalkEvent) {
		events = append(events, ev)
	})

	return events
}

func walkItem(parent m.DeclPath, item *m.Item, fn WalkFunc) {
	path := parent.With(m.Frame{Kind: item.Kind, Name: item.FrameName()})

	fn(WalkEvent{Kind: WalkEnter, Path: path, Item: item})

	for _, attr := range item.Attributes {
		fn(WalkEvent{Kind: WalkAnnotation, Path: path, Item: item, Attribute: attr})
	}

	attrs := make([]m.Attribute, 0, len(item.Inner))
	for _, field := range item.Fields {
		attrs = append(attrs, field.Attributes...)
	}

	attrs = append(attrs, item.Inner...)

	walkMembers(path, item, attrs, item.Items, fn)

	fn(WalkEvent{Kind: WalkLeave, Path: path, Item: item})
}

// walkMembers visits the attributes owned by a scope and its nested items,
// interleaved by source offset.
func walkMembers(path m.DeclPath, owner *m.Item, attrs []m.Attribute, items []*m.Item, fn WalkFunc) {
	sorted := make([]m.Attribute, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	a, i := 0, 0
	for a < len(sorted) || i < len(items) {
		if i >= len(items) || (a < len(sorted) && sorted[a].Offset < items[i].Offset) {
			fn(WalkEvent{Kind: WalkAnnotation, Path: path, Item: owner, Attribute: sorted[a]})
			a++

			continue
		}

		walkItem(path, items[i], fn)
		i++
	}
}

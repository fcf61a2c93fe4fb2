package model

import "strings"

// File is a parsed source file.
type File struct {
	Path Path
	// Attributes holds inner attributes (`#![...]`) and attributes that are
	// not followed by any item at file level.
	Attributes []Attribute
	Items      []*Item
}

// Item is a declaration. Which fields are populated depends on Kind.
type Item struct {
	Kind       ItemKind
	Name       string // for impls: normalised text of the implementing type
	Trait      string // impls only: normalised text of the implemented trait
	Visibility string // e.g. "pub", "pub(crate)"
	Generics   string // e.g. "<T: Clone>"
	Params     string // functions only, including the parentheses
	// Attributes are the outer attributes written directly above the item.
	Attributes []Attribute
	// Inner holds attributes found inside the item's body that are not
	// attached to a nested declaration: inner attributes, attributes on
	// statements and dangling attributes.
	Inner  []Attribute
	Fields []Field
	Items  []*Item
	// Body is the function body. It is nil for declarations without a body.
	Body   *Node
	Offset int
	Line   int
}

// HasBody reports whether the function has a body block.
func (i *Item) HasBody() bool {
	return i.Body != nil
}

// FrameName returns the name used for the item's scope frame. Trait impls use
// the qualified-path form `<Type as Trait>`.
func (i *Item) FrameName() string {
	if i.Kind == ItemImpl && i.Trait != "" {
		return "<" + i.Name + " as " + i.Trait + ">"
	}

	return i.Name
}

// Field is a struct or variant field. Tuple fields are named by position.
type Field struct {
	Name       string
	Attributes []Attribute
	Offset     int
}

// Attribute is a `#[path(args)]`, `#[path = value]` or `#[path]` marker.
type Attribute struct {
	Path string // e.g. "contract::mutates"
	// Args is the raw text between the parentheses of a parenthesised
	// payload. HasArgs distinguishes `#[x()]` from `#[x]`.
	Args    string
	HasArgs bool
	Value   string // text after `=` for `#[path = value]`
	Inner   bool   // `#![...]`
	Offset  int
	Line    int
}

// Kind returns the last path segment of the attribute name.
func (a Attribute) Kind() string {
	if idx := strings.LastIndex(a.Path, PathSeparator); idx >= 0 {
		return a.Path[idx+len(PathSeparator):]
	}

	return a.Path
}

// Node is a generic syntax node used for function bodies. Leaf nodes carry
// their source text and token trees their opening delimiter; Field names the
// role of the node in its parent (e.g. "left", "function", "field").
type Node struct {
	Kind     string
	Field    string
	Text     string
	Children []*Node
	// Attr is set for attribute nodes (Kind == NodeAttribute).
	Attr   *Attribute
	Offset int
	Line   int
}

// Node kinds produced by the parser adapter that the domain relies on. They
// follow the tree-sitter Rust grammar.
const (
	NodeBlock              = "block"
	NodeAttribute          = "attribute_item"
	NodeAssignment         = "assignment_expression"
	NodeCompoundAssignment = "compound_assignment_expr"
	NodeFieldExpression    = "field_expression"
	NodeIndexExpression    = "index_expression"
	NodeUnaryExpression    = "unary_expression"
	NodeParenthesized      = "parenthesized_expression"
	NodeReference          = "reference_expression"
	NodeMutableSpecifier   = "mutable_specifier"
	NodeCallExpression     = "call_expression"
	NodeMacroInvocation    = "macro_invocation"
	NodeScopedIdentifier   = "scoped_identifier"
	NodeGenericFunction    = "generic_function"
	NodeIdentifier         = "identifier"
	NodeFieldIdentifier    = "field_identifier"
	NodeTokenTree          = "token_tree"
	// NodeItem stands in for a declaration nested in a body; the declaration
	// itself lives in Item.Items.
	NodeItem = "nested_item"
)

// Child returns the first direct child with the given field name.
func (n *Node) Child(field string) *Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		if child.Field == field {
			return child
		}
	}

	return nil
}

// Inspect traverses the node tree depth-first, calling fn for every node.
// When fn returns false the children of that node are skipped.
func (n *Node) Inspect(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, child := range n.Children {
		child.Inspect(fn)
	}
}

// EmptyBlock returns an empty body block.
func EmptyBlock() *Node {
	return &Node{Kind: NodeBlock}
}

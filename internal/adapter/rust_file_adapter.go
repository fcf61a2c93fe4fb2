// Package adapter contains the infrastructure adapters of the contract checker.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// RustFileAdapter turns Rust source text into the declaration tree the domain
// layer walks.
type RustFileAdapter interface {
	// Parse builds the tree for src. It returns a *m.SyntaxError when the
	// source does not parse cleanly.
	Parse(ctx context.Context, path m.Path, src []byte) (*m.File, error)
}

type rustFileAdapter struct{}

// NewRustFileAdapter constructs a RustFileAdapter backed by tree-sitter.
func NewRustFileAdapter() RustFileAdapter {
	return &rustFileAdapter{}
}

// Parse implements RustFileAdapter.
func (a *rustFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*m.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		slog.Error("Failed to parse rust source", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(path, root, src)
	}

	c := &converter{src: src}
	items, loose := c.declarations(root)

	return &m.File{
		Path:       path,
		Attributes: loose,
		Items:      items,
	}, nil
}

// syntaxError reports the first ERROR or MISSING node in document order.
func syntaxError(path m.Path, root *sitter.Node, src []byte) error {
	bad := firstError(root)
	if bad == nil {
		bad = root
	}

	snippet := bad.Content(src)
	if idx := strings.IndexByte(snippet, '\n'); idx >= 0 {
		snippet = snippet[:idx]
	}

	const maxSnippet = 40
	if len(snippet) > maxSnippet {
		snippet = snippet[:maxSnippet]
	}

	if bad.IsMissing() {
		snippet = "missing " + bad.Type()
	}

	point := bad.StartPoint()

	return &m.SyntaxError{
		Path:    path,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Snippet: strings.TrimSpace(snippet),
	}
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	if !n.HasError() {
		return nil
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}

	return nil
}

// converter maps tree-sitter nodes onto the model tree.
type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(c.src)
}

// declarations converts the children of a source_file or declaration_list.
// Outer attributes are attached to the item that follows them; inner
// attributes, attributes on unnamed items and trailing attributes are
// returned as loose.
func (c *converter) declarations(container *sitter.Node) ([]*m.Item, []m.Attribute) {
	var (
		items   []*m.Item
		loose   []m.Attribute
		pending []m.Attribute
	)

	for i := 0; i < int(container.NamedChildCount()); i++ {
		child := container.NamedChild(i)

		switch child.Type() {
		case "attribute_item":
			pending = append(pending, c.attribute(child, false))
		case "inner_attribute_item":
			loose = append(loose, c.attribute(child, true))
		case "line_comment", "block_comment":
		default:
			item := c.item(child)
			if item == nil {
				loose = append(loose, pending...)
				pending = nil

				continue
			}

			item.Attributes = pending
			pending = nil
			items = append(items, item)
		}
	}

	return items, append(loose, pending...)
}

// item converts a declaration node. It returns nil for nodes that do not
// declare a named item.
func (c *converter) item(n *sitter.Node) *m.Item {
	item := &m.Item{
		Offset:     int(n.StartByte()),
		Line:       int(n.StartPoint().Row) + 1,
		Visibility: c.visibility(n),
		Generics:   closeList(normalize(c.text(n.ChildByFieldName("type_parameters")))),
	}

	switch n.Type() {
	case "mod_item":
		item.Kind = m.ItemModule
		item.Name = c.text(n.ChildByFieldName("name"))

		if body := n.ChildByFieldName("body"); body != nil {
			item.Items, item.Inner = c.declarations(body)
		}

	case "struct_item", "union_item":
		item.Kind = m.ItemStruct
		item.Name = c.text(n.ChildByFieldName("name"))
		item.Fields, item.Inner = c.fields(n.ChildByFieldName("body"))

	case "enum_item":
		item.Kind = m.ItemEnum
		item.Name = c.text(n.ChildByFieldName("name"))
		item.Items, item.Inner = c.variants(n.ChildByFieldName("body"))

	case "impl_item":
		item.Kind = m.ItemImpl
		item.Name = normalize(c.text(n.ChildByFieldName("type")))
		item.Trait = normalize(c.text(n.ChildByFieldName("trait")))

		if body := n.ChildByFieldName("body"); body != nil {
			item.Items, item.Inner = c.declarations(body)
		}

	case "trait_item":
		item.Kind = m.ItemTrait
		item.Name = c.text(n.ChildByFieldName("name"))

		if body := n.ChildByFieldName("body"); body != nil {
			item.Items, item.Inner = c.declarations(body)
		}

	case "function_item", "function_signature_item":
		item.Kind = m.ItemFunction
		item.Name = c.text(n.ChildByFieldName("name"))
		item.Params = closeList(normalize(c.text(n.ChildByFieldName("parameters"))))

		if body := n.ChildByFieldName("body"); body != nil {
			item.Body = c.node(body, "", item)
		}

	case "const_item", "static_item", "type_item", "associated_type", "macro_definition":
		item.Kind = m.ItemOther
		item.Name = c.text(n.ChildByFieldName("name"))

	default:
		return nil
	}

	if item.Name == "" {
		return nil
	}

	return item
}

func (c *converter) visibility(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "visibility_modifier" {
			return normalize(c.text(child))
		}
	}

	return ""
}

// fields converts a field_declaration_list or ordered_field_declaration_list.
func (c *converter) fields(list *sitter.Node) ([]m.Field, []m.Attribute) {
	if list == nil {
		return nil, nil
	}

	var (
		fields  []m.Field
		pending []m.Attribute
	)

	position := 0

	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)

		switch {
		case child.Type() == "attribute_item":
			pending = append(pending, c.attribute(child, false))
		case child.Type() == "field_declaration":
			fields = append(fields, m.Field{
				Name:       c.text(child.ChildByFieldName("name")),
				Attributes: pending,
				Offset:     int(child.StartByte()),
			})
			pending = nil
		case list.Type() == "ordered_field_declaration_list" && list.FieldNameForChild(namedIndex(list, i)) == "type":
			fields = append(fields, m.Field{
				Name:       strconv.Itoa(position),
				Attributes: pending,
				Offset:     int(child.StartByte()),
			})
			pending = nil
			position++
		}
	}

	return fields, pending
}

// namedIndex maps the i-th named child of n to its index among all children.
func namedIndex(n *sitter.Node, named int) int {
	seen := 0

	for i := 0; i < int(n.ChildCount()); i++ {
		if !n.Child(i).IsNamed() {
			continue
		}

		if seen == named {
			return i
		}

		seen++
	}

	return -1
}

// variants converts an enum_variant_list into variant items.
func (c *converter) variants(list *sitter.Node) ([]*m.Item, []m.Attribute) {
	if list == nil {
		return nil, nil
	}

	var (
		variants []*m.Item
		pending  []m.Attribute
	)

	for i := 0; i < int(list.NamedChildCount()); i++ {
		child := list.NamedChild(i)

		switch child.Type() {
		case "attribute_item":
			pending = append(pending, c.attribute(child, false))
		case "enum_variant":
			variant := &m.Item{
				Kind:       m.ItemVariant,
				Name:       c.text(child.ChildByFieldName("name")),
				Attributes: pending,
				Offset:     int(child.StartByte()),
				Line:       int(child.StartPoint().Row) + 1,
			}
			variant.Fields, variant.Inner = c.fields(child.ChildByFieldName("body"))
			variants = append(variants, variant)
			pending = nil
		}
	}

	return variants, pending
}

// attribute converts an attribute_item or inner_attribute_item.
func (c *converter) attribute(n *sitter.Node, inner bool) m.Attribute {
	attr := m.Attribute{
		Inner:  inner,
		Offset: int(n.StartByte()),
		Line:   int(n.StartPoint().Row) + 1,
	}

	var meta *sitter.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "attribute" || child.Type() == "meta_item" {
			meta = child
			break
		}
	}

	if meta == nil || meta.NamedChildCount() == 0 {
		return attr
	}

	attr.Path = strings.Join(strings.Fields(c.text(meta.NamedChild(0))), "")

	if value := meta.ChildByFieldName("value"); value != nil {
		attr.Value = c.text(value)
	}

	args := meta.ChildByFieldName("arguments")
	if args == nil {
		for i := 1; i < int(meta.NamedChildCount()); i++ {
			if child := meta.NamedChild(i); child.Type() == "token_tree" || child.Type() == "meta_arguments" {
				args = child
				break
			}
		}
	}

	if args != nil {
		attr.HasArgs = true
		attr.Args = stripDelimiters(c.text(args))
	}

	return attr
}

// stripDelimiters removes the outer (), [] or {} of a token tree.
func stripDelimiters(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '(', '[', '{':
			return s[1 : len(s)-1]
		}
	}

	return s
}

// itemNodes are declarations that get lifted out of function bodies.
var itemNodes = map[string]bool{
	"mod_item":         true,
	"struct_item":      true,
	"union_item":       true,
	"enum_item":        true,
	"impl_item":        true,
	"trait_item":       true,
	"function_item":    true,
	"const_item":       true,
	"static_item":      true,
	"type_item":        true,
	"macro_definition": true,
}

// node converts a body node. Declarations found inside are lifted into
// owner.Items and attributes that do not belong to one of them are recorded
// in owner.Inner.
func (c *converter) node(n *sitter.Node, field string, owner *m.Item) *m.Node {
	out := &m.Node{
		Kind:   n.Type(),
		Field:  field,
		Offset: int(n.StartByte()),
		Line:   int(n.StartPoint().Row) + 1,
	}

	if n.NamedChildCount() == 0 {
		out.Text = c.text(n)
		return out
	}

	// Token trees keep their opening delimiter so `f(..)` inside a macro
	// can be told apart from `f[..]`.
	if out.Kind == m.NodeTokenTree {
		out.Text = c.text(n)[:1]
	}

	var pending []m.Attribute

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() {
			continue
		}

		switch kind := child.Type(); {
		case kind == "line_comment" || kind == "block_comment":
			continue

		case kind == "attribute_item" || kind == "inner_attribute_item":
			attr := c.attribute(child, kind == "inner_attribute_item")
			if attr.Inner {
				owner.Inner = append(owner.Inner, attr)
			} else {
				pending = append(pending, attr)
			}

			out.Children = append(out.Children, &m.Node{
				Kind:   m.NodeAttribute,
				Attr:   &attr,
				Offset: attr.Offset,
				Line:   attr.Line,
			})

			continue

		case itemNodes[kind]:
			if nested := c.item(child); nested != nil {
				nested.Attributes = pending
				pending = nil
				owner.Items = append(owner.Items, nested)
				out.Children = append(out.Children, &m.Node{
					Kind:   m.NodeItem,
					Field:  n.FieldNameForChild(i),
					Text:   nested.Name,
					Offset: nested.Offset,
					Line:   nested.Line,
				})

				continue
			}
		}

		owner.Inner = append(owner.Inner, pending...)
		pending = nil

		out.Children = append(out.Children, c.node(child, n.FieldNameForChild(i), owner))
	}

	owner.Inner = append(owner.Inner, pending...)

	return out
}

// normalize collapses whitespace so multi-line signatures print on one line.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	return strings.NewReplacer("( ", "(", " )", ")", "< ", "<", " >", ">").Replace(s)
}

// closeList drops a trailing comma before the closing delimiter of a
// parameter or generic list. Nested one-element tuples such as `(i32,)` keep
// theirs.
func closeList(s string) string {
	if len(s) < 2 {
		return s
	}

	end := len(s) - 1
	if s[end] != ')' && s[end] != '>' {
		return s
	}

	body := strings.TrimRight(s[:end], " ")
	if !strings.HasSuffix(body, ",") {
		return s
	}

	return strings.TrimRight(strings.TrimSuffix(body, ","), " ") + s[end:]
}

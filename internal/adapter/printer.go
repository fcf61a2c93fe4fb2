package adapter

import (
	"strings"

	m "github.com/anton-mel/macro-extract/internal/model"
)

const indentUnit = "    "

// Printer renders declaration trees as Rust source.
type Printer interface {
	// Print renders a skeleton-shaped tree. Function bodies are printed
	// empty; fields and items without a signature are not printed.
	Print(file *m.File) []byte
}

type printer struct{}

// NewPrinter constructs a Printer.
func NewPrinter() Printer {
	return &printer{}
}

// Print implements Printer.
func (p *printer) Print(file *m.File) []byte {
	if file == nil {
		return nil
	}

	var (
		b     strings.Builder
		inner int
	)

	for _, attr := range file.Attributes {
		if attr.Inner {
			b.WriteString(attributeText(attr) + "\n")
			inner++
		}
	}

	items := printable(file.Items)
	if inner > 0 && len(items) > 0 {
		b.WriteByte('\n')
	}

	p.items(&b, items, "")

	return []byte(b.String())
}

func printable(items []*m.Item) []*m.Item {
	out := make([]*m.Item, 0, len(items))

	for _, item := range items {
		if item.Kind != m.ItemOther && item.Kind != m.ItemVariant {
			out = append(out, item)
		}
	}

	return out
}

func (p *printer) items(b *strings.Builder, items []*m.Item, indent string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}

		p.item(b, item, indent)
	}
}

func (p *printer) item(b *strings.Builder, item *m.Item, indent string) {
	for _, attr := range item.Attributes {
		b.WriteString(indent + attributeText(attr) + "\n")
	}

	b.WriteString(indent + header(item))

	switch item.Kind {
	case m.ItemFunction:
		if !item.HasBody() {
			b.WriteString(";\n")
			return
		}

		p.block(b, item.Inner, nil, indent)

	case m.ItemEnum:
		p.variants(b, item, indent)

	case m.ItemStruct:
		b.WriteString(" {}\n")

	default:
		p.block(b, item.Inner, printable(item.Items), indent)
	}
}

// block prints ` {}` or a braced body holding inner attributes and items.
// Outer attributes left in a body have nothing to attach to and are dropped.
func (p *printer) block(b *strings.Builder, attrs []m.Attribute, items []*m.Item, indent string) {
	var inner []m.Attribute

	for _, attr := range attrs {
		if attr.Inner {
			inner = append(inner, attr)
		}
	}

	if len(inner) == 0 && len(items) == 0 {
		b.WriteString(" {}\n")
		return
	}

	b.WriteString(" {\n")

	for _, attr := range inner {
		b.WriteString(indent + indentUnit + attributeText(attr) + "\n")
	}

	if len(inner) > 0 && len(items) > 0 {
		b.WriteByte('\n')
	}

	p.items(b, items, indent+indentUnit)
	b.WriteString(indent + "}\n")
}

func (p *printer) variants(b *strings.Builder, item *m.Item, indent string) {
	if len(item.Items) == 0 {
		b.WriteString(" {}\n")
		return
	}

	b.WriteString(" {\n")

	for _, variant := range item.Items {
		for _, attr := range variant.Attributes {
			b.WriteString(indent + indentUnit + attributeText(attr) + "\n")
		}

		b.WriteString(indent + indentUnit + variant.Name + ",\n")
	}

	b.WriteString(indent + "}\n")
}

func header(item *m.Item) string {
	var b strings.Builder

	if item.Visibility != "" && item.Kind != m.ItemImpl {
		b.WriteString(item.Visibility + " ")
	}

	switch item.Kind {
	case m.ItemModule:
		b.WriteString("mod " + item.Name)
	case m.ItemStruct:
		b.WriteString("struct " + item.Name + item.Generics)
	case m.ItemEnum:
		b.WriteString("enum " + item.Name + item.Generics)
	case m.ItemTrait:
		b.WriteString("trait " + item.Name + item.Generics)
	case m.ItemImpl:
		b.WriteString("impl" + item.Generics + " ")

		if item.Trait != "" {
			b.WriteString(item.Trait + " for ")
		}

		b.WriteString(item.Name)
	case m.ItemFunction:
		params := item.Params
		if params == "" {
			params = "()"
		}

		b.WriteString("fn " + item.Name + item.Generics + params)
	}

	return b.String()
}

func attributeText(attr m.Attribute) string {
	var b strings.Builder

	b.WriteString("#")

	if attr.Inner {
		b.WriteString("!")
	}

	b.WriteString("[" + attr.Path)

	switch {
	case attr.HasArgs:
		b.WriteString("(" + attr.Args + ")")
	case attr.Value != "":
		b.WriteString(" = " + attr.Value)
	}

	b.WriteString("]")

	return b.String()
}

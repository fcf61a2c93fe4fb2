package domain

import (
	m "github.com/anton-mel/macro-extract/internal/model"
)

// Extractor builds the annotation map of a parsed file.
type Extractor interface {
	Extract(file *m.File) m.AnnotationMap
}

type extractor struct{}

// NewExtractor creates a new Extractor instance.
func NewExtractor() Extractor {
	return &extractor{}
}

// Extract attributes every attribute to the innermost enclosing declaration
// and groups the annotations by qualified name and kind.
func (e *extractor) Extract(file *m.File) m.AnnotationMap {
	builder := m.NewAnnotationMapBuilder()

	Walk(file, func(ev WalkEvent) {
		if ev.Kind != WalkAnnotation || ev.Attribute.Path == "" {
			return
		}

		builder.Add(ev.Path.QualifiedName(), ev.Path.Top().Kind, annotationFor(ev.Attribute))
	})

	return builder.Build()
}

func annotationFor(attr m.Attribute) m.Annotation {
	annotation := m.Annotation{
		Kind: attr.Kind(),
		Raw:  attr.Args,
		Line: attr.Line,
	}

	if !attr.HasArgs {
		return annotation
	}

	args, ok := splitArgs(attr.Args)
	annotation.Args = args
	annotation.Malformed = !ok

	return annotation
}

// Package model defines the data structures shared by the contract checker.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Ext returns the extension of the path including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// WithExtension replaces the extension of the path. The new extension may be
// given with or without the leading dot.
func (p Path) WithExtension(ext string) Path {
	base := strings.TrimSuffix(string(p), filepath.Ext(string(p)))
	ext = strings.TrimPrefix(ext, ".")

	if ext == "" {
		return Path(base)
	}

	return Path(base + "." + ext)
}

// Source ties an implementation file to the artifacts derived from it.
type Source struct {
	Origin   Path // implementation file (e.g. src/lib.rs)
	Skeleton Path // annotated declaration skeleton (e.g. src/lib.macros)
	Report   Path // verdict or annotation report (e.g. src/lib.report)
}

// Artifacts describes how artifact paths are derived from a source path.
type Artifacts struct {
	SkeletonExtension string
	ReportExtension   string
}

// SourceFor builds the Source record for an implementation file.
func (a Artifacts) SourceFor(origin Path) Source {
	return Source{
		Origin:   origin,
		Skeleton: origin.WithExtension(a.SkeletonExtension),
		Report:   origin.WithExtension(a.ReportExtension),
	}
}

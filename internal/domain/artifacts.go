package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/anton-mel/macro-extract/internal/adapter"
	m "github.com/anton-mel/macro-extract/internal/model"
)

// loadedSkeleton is the parsed skeleton of a source together with its state.
type loadedSkeleton struct {
	File        *m.File
	State       m.SkeletonState
	Annotations m.AnnotationMap
}

// artifactLoader reads and parses implementation and skeleton files.
type artifactLoader struct {
	fsAdapter adapter.SourceFSAdapter
	parser    adapter.RustFileAdapter
	extractor Extractor
}

func (l artifactLoader) parseFile(ctx context.Context, path m.Path) (*m.File, error) {
	content, err := l.fsAdapter.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read source", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return l.parser.Parse(ctx, path, content)
}

func (l artifactLoader) skeletonExists(source m.Source) (bool, error) {
	exists, err := l.fsAdapter.Exists(source.Skeleton)
	if err != nil {
		slog.Error("Failed to stat skeleton", "path", source.Skeleton, "error", err)
		return false, fmt.Errorf("failed to stat skeleton %s: %w", source.Skeleton, err)
	}

	return exists, nil
}

// loadSkeleton classifies the skeleton of source. An empty placeholder and a
// skeleton without annotations share a state; File is nil for both a missing
// skeleton and an empty placeholder.
func (l artifactLoader) loadSkeleton(ctx context.Context, source m.Source) (loadedSkeleton, error) {
	exists, err := l.skeletonExists(source)
	if err != nil {
		return loadedSkeleton{}, err
	}

	if !exists {
		return loadedSkeleton{State: m.StateNoSkeleton}, nil
	}

	content, err := l.fsAdapter.ReadFile(source.Skeleton)
	if err != nil {
		slog.Error("Failed to read skeleton", "path", source.Skeleton, "error", err)
		return loadedSkeleton{}, fmt.Errorf("failed to read skeleton %s: %w", source.Skeleton, err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return loadedSkeleton{State: m.StateSkeletonNoAnnotations}, nil
	}

	file, err := l.parser.Parse(ctx, source.Skeleton, content)
	if err != nil {
		return loadedSkeleton{}, err
	}

	loaded := loadedSkeleton{
		File:        file,
		State:       m.StateSkeletonAnnotated,
		Annotations: l.extractor.Extract(file),
	}

	if loaded.Annotations.Count() == 0 {
		loaded.State = m.StateSkeletonNoAnnotations
	}

	return loaded, nil
}

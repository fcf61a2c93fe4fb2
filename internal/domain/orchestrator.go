package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anton-mel/macro-extract/internal/adapter"
	m "github.com/anton-mel/macro-extract/internal/model"
)

const skeletonPerm = 0o644

// Orchestrator reacts to change events of source files by maintaining their
// skeleton and report artifacts.
type Orchestrator interface {
	React(ctx context.Context, event m.Event) (m.Reaction, error)
}

// OrchestratorConfig holds the watch settings the orchestrator needs.
type OrchestratorConfig struct {
	Extensions []string // source extensions including the dot, e.g. ".rs"
	Artifacts  m.Artifacts
	Mode       m.ReportMode
}

type orchestrator struct {
	artifactLoader

	printer     adapter.Printer
	reportStore adapter.ReportStore
	generator   SkeletonGenerator
	verifier    Verifier
	config      OrchestratorConfig

	mu      sync.Mutex
	digests map[m.Path]string
}

// NewOrchestrator constructs an Orchestrator backed by the provided adapters.
func NewOrchestrator(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.RustFileAdapter,
	printer adapter.Printer,
	reportStore adapter.ReportStore,
	config OrchestratorConfig,
) Orchestrator {
	return &orchestrator{
		artifactLoader: artifactLoader{
			fsAdapter: fsAdapter,
			parser:    parser,
			extractor: NewExtractor(),
		},
		printer:     printer,
		reportStore: reportStore,
		generator:   NewSkeletonGenerator(),
		verifier:    NewVerifier(),
		config:      config,
		digests:     make(map[m.Path]string),
	}
}

// React applies the transition for event. The returned reaction is always
// populated; its Err equals the returned error.
func (o *orchestrator) React(ctx context.Context, event m.Event) (m.Reaction, error) {
	start := time.Now()
	reaction := m.Reaction{
		ID:     uuid.NewString(),
		Event:  event,
		Action: m.ActionIgnore,
		Source: o.config.Artifacts.SourceFor(event.Path),
	}

	err := o.react(ctx, &reaction)
	reaction.Duration = time.Since(start)
	reaction.Err = err

	log := slog.With("reaction", reaction.ID, "event", event.Kind.String(), "path", event.Path)
	if err != nil {
		log.Error("Failed to react to change", "state", reaction.State, "error", err)
		return reaction, err
	}

	if reaction.Action != m.ActionIgnore {
		log.Info("Reacted to change", "state", reaction.State, "action", reaction.Action, "duration", reaction.Duration)
	}

	return reaction, nil
}

func (o *orchestrator) react(ctx context.Context, reaction *m.Reaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !o.watched(reaction.Event.Path) {
		return nil
	}

	source := reaction.Source

	switch reaction.Event.Kind {
	case m.EventCreate:
		exists, err := o.skeletonExists(source)
		if err != nil {
			return err
		}

		// Editors that save by renaming a temp file over the source report a
		// create.
		if exists {
			return o.onModify(ctx, reaction)
		}

		reaction.State = m.StateNoSkeleton
		reaction.Action = m.ActionCreatePlaceholder

		return o.writeSkeleton(source, nil)

	case m.EventModify:
		return o.onModify(ctx, reaction)

	case m.EventRemove:
		return o.onRemove(ctx, reaction)

	default:
		return nil
	}
}

func (o *orchestrator) onModify(ctx context.Context, reaction *m.Reaction) error {
	source := reaction.Source

	digest, err := o.digest(source)
	if err != nil {
		return err
	}

	if o.unchanged(source.Origin, digest) {
		return nil
	}

	skeleton, err := o.loadSkeleton(ctx, source)
	if err != nil {
		return err
	}

	reaction.State = skeleton.State

	impl, err := o.parseFile(ctx, source.Origin)
	if err != nil {
		return err
	}

	switch skeleton.State {
	case m.StateNoSkeleton, m.StateSkeletonNoAnnotations:
		reaction.Action = m.ActionGenerate
		if err := o.writeSkeleton(source, o.printer.Print(o.generator.Generate(impl))); err != nil {
			return err
		}

	case m.StateSkeletonAnnotated:
		if o.config.Mode == m.ModeDump {
			reaction.Action = m.ActionDump
			if err := o.reportStore.SaveAnnotations(source.Report, skeleton.Annotations); err != nil {
				return err
			}

			break
		}

		report, err := o.verifier.Verify(ctx, impl, skeleton.Annotations)
		if err != nil {
			return err
		}

		report.Source = source
		reaction.Action = m.ActionVerify
		reaction.Summary = report.Summary()

		if err := o.reportStore.SaveVerification(source.Report, report); err != nil {
			return err
		}
	}

	if digest, err := o.digest(source); err == nil {
		o.remember(source.Origin, digest)
	}

	return nil
}

func (o *orchestrator) onRemove(ctx context.Context, reaction *m.Reaction) error {
	source := reaction.Source

	o.forget(source.Origin)

	reaction.State = o.peekState(ctx, source)
	if reaction.State == m.StateNoSkeleton {
		return nil
	}

	reaction.Action = m.ActionDelete

	for _, path := range []m.Path{source.Skeleton, source.Report} {
		if err := o.fsAdapter.Remove(path); err != nil {
			slog.Error("Failed to remove artifact", "path", path, "error", err)
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}

// peekState classifies the skeleton for reporting only. A skeleton that
// cannot be read or parsed counts as annotated so it is never treated as
// disposable.
func (o *orchestrator) peekState(ctx context.Context, source m.Source) m.SkeletonState {
	exists, err := o.skeletonExists(source)
	if err != nil || !exists {
		return m.StateNoSkeleton
	}

	loaded, err := o.loadSkeleton(ctx, source)
	if err != nil {
		return m.StateSkeletonAnnotated
	}

	return loaded.State
}

func (o *orchestrator) writeSkeleton(source m.Source, content []byte) error {
	if err := o.fsAdapter.WriteFile(source.Skeleton, content, skeletonPerm); err != nil {
		slog.Error("Failed to write skeleton", "path", source.Skeleton, "error", err)
		return fmt.Errorf("failed to write skeleton %s: %w", source.Skeleton, err)
	}

	return nil
}

func (o *orchestrator) watched(path m.Path) bool {
	ext := path.Ext()
	for _, candidate := range o.config.Extensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// digest fingerprints the source together with its skeleton so repeated
// write notifications for the same content are reacted to once.
func (o *orchestrator) digest(source m.Source) (string, error) {
	sourceHash, err := o.fsAdapter.HashFile(source.Origin)
	if err != nil {
		slog.Error("Failed to hash source", "path", source.Origin, "error", err)
		return "", fmt.Errorf("failed to hash %s: %w", source.Origin, err)
	}

	exists, err := o.skeletonExists(source)
	if err != nil || !exists {
		return sourceHash, err
	}

	skeletonHash, err := o.fsAdapter.HashFile(source.Skeleton)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", source.Skeleton, err)
	}

	return sourceHash + ":" + skeletonHash, nil
}

func (o *orchestrator) unchanged(path m.Path, digest string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.digests[path] == digest
}

func (o *orchestrator) remember(path m.Path, digest string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.digests[path] = digest
}

func (o *orchestrator) forget(path m.Path) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.digests, path)
}

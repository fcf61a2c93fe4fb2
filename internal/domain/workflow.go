package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/anton-mel/macro-extract/internal/adapter"
	"github.com/anton-mel/macro-extract/internal/controller"
	m "github.com/anton-mel/macro-extract/internal/model"
)

const eventBuffer = 64

var (
	// ErrNoSkeleton is returned when a command needs a skeleton that does
	// not exist yet.
	ErrNoSkeleton = errors.New("no skeleton")
	// ErrAnnotatedSkeleton is returned instead of overwriting a skeleton
	// that carries annotations.
	ErrAnnotatedSkeleton = errors.New("skeleton is annotated")
	// ErrSkeletonDrift is returned by a skeleton check when the existing
	// skeleton no longer mirrors the implementation.
	ErrSkeletonDrift = errors.New("skeleton drifted from implementation")
	// ErrContractViolation is returned when a clause is unsatisfied or an
	// annotated function is missing.
	ErrContractViolation = errors.New("contract violation")
	// ErrReactionPanic wraps a panic recovered while reacting to an event.
	ErrReactionPanic = errors.New("reaction panicked")
)

// WatchArgs contains the arguments for the watch loop.
type WatchArgs struct {
	Root m.Path
}

// SkeletonArgs contains the arguments for generating a skeleton.
type SkeletonArgs struct {
	Path  m.Path
	Write bool
	Check bool
}

// AnnotationsArgs contains the arguments for dumping an annotation map.
type AnnotationsArgs struct {
	Path   m.Path
	Format m.ReportFormat
}

// VerifyArgs contains the arguments for a one-shot verification. When Path
// is a directory every source below it that has a skeleton is verified.
type VerifyArgs struct {
	Path       m.Path
	Write      bool
	Extensions []string
	Skip       []string
}

// Workflow defines the commands of the contract checker.
type Workflow interface {
	Watch(ctx context.Context, args WatchArgs) error
	Skeleton(ctx context.Context, args SkeletonArgs) error
	Annotations(ctx context.Context, args AnnotationsArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.Printer
	adapter.ReportStore
	adapter.ChangeNotifier
	controller.UI
	Orchestrator
	SkeletonGenerator
	Verifier

	loader    artifactLoader
	artifacts m.Artifacts
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	parser adapter.RustFileAdapter,
	printer adapter.Printer,
	reportStore adapter.ReportStore,
	notifier adapter.ChangeNotifier,
	ui controller.UI,
	orchestrator Orchestrator,
	artifacts m.Artifacts,
) Workflow {
	extractor := NewExtractor()

	return &workflow{
		SourceFSAdapter:   fsAdapter,
		Printer:           printer,
		ReportStore:       reportStore,
		ChangeNotifier:    notifier,
		UI:                ui,
		Orchestrator:      orchestrator,
		SkeletonGenerator: NewSkeletonGenerator(),
		Verifier:          NewVerifier(),
		loader: artifactLoader{
			fsAdapter: fsAdapter,
			parser:    parser,
			extractor: extractor,
		},
		artifacts: artifacts,
	}
}

// Watch runs the notifier and a single reacting worker until ctx is done or
// the user closes the UI. Reaction errors are shown and never stop the loop.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Start(ctx, controller.WithWatchMode(args.Root)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan m.Event, eventBuffer)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return w.Run(groupCtx, args.Root, events)
	})

	group.Go(func() error {
		return w.drain(groupCtx, cancel, events)
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to watch", "root", args.Root, "error", err)
		return fmt.Errorf("watch %s: %w", args.Root, err)
	}

	return nil
}

// drain is the single worker of the watch loop. Reactions run one at a time
// on a context that outlives cancellation so an artifact is never left half
// written.
func (w *workflow) drain(ctx context.Context, cancel context.CancelFunc, events <-chan m.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.Done():
			cancel()
			return nil

		case event := <-events:
			reaction := w.reactSafely(context.WithoutCancel(ctx), event)
			if reaction.Action != m.ActionIgnore || reaction.Err != nil {
				w.DisplayReaction(context.WithoutCancel(ctx), reaction)
			}
		}
	}
}

func (w *workflow) reactSafely(ctx context.Context, event m.Event) (reaction m.Reaction) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from reaction panic", "path", event.Path, "panic", r)
			reaction = m.Reaction{
				Event:  event,
				Action: m.ActionIgnore,
				Source: w.artifacts.SourceFor(event.Path),
				Err:    fmt.Errorf("%w: %v", ErrReactionPanic, r),
			}
		}
	}()

	reaction, err := w.React(ctx, event)

	var syntaxErr *m.SyntaxError
	if errors.As(err, &syntaxErr) {
		slog.Warn("Skipped unparsable file", "path", syntaxErr.Path, "line", syntaxErr.Line, "column", syntaxErr.Column)
	}

	return reaction
}

// oneShot runs a single command between Start and Close of the UI.
func (w *workflow) oneShot(ctx context.Context, run func() error) error {
	if err := w.Start(ctx, controller.WithOneShotMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	err := run()

	w.Wait(ctx)
	w.Close(ctx)

	return err
}

// Skeleton prints the generated skeleton of a source file. With Write it is
// also written when no annotated skeleton exists. With Check the existing
// skeleton is compared structurally with a fresh one.
func (w *workflow) Skeleton(ctx context.Context, args SkeletonArgs) error {
	return w.oneShot(ctx, func() error {
		return w.skeleton(ctx, args)
	})
}

func (w *workflow) skeleton(ctx context.Context, args SkeletonArgs) error {
	source := w.artifacts.SourceFor(args.Path)

	impl, err := w.loader.parseFile(ctx, source.Origin)
	if err != nil {
		return err
	}

	generated := w.Print(w.Generate(impl))

	if args.Check {
		return w.checkDrift(ctx, source, generated)
	}

	if !args.Write {
		w.DisplayText(ctx, generated)
		return nil
	}

	skeleton, err := w.loader.loadSkeleton(ctx, source)
	if err != nil {
		return err
	}

	if skeleton.State == m.StateSkeletonAnnotated {
		return fmt.Errorf("%w: %s", ErrAnnotatedSkeleton, source.Skeleton)
	}

	if err := w.WriteFile(source.Skeleton, generated, skeletonPerm); err != nil {
		slog.Error("Failed to write skeleton", "path", source.Skeleton, "error", err)
		return fmt.Errorf("failed to write skeleton %s: %w", source.Skeleton, err)
	}

	w.DisplayText(ctx, generated)

	return nil
}

func (w *workflow) checkDrift(ctx context.Context, source m.Source, generated []byte) error {
	skeleton, err := w.loader.loadSkeleton(ctx, source)
	if err != nil {
		return err
	}

	if skeleton.State == m.StateNoSkeleton {
		return fmt.Errorf("%w: %s", ErrNoSkeleton, source.Skeleton)
	}

	// Both sides go through the generator so annotations and whitespace do
	// not count as drift.
	current := w.Print(w.Generate(skeleton.File))

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: source.Skeleton.String(),
		ToFile:   source.Origin.String(),
		Context:  2,
	})
	if err != nil {
		slog.Error("Failed to diff skeleton", "path", source.Skeleton, "error", err)
		return fmt.Errorf("failed to diff %s: %w", source.Skeleton, err)
	}

	w.DisplayDiff(ctx, diff)

	if diff != "" {
		return fmt.Errorf("%w: %s", ErrSkeletonDrift, source.Skeleton)
	}

	return nil
}

// Annotations prints the annotation map of a skeleton. Path may name the
// skeleton itself or the source file it belongs to.
func (w *workflow) Annotations(ctx context.Context, args AnnotationsArgs) error {
	return w.oneShot(ctx, func() error {
		return w.annotations(ctx, args)
	})
}

func (w *workflow) annotations(ctx context.Context, args AnnotationsArgs) error {
	skeletonPath := args.Path.WithExtension(w.artifacts.SkeletonExtension)

	exists, err := w.Exists(skeletonPath)
	if err != nil {
		slog.Error("Failed to stat skeleton", "path", skeletonPath, "error", err)
		return fmt.Errorf("failed to stat skeleton %s: %w", skeletonPath, err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", ErrNoSkeleton, skeletonPath)
	}

	skeleton, err := w.loader.parseFile(ctx, skeletonPath)
	if err != nil {
		return err
	}

	content, err := adapter.EncodeAnnotations(args.Format, w.loader.extractor.Extract(skeleton))
	if err != nil {
		return err
	}

	w.DisplayText(ctx, content)

	return nil
}

// Verify checks source files against their skeletons and shows the verdicts.
func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	return w.oneShot(ctx, func() error {
		return w.verify(ctx, args)
	})
}

func (w *workflow) verify(ctx context.Context, args VerifyArgs) error {
	origins, err := w.verifiableSources(args)
	if err != nil {
		return err
	}

	failed := 0

	for _, origin := range origins {
		if err := ctx.Err(); err != nil {
			return err
		}

		report, err := w.verifySource(ctx, w.artifacts.SourceFor(origin), args.Write)
		if err != nil {
			return err
		}

		w.DisplayVerification(ctx, report)

		if report.Summary().Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrContractViolation, failed, len(origins))
	}

	return nil
}

func (w *workflow) verifySource(ctx context.Context, source m.Source, write bool) (m.VerificationReport, error) {
	skeleton, err := w.loader.loadSkeleton(ctx, source)
	if err != nil {
		return m.VerificationReport{}, err
	}

	if skeleton.State == m.StateNoSkeleton {
		return m.VerificationReport{}, fmt.Errorf("%w: %s", ErrNoSkeleton, source.Skeleton)
	}

	impl, err := w.loader.parseFile(ctx, source.Origin)
	if err != nil {
		return m.VerificationReport{}, err
	}

	report, err := w.Verifier.Verify(ctx, impl, skeleton.Annotations)
	if err != nil {
		return m.VerificationReport{}, err
	}

	report.Source = source

	if write {
		if err := w.SaveVerification(source.Report, report); err != nil {
			return m.VerificationReport{}, err
		}
	}

	return report, nil
}

// verifiableSources returns Path itself for a file. For a directory it
// returns the sources below it that have a skeleton, in lexical order.
func (w *workflow) verifiableSources(args VerifyArgs) ([]m.Path, error) {
	info, err := w.FileInfo(args.Path)
	if err != nil {
		slog.Error("Failed to stat path", "path", args.Path, "error", err)
		return nil, fmt.Errorf("failed to stat %s: %w", args.Path, err)
	}

	if !info.IsDir() {
		return []m.Path{args.Path}, nil
	}

	var origins []m.Path

	err = w.Walk(args.Path, true, args.Skip, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		origin := m.Path(path)
		if info.IsDir() || !slices.Contains(args.Extensions, origin.Ext()) {
			return nil
		}

		exists, err := w.loader.skeletonExists(w.artifacts.SourceFor(origin))
		if err != nil || !exists {
			return err
		}

		origins = append(origins, origin)

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk sources", "root", args.Path, "error", err)
		return nil, fmt.Errorf("failed to walk %s: %w", args.Path, err)
	}

	return origins, nil
}

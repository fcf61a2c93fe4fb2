package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anton-mel/macro-extract/internal/adapter"
	adaptermocks "github.com/anton-mel/macro-extract/internal/adapter/mocks"
	m "github.com/anton-mel/macro-extract/internal/model"
)

var testArtifacts = m.Artifacts{SkeletonExtension: "macros", ReportExtension: "report"}

func newTestOrchestrator(mode m.ReportMode) Orchestrator {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return NewOrchestrator(
		fsAdapter,
		adapter.NewRustFileAdapter(),
		adapter.NewPrinter(),
		adapter.NewReportStore(fsAdapter, m.FormatText),
		OrchestratorConfig{
			Extensions: []string{".rs"},
			Artifacts:  testArtifacts,
			Mode:       mode,
		},
	)
}

func copyExample(t *testing.T, dir, name, file string) string {
	t.Helper()

	src, err := os.ReadFile(filepath.Join("..", "..", "examples", name, file))
	require.NoError(t, err)

	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, src, 0o600))

	return path
}

func event(kind m.EventKind, path string) m.Event {
	return m.Event{Kind: kind, Path: m.Path(path), Time: time.Now()}
}

func readString(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestOrchestrator_Lifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	orchestrator := newTestOrchestrator(m.ModeVerify)

	source := copyExample(t, dir, "counter", "lib.rs")
	skeleton := filepath.Join(dir, "lib.macros")
	report := filepath.Join(dir, "lib.report")

	// create: an empty placeholder appears
	reaction, err := orchestrator.React(ctx, event(m.EventCreate, source))
	require.NoError(t, err)
	assert.Equal(t, m.StateNoSkeleton, reaction.State)
	assert.Equal(t, m.ActionCreatePlaceholder, reaction.Action)
	assert.Equal(t, m.Path(skeleton), reaction.Source.Skeleton)
	assert.NotEmpty(t, reaction.ID)
	assert.Empty(t, readString(t, skeleton))

	// modify: the placeholder is replaced by a generated skeleton
	reaction, err = orchestrator.React(ctx, event(m.EventModify, source))
	require.NoError(t, err)
	assert.Equal(t, m.StateSkeletonNoAnnotations, reaction.State)
	assert.Equal(t, m.ActionGenerate, reaction.Action)
	assert.Contains(t, readString(t, skeleton), "pub fn increment(&mut self) {}")

	// repeated notification for the same content
	reaction, err = orchestrator.React(ctx, event(m.EventModify, source))
	require.NoError(t, err)
	assert.Equal(t, m.ActionIgnore, reaction.Action)

	// annotating the skeleton switches to verification
	copyExample(t, dir, "counter", "lib.macros")

	reaction, err = orchestrator.React(ctx, event(m.EventModify, source))
	require.NoError(t, err)
	assert.Equal(t, m.StateSkeletonAnnotated, reaction.State)
	assert.Equal(t, m.ActionVerify, reaction.Action)
	assert.Equal(t, m.Summary{Satisfied: 3, Unsatisfied: 2, Missing: 1, Skipped: 1}, reaction.Summary)
	assert.Contains(t, readString(t, report), "Counter::reset mutates(value) Unsatisfied")
	assert.Contains(t, readString(t, skeleton), "#[mutates(value)]", "annotated skeleton is never regenerated")

	// removal deletes both artifacts
	require.NoError(t, os.Remove(source))

	reaction, err = orchestrator.React(ctx, event(m.EventRemove, source))
	require.NoError(t, err)
	assert.Equal(t, m.StateSkeletonAnnotated, reaction.State)
	assert.Equal(t, m.ActionDelete, reaction.Action)
	assert.NoFileExists(t, skeleton)
	assert.NoFileExists(t, report)
}

func TestOrchestrator_CreateWithExistingSkeletonVerifies(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "counter", "lib.rs")
	skeleton := copyExample(t, dir, "counter", "lib.macros")
	before := readString(t, skeleton)

	orchestrator := newTestOrchestrator(m.ModeVerify)

	reaction, err := orchestrator.React(context.Background(), event(m.EventCreate, source))
	require.NoError(t, err)

	assert.Equal(t, m.StateSkeletonAnnotated, reaction.State)
	assert.Equal(t, m.ActionVerify, reaction.Action)
	assert.Equal(t, before, readString(t, skeleton))
	assert.Contains(t, readString(t, filepath.Join(dir, "lib.report")), "Counter::reset mutates(value) Unsatisfied")

	// the write event that follows the rename carries the same content
	reaction, err = orchestrator.React(context.Background(), event(m.EventModify, source))
	require.NoError(t, err)
	assert.Equal(t, m.ActionIgnore, reaction.Action)
}

func TestOrchestrator_CreateWithPlaceholderGenerates(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "counter", "lib.rs")
	skeleton := filepath.Join(dir, "lib.macros")
	require.NoError(t, os.WriteFile(skeleton, nil, 0o600))

	reaction, err := newTestOrchestrator(m.ModeVerify).React(context.Background(), event(m.EventCreate, source))
	require.NoError(t, err)

	assert.Equal(t, m.ActionGenerate, reaction.Action)
	assert.Contains(t, readString(t, skeleton), "pub fn increment(&mut self) {}")
}

func TestOrchestrator_ModifyWithoutSkeletonGenerates(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "nested", "lib.rs")

	reaction, err := newTestOrchestrator(m.ModeVerify).React(context.Background(), event(m.EventModify, source))
	require.NoError(t, err)

	assert.Equal(t, m.StateNoSkeleton, reaction.State)
	assert.Equal(t, m.ActionGenerate, reaction.Action)
	assert.Contains(t, readString(t, filepath.Join(dir, "lib.macros")), "pub mod shapes {")
}

func TestOrchestrator_DumpMode(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "counter", "lib.rs")
	copyExample(t, dir, "counter", "lib.macros")

	reaction, err := newTestOrchestrator(m.ModeDump).React(context.Background(), event(m.EventModify, source))
	require.NoError(t, err)

	assert.Equal(t, m.ActionDump, reaction.Action)

	report := readString(t, filepath.Join(dir, "lib.report"))
	assert.Contains(t, report, "Counter::increment {\n")
	assert.Contains(t, report, "   calls: log_change\n")
}

func TestOrchestrator_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("x"), 0o600))

	orchestrator := newTestOrchestrator(m.ModeVerify)

	for _, kind := range []m.EventKind{m.EventCreate, m.EventModify, m.EventRemove, m.EventOther} {
		reaction, err := orchestrator.React(context.Background(), event(kind, notes))
		require.NoError(t, err)
		assert.Equal(t, m.ActionIgnore, reaction.Action)
	}

	skeleton := copyExample(t, dir, "counter", "lib.macros")

	reaction, err := orchestrator.React(context.Background(), event(m.EventModify, skeleton))
	require.NoError(t, err)
	assert.Equal(t, m.ActionIgnore, reaction.Action, "skeleton edits do not trigger reactions")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOrchestrator_RemoveWithoutSkeleton(t *testing.T) {
	source := filepath.Join(t.TempDir(), "lib.rs")

	reaction, err := newTestOrchestrator(m.ModeVerify).React(context.Background(), event(m.EventRemove, source))
	require.NoError(t, err)

	assert.Equal(t, m.StateNoSkeleton, reaction.State)
	assert.Equal(t, m.ActionIgnore, reaction.Action)
}

func TestOrchestrator_SyntaxErrorKeepsArtifacts(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "invalid", "lib.rs")
	skeleton := filepath.Join(dir, "lib.macros")
	require.NoError(t, os.WriteFile(skeleton, nil, 0o600))

	reaction, err := newTestOrchestrator(m.ModeVerify).React(context.Background(), event(m.EventModify, source))
	require.Error(t, err)

	var syntaxErr *m.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, err, reaction.Err)
	assert.Empty(t, readString(t, skeleton))
}

func TestOrchestrator_UnparsableSkeletonIsNotDeleted(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "lib.rs")
	skeleton := filepath.Join(dir, "lib.macros")
	require.NoError(t, os.WriteFile(skeleton, []byte("fn broken( {"), 0o600))

	reaction, err := newTestOrchestrator(m.ModeVerify).React(context.Background(), event(m.EventRemove, source))
	require.NoError(t, err)

	assert.Equal(t, m.StateSkeletonAnnotated, reaction.State)
	assert.Equal(t, m.ActionDelete, reaction.Action)
	assert.NoFileExists(t, skeleton)
}

func TestOrchestrator_HashError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().HashFile(m.Path("src/lib.rs")).Return("", errors.New("permission denied"))

	orchestrator := NewOrchestrator(
		fsAdapter,
		adapter.NewRustFileAdapter(),
		adapter.NewPrinter(),
		adapter.NewReportStore(fsAdapter, m.FormatText),
		OrchestratorConfig{Extensions: []string{".rs"}, Artifacts: testArtifacts},
	)

	reaction, err := orchestrator.React(context.Background(), event(m.EventModify, "src/lib.rs"))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to hash src/lib.rs")
	assert.Equal(t, m.ActionIgnore, reaction.Action)
}

func TestOrchestrator_SkeletonWriteError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().Exists(m.Path("src/lib.macros")).Return(false, nil)
	fsAdapter.EXPECT().WriteFile(m.Path("src/lib.macros"), mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	orchestrator := NewOrchestrator(
		fsAdapter,
		adapter.NewRustFileAdapter(),
		adapter.NewPrinter(),
		adapter.NewReportStore(fsAdapter, m.FormatText),
		OrchestratorConfig{Extensions: []string{".rs"}, Artifacts: testArtifacts},
	)

	reaction, err := orchestrator.React(context.Background(), event(m.EventCreate, "src/lib.rs"))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "failed to write skeleton src/lib.macros")
	assert.Equal(t, m.ActionCreatePlaceholder, reaction.Action)
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestOrchestrator(m.ModeVerify).React(ctx, event(m.EventModify, "lib.rs"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOrchestrator_ReportSaveError(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "counter", "lib.rs")
	copyExample(t, dir, "counter", "lib.macros")
	report := m.Path(filepath.Join(dir, "lib.report"))

	reportStore := adaptermocks.NewMockReportStore(t)
	reportStore.EXPECT().SaveVerification(report, mock.Anything).Return(errors.New("disk full")).Once()
	reportStore.EXPECT().SaveVerification(report, mock.MatchedBy(func(r m.VerificationReport) bool {
		return r.Source.Origin == m.Path(source) && len(r.Verdicts) == 5
	})).Return(nil).Once()

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	orchestrator := NewOrchestrator(
		fsAdapter,
		adapter.NewRustFileAdapter(),
		adapter.NewPrinter(),
		reportStore,
		OrchestratorConfig{Extensions: []string{".rs"}, Artifacts: testArtifacts, Mode: m.ModeVerify},
	)

	reaction, err := orchestrator.React(context.Background(), event(m.EventModify, source))
	require.EqualError(t, err, "disk full")
	assert.Equal(t, m.ActionVerify, reaction.Action)

	// a failed reaction is retried even though the content did not change
	reaction, err = orchestrator.React(context.Background(), event(m.EventModify, source))
	require.NoError(t, err)
	assert.Equal(t, m.ActionVerify, reaction.Action)
}

func TestOrchestrator_DumpSaveError(t *testing.T) {
	dir := t.TempDir()
	source := copyExample(t, dir, "counter", "lib.rs")
	copyExample(t, dir, "counter", "lib.macros")

	reportStore := adaptermocks.NewMockReportStore(t)
	reportStore.EXPECT().SaveAnnotations(m.Path(filepath.Join(dir, "lib.report")), mock.MatchedBy(func(a m.AnnotationMap) bool {
		return a.Len() == 5
	})).Return(errors.New("disk full"))

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	orchestrator := NewOrchestrator(
		fsAdapter,
		adapter.NewRustFileAdapter(),
		adapter.NewPrinter(),
		reportStore,
		OrchestratorConfig{Extensions: []string{".rs"}, Artifacts: testArtifacts, Mode: m.ModeDump},
	)

	reaction, err := orchestrator.React(context.Background(), event(m.EventModify, source))
	require.EqualError(t, err, "disk full")
	assert.Equal(t, m.ActionDump, reaction.Action)
}

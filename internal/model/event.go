package model

import "time"

// EventKind is the kind of a file change notification.
type EventKind int

const (
	// EventOther covers notifications that never trigger a reaction.
	EventOther EventKind = iota
	// EventCreate signals a new file.
	EventCreate
	// EventModify signals a write to an existing file.
	EventModify
	// EventRemove signals a deleted file.
	EventRemove
)

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "create"
	case EventModify:
		return "modify"
	case EventRemove:
		return "remove"
	default:
		return "other"
	}
}

// Event is one change notification.
type Event struct {
	Kind EventKind
	Path Path
	Time time.Time
}

// SkeletonState is the orchestrator state of one source file.
type SkeletonState string

const (
	// StateNoSkeleton means no skeleton artifact exists.
	StateNoSkeleton SkeletonState = "no-skeleton"
	// StateSkeletonNoAnnotations means the skeleton is empty or carries no
	// annotations yet.
	StateSkeletonNoAnnotations SkeletonState = "skeleton-no-annotations"
	// StateSkeletonAnnotated means the skeleton carries annotations.
	StateSkeletonAnnotated SkeletonState = "skeleton-annotated"
)

// Action is what a reaction did.
type Action string

const (
	// ActionIgnore means the event did not apply.
	ActionIgnore Action = "ignore"
	// ActionCreatePlaceholder wrote an empty skeleton.
	ActionCreatePlaceholder Action = "create-placeholder"
	// ActionGenerate (re)generated the skeleton.
	ActionGenerate Action = "generate"
	// ActionVerify verified the implementation and wrote verdicts.
	ActionVerify Action = "verify"
	// ActionDump wrote the annotation map.
	ActionDump Action = "dump"
	// ActionDelete removed the artifacts.
	ActionDelete Action = "delete"
)

// Reaction records how one event was handled.
type Reaction struct {
	ID       string
	Event    Event
	State    SkeletonState
	Action   Action
	Source   Source
	Summary  Summary
	Duration time.Duration
	Err      error
}

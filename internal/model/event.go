package model

// EventKind classifies a filesystem change.
type EventKind int

const (
	// EventCreate is a new file or directory.
	EventCreate EventKind = iota
	// EventWrite is a content change.
	EventWrite
	// EventRemove is a deletion.
	EventRemove
	// EventRename is a move away from the path.
	EventRename
	// EventChmod is a metadata-only change.
	EventChmod
)

func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "create"
	case EventWrite:
		return "write"
	case EventRemove:
		return "remove"
	case EventRename:
		return "rename"
	case EventChmod:
		return "chmod"
	default:
		return "unknown"
	}
}

// FileChangeEvent is a single notification from the filesystem subscription.
type FileChangeEvent struct {
	Path Path
	Kind EventKind
}

// Triggers reports whether the event should cause re-verification.
func (e FileChangeEvent) Triggers() bool {
	return e.Kind != EventChmod
}

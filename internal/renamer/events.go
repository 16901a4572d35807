package renamer

// Event is the interface implemented by all renamer events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// TraversalStarted is emitted once before the first listing.
type TraversalStarted struct {
	Root string
}

func (TraversalStarted) isEvent() {}

// DirectoryEntered is emitted when a directory is listed, under the path it is listed by.
type DirectoryEntered struct {
	Path string
}

func (DirectoryEntered) isEvent() {}

// EntryRenamed is emitted after each successful rename.
type EntryRenamed struct {
	Rename Rename
}

func (EntryRenamed) isEvent() {}

// EntrySkipped is emitted for entries left untouched.
type EntrySkipped struct {
	Path   string
	Reason SkipReason
}

func (EntrySkipped) isEvent() {}

// EntryFailed is emitted when a rename or listing fails.
type EntryFailed struct {
	Path string
	Err  error
}

func (EntryFailed) isEvent() {}

// TraversalComplete is emitted when Run returns, successfully or not.
type TraversalComplete struct {
	Result *Result
	Err    error
}

func (TraversalComplete) isEvent() {}

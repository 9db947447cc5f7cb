package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 1000

// Snapshotter captures and restores model state.
type Snapshotter interface {
	Snapshot() interface{}
	Restore(state interface{})
}

// Info describes a checkpoint.
type Info struct {
	ID          string
	Description string
	Timestamp   time.Time
}

// entry is a checkpoint with its captured state. A saved entry holds the
// state Undo replaced and never returns to the undo stack.
type entry struct {
	info  Info
	state interface{}
	saved bool
}

// History manages undo/redo checkpoints for one model.
type History struct {
	mu sync.Mutex

	undoStack []*entry
	redoStack []*entry

	model Snapshotter

	// Configuration
	maxEntries int
}

// New creates a history that keeps at most capacity checkpoints.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{
		maxEntries: capacity,
	}
}

// Attach sets the model whose state is captured by checkpoints. Without
// a model, checkpoints carry only their description.
func (h *History) Attach(s Snapshotter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.model = s
}

// Checkpoint captures the current state and returns the new checkpoint id.
// The redo stack is cleared.
func (h *History) Checkpoint(description string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := h.captureLocked(description)
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
	return e.info.ID
}

// Undo restores the previous checkpoint. When no checkpoint is ahead of
// the current state, that state is saved first so Redo can return to it;
// the latest checkpoint is then restored.
func (h *History) Undo() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 && len(h.undoStack) > 0 {
		e := h.captureLocked("undo")
		e.saved = true
		h.redoStack = append(h.redoStack, e)
		h.restoreLocked(h.undoStack[len(h.undoStack)-1])
		return nil
	}
	if len(h.undoStack) < 2 {
		return ErrNothingToUndo
	}

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)
	h.restoreLocked(h.undoStack[len(h.undoStack)-1])
	return nil
}

// Redo restores the most recently undone checkpoint.
func (h *History) Redo() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	if !e.saved {
		h.undoStack = append(h.undoStack, e)
	}
	h.restoreLocked(e)
	return nil
}

// RedoAll restores the state the first Undo started from and returns the
// number of checkpoints redone.
func (h *History) RedoAll() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.redoStack)
	if n == 0 {
		return 0
	}
	last := h.redoStack[0]
	for i := n - 1; i >= 0; i-- {
		if !h.redoStack[i].saved {
			h.undoStack = append(h.undoStack, h.redoStack[i])
		}
	}
	h.redoStack = nil
	h.restoreLocked(last)
	return n
}

func (h *History) captureLocked(description string) *entry {
	e := &entry{
		info: Info{
			ID:          uuid.NewString(),
			Description: description,
			Timestamp:   time.Now(),
		},
	}
	if h.model != nil {
		e.state = h.model.Snapshot()
	}
	return e
}

func (h *History) restoreLocked(e *entry) {
	if h.model != nil && e.state != nil {
		h.model.Restore(e.state)
	}
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.UndoCount() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redoStack) == 0 {
		return len(h.undoStack)
	}
	return len(h.undoStack) - 1
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Current returns the checkpoint in effect.
func (h *History) Current() (Info, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return Info{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info, true
}

// UndoInfo returns every checkpoint on the undo stack, oldest first.
func (h *History) UndoInfo() []Info {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]Info, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info
	}
	return result
}

// Clear removes all checkpoints.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
}

// MaxEntries returns the maximum number of checkpoints kept.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}

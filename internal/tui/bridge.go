package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/pref/internal/renamer"
)

// RenamerEventMsg wraps a renamer.Event for use as a tea.Msg.
type RenamerEventMsg struct {
	Event renamer.Event
}

// EventBridge adapts renamer events to bubble tea messages.
// It implements renamer.EventEmitter and provides a channel for TUI consumption.
type EventBridge struct {
	eventChan chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, eventBuffer),
		done:      make(chan struct{}),
	}
}

// Emit implements renamer.EventEmitter.
// It blocks while the buffer is full, so no event is lost; after Close it returns immediately.
func (b *EventBridge) Emit(event renamer.Event) {
	select {
	case b.eventChan <- RenamerEventMsg{Event: event}:
	case <-b.done:
	}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.eventChan:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close stops delivery. Emit never blocks afterwards. Safe to call more than once.
func (b *EventBridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

// unexported constants.
const (
	eventBuffer = 100
)

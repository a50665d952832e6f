// Package undo provides a command stack for undo/redo of board edits.
//
// What:
//
//   - Command: the do/undo pair every edit must implement.
//   - Manager: two stacks (done, undone) with Do, Undo and Redo.
//
// A fresh Do discards the redo history, the usual command-stack
// semantics. The zero Manager is ready to use.
//
// Errors:
//
//   - ErrNothingToUndo / ErrNothingToRedo: the relevant stack is empty.
package undo

import (
	"errors"
	"fmt"
)

// Sentinel errors for stack operations; branch with errors.Is.
var (
	// ErrNothingToUndo indicates Undo was called with an empty stack.
	ErrNothingToUndo = errors.New("undo: nothing to undo")
	// ErrNothingToRedo indicates Redo was called with an empty stack.
	ErrNothingToRedo = errors.New("undo: nothing to redo")
)

// Command is one reversible edit. Undo must restore the state Do
// observed; the Manager replays these verbatim and in order.
type Command interface {
	Do() error
	Undo() error
}

// Manager keeps the done and undone stacks. Not safe for concurrent
// use; guard externally if shared.
type Manager struct {
	done   []Command
	undone []Command
}

// Do executes the command and pushes it on the done stack. The redo
// stack is cleared. A command that fails is not recorded.
func (m *Manager) Do(c Command) error {
	if err := c.Do(); err != nil {
		return fmt.Errorf("undo: do: %w", err)
	}
	m.done = append(m.done, c)
	m.undone = m.undone[:0]
	return nil
}

// Undo reverses the most recent command and moves it to the redo stack.
func (m *Manager) Undo() error {
	if len(m.done) == 0 {
		return ErrNothingToUndo
	}
	c := m.done[len(m.done)-1]
	if err := c.Undo(); err != nil {
		return fmt.Errorf("undo: undo: %w", err)
	}
	m.done = m.done[:len(m.done)-1]
	m.undone = append(m.undone, c)
	return nil
}

// Redo re-executes the most recently undone command.
func (m *Manager) Redo() error {
	if len(m.undone) == 0 {
		return ErrNothingToRedo
	}
	c := m.undone[len(m.undone)-1]
	if err := c.Do(); err != nil {
		return fmt.Errorf("undo: redo: %w", err)
	}
	m.undone = m.undone[:len(m.undone)-1]
	m.done = append(m.done, c)
	return nil
}

// CanUndo reports whether the done stack is non-empty.
func (m *Manager) CanUndo() bool { return len(m.done) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool { return len(m.undone) > 0 }

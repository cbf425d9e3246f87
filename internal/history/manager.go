// internal/history/manager.go
package history

import (
	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/logger"
	"github.com/quelltext/ted/internal/types"
)

// Manager is the undo/redo engine. It records transactions: ordered
// groups of primitive actions that undo and redo as a single
// user-visible step. A command opens a transaction, pushes actions
// into it (each applied immediately, so later actions can be
// constructed against the already-mutated buffer), and commits.
type Manager struct {
	buf  *buffer.Buffer
	undo [][]Action
	redo [][]Action
	open []Action
	in   bool
}

// NewManager creates an undo/redo engine bound to buf.
func NewManager(buf *buffer.Buffer) *Manager {
	return &Manager{buf: buf}
}

// Begin opens a transaction. Pushes between Begin and Commit form one
// undo step.
func (m *Manager) Begin() {
	if m.in {
		logger.Warnf("History: Begin inside an open transaction")
	}
	m.in = true
	m.open = nil
}

// Push applies act and records it in the open transaction, returning
// the cursor the action carries for its post-state. Calling Push with
// no open transaction starts one implicitly.
func (m *Manager) Push(act Action) types.Position {
	if !m.in {
		logger.Warnf("History: Push outside a transaction")
		m.in = true
	}
	cursor := act.Apply(m.buf)
	m.open = append(m.open, act)
	return cursor
}

// Commit closes the open transaction. A transaction with at least one
// action is recorded on the undo stack and clears the redo stack; an
// empty transaction records nothing and leaves redo intact, so no-op
// commands do not disturb history.
func (m *Manager) Commit() {
	if !m.in {
		logger.Warnf("History: Commit with no open transaction")
		return
	}
	m.in = false
	if len(m.open) == 0 {
		return
	}
	m.redo = m.redo[:0]
	m.undo = append(m.undo, m.open)
	m.open = nil
	logger.Debugf("History: recorded transaction of %d actions (undo depth %d)", len(m.undo[len(m.undo)-1]), len(m.undo))
}

// Do applies a single action as its own transaction.
func (m *Manager) Do(act Action) types.Position {
	m.Begin()
	cursor := m.Push(act)
	m.Commit()
	return cursor
}

// Undo reverts the most recent transaction by applying the inverse of
// each of its actions in reverse order, and moves the transaction to
// the redo stack. It returns the cursor recorded for the state before
// the transaction, or false when there is nothing to undo.
func (m *Manager) Undo() (types.Position, bool) {
	if len(m.undo) == 0 {
		return types.Position{}, false
	}

	txn := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	var cursor types.Position
	for i := len(txn) - 1; i >= 0; i-- {
		cursor = txn[i].Invert().Apply(m.buf)
	}

	m.redo = append(m.redo, txn)
	return cursor, true
}

// Redo replays the most recently undone transaction in its original
// forward order and moves it back to the undo stack. It returns the
// cursor recorded for the state after the transaction, or false when
// there is nothing to redo.
func (m *Manager) Redo() (types.Position, bool) {
	if len(m.redo) == 0 {
		return types.Position{}, false
	}

	txn := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	var cursor types.Position
	for _, act := range txn {
		cursor = act.Apply(m.buf)
	}

	m.undo = append(m.undo, txn)
	return cursor, true
}

// CanUndo reports whether the undo stack is non-empty.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// Clear resets both stacks. Called when a buffer is (re)loaded.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
	m.open = nil
	m.in = false
}

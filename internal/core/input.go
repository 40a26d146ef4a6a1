package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; the engine only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionQuit             // Ctrl+C, Q - end the session
	ActionRotateCW         // N, Up - rotate clockwise
	ActionRotateCCW        // M, Z - rotate counterclockwise
	ActionMoveLeft         // A, Left - shift one column left
	ActionMoveRight        // D, Right - shift one column right
	ActionSoftDrop         // S, Down - descend one row or lock
	ActionHardDrop         // Space - drop to rest and lock
	ActionRestart          // R - start over after game over
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionQuit:      "quit",
	ActionRotateCW:  "rotate_cw",
	ActionRotateCCW: "rotate_ccw",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionSoftDrop:  "soft_drop",
	ActionHardDrop:  "hard_drop",
	ActionRestart:   "restart",
}

// Actions lists every bindable action in display order.
func Actions() []Action {
	return []Action{
		ActionMoveLeft,
		ActionMoveRight,
		ActionRotateCW,
		ActionRotateCCW,
		ActionSoftDrop,
		ActionHardDrop,
		ActionRestart,
		ActionQuit,
	}
}

// String returns the config name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a config name (e.g. "rotate_cw") into an Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// DefaultQueueSize is the capacity of an InputQueue created with size <= 0.
const DefaultQueueSize = 128

// InputQueue carries actions from a frontend's event goroutine to the game
// loop. Push and Poll never block.
type InputQueue struct {
	ch chan Action
}

// NewInputQueue creates a queue holding at most size pending actions.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{ch: make(chan Action, size)}
}

// Push enqueues an action. Returns false if the queue is full and the
// action was dropped.
func (q *InputQueue) Push(a Action) bool {
	if a == ActionNone {
		return false
	}
	select {
	case q.ch <- a:
		return true
	default:
		return false
	}
}

// Poll returns the oldest pending action, or false if none is waiting.
func (q *InputQueue) Poll() (Action, bool) {
	select {
	case a := <-q.ch:
		return a, true
	default:
		return ActionNone, false
	}
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.ch)
}

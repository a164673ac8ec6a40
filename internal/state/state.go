// internal/state/state.go
package state

import (
	"iso-zombie/internal/input"
	"iso-zombie/pkg/render"
)

// Phase is the coarse session state seen from outside.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// State is one screen of the session.
type State interface {
	Enter()
	Update(deltaTime float64, in input.Snapshot)
	Draw(c render.Canvas)
	Exit()
	Phase() Phase
}

// StateMachine holds the active state.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64, in input.Snapshot) {
	if sm.current != nil {
		sm.current.Update(deltaTime, in)
	}
}

func (sm *StateMachine) Draw(c render.Canvas) {
	if sm.current != nil {
		sm.current.Draw(c)
	}
}

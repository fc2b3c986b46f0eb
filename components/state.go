package components

import (
	"github.com/automoto/ferrisdive/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set switches state and restarts the timer. No-op when unchanged.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()

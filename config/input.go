package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFastFall
	ActionRestart
	ActionQuit
	ActionDebugColliders
	ActionDebugReroll
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds settings shared by every binding
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}

package config

// StateID names an animation state. Each sprite sheet key has its own
// frame ranges per state, see CharacterAnimations.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Swim
	Jump
	Patrol
	Bite
	Spin
	Float
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Swim:      "swim",
	Jump:      "jump",
	Patrol:    "patrol",
	Bite:      "bite",
	Spin:      "spin",
	Float:     "float",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

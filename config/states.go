package config

// StateID identifies a player stance / sprite selection.
type StateID int

const (
	StateNone StateID = iota
	StateRunning
	StateJumping
	StateDucking
)

func (s StateID) String() string {
	switch s {
	case StateRunning:
		return "run"
	case StateJumping:
		return "jump"
	case StateDucking:
		return "duck"
	}
	return "none"
}

// SessionStateID identifies the top-level game state machine position.
type SessionStateID int

const (
	SessionMenu SessionStateID = iota
	SessionPlaying
	SessionGameOver
)

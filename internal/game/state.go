package game

// Choice identifies the mission action a player last committed to.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceBoost
	ChoiceManual
)

// String returns a human-readable name for the choice.
func (c Choice) String() string {
	switch c {
	case ChoiceBoost:
		return "boost"
	case ChoiceManual:
		return "manual"
	default:
		return "none"
	}
}

// State holds the mutable player and mission progress for one session.
type State struct {
	ShipName            string
	Callsign            string
	Chapter             int
	PowerCells          int
	DistressPacketsSent int
	LastChoice          Choice
}

// DefaultState returns the starting game state.
func DefaultState() State {
	return State{
		ShipName:   "Vanguard",
		Callsign:   "Pilot",
		Chapter:    1,
		PowerCells: 3,
	}
}

// SetShipName validates and applies a new ship name.
func (s *State) SetShipName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.ShipName = name
	return nil
}

// SetCallsign validates and applies a new callsign.
func (s *State) SetCallsign(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	s.Callsign = name
	return nil
}

// Boost spends one power cell to boost the relay and sends a distress
// packet. Returns ErrNoPowerCells without mutating anything when the
// player has no cells left.
func (s *State) Boost() error {
	if s.PowerCells <= 0 {
		return ErrNoPowerCells
	}
	s.PowerCells--
	s.DistressPacketsSent++
	s.LastChoice = ChoiceBoost
	return nil
}

// ManualReroute records the manual reroute as the committed choice.
func (s *State) ManualReroute() {
	s.LastChoice = ChoiceManual
}

// AdvanceChapter moves the story forward after a completed mission.
func (s *State) AdvanceChapter() {
	s.Chapter++
}

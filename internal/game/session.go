package game

import (
	"fmt"
	"strings"
)

// ScreenID identifies a screen in the menu state machine.
type ScreenID int

const (
	ScreenMain ScreenID = iota
	ScreenSettings
	ScreenProfile
	ScreenMission
	ScreenStatus
	ScreenStories
	ScreenInclusivity
	ScreenQuality
	ScreenExit
)

// Action is a named menu action. Every screen maps its ordinals to
// actions through a fixed table; dispatch switches exhaustively over
// these values with no numeric fallthrough.
type Action int

const (
	ActionNone Action = iota
	ActionShowStories
	ActionShowInclusivity
	ActionShowQuality
	ActionStartMission
	ActionShowStatus
	ActionOpenProfile
	ActionOpenSettings
	ActionExit
	ActionToggleTextSize
	ActionToggleContrast
	ActionToggleMotion
	ActionToggleConfirm
	ActionEditShipName
	ActionEditCallsign
	ActionBoostRelay
	ActionManualReroute
	ActionBack
)

// Option is one numbered entry on a screen.
type Option struct {
	Key    int
	Label  string
	Action Action
}

// Notice is a short user-visible message shown above the prompt.
type Notice struct {
	Text string
	OK   bool
}

// MissionOutcome describes a completed mission action, for the journal.
type MissionOutcome struct {
	Choice              Choice
	Chapter             int
	PowerCells          int
	DistressPacketsSent int
	ShipName            string
	Callsign            string
}

// inputMode selects how the next submitted line is interpreted.
type inputMode int

const (
	modeChoose inputMode = iota
	modeEditShipName
	modeEditCallsign
	modeConfirmBoost
	modeConfirmManual
)

// Session is the menu loop engine: a state machine over the fixed screen
// set, fed one line of input per step. Invalid input re-renders the
// current screen with a notice; valid input dispatches to the mapped
// action. The two records are owned by the caller and threaded through
// by reference for the life of the session.
type Session struct {
	Prefs   *Preferences
	State   *State
	screen  ScreenID
	mode    inputMode
	notice  *Notice
	outcome *MissionOutcome
}

// NewSession creates a session on the main menu.
func NewSession(prefs *Preferences, state *State) *Session {
	return &Session{Prefs: prefs, State: state, screen: ScreenMain}
}

// Screen returns the current screen.
func (s *Session) Screen() ScreenID { return s.screen }

// Done reports whether the player selected Exit.
func (s *Session) Done() bool { return s.screen == ScreenExit }

// InChoiceMode reports whether the next line is a numbered selection
// rather than free text or a confirmation answer.
func (s *Session) InChoiceMode() bool { return s.mode == modeChoose }

// Notice returns the pending notice, or nil.
func (s *Session) Notice() *Notice { return s.notice }

// TakeOutcome returns and clears the completed mission outcome, if any.
func (s *Session) TakeOutcome() *MissionOutcome {
	o := s.outcome
	s.outcome = nil
	return o
}

// Title returns the heading for the current screen.
func (s *Session) Title() string {
	switch s.screen {
	case ScreenMain:
		return "Galactic Adventure"
	case ScreenSettings:
		return "Settings"
	case ScreenProfile:
		return "Profile"
	case ScreenMission:
		return "Mission: Relay Crisis"
	case ScreenStatus:
		return "Status"
	case ScreenStories:
		return "User Stories"
	case ScreenInclusivity:
		return "Inclusivity Heuristics"
	case ScreenQuality:
		return "Quality Attributes"
	case ScreenExit:
		return "Exit"
	}
	return ""
}

// Body returns the narrative and state lines for the current screen,
// excluding the numbered options.
func (s *Session) Body() []string {
	switch s.screen {
	case ScreenProfile:
		return []string{
			fmt.Sprintf("Ship Name: %s", s.State.ShipName),
			fmt.Sprintf("Callsign: %s", s.State.Callsign),
		}
	case ScreenMission:
		return []string{
			"A deep-space relay is failing.",
			"You may boost the system or attempt a manual reroute.",
			"",
			fmt.Sprintf("Power Cells: %d", s.State.PowerCells),
		}
	case ScreenStatus:
		return []string{
			fmt.Sprintf("Ship: %s", s.State.ShipName),
			fmt.Sprintf("Callsign: %s", s.State.Callsign),
			fmt.Sprintf("Chapter: %d", s.State.Chapter),
			fmt.Sprintf("Power Cells: %d", s.State.PowerCells),
			fmt.Sprintf("Distress Packets Sent: %d", s.State.DistressPacketsSent),
			fmt.Sprintf("Last Choice: %s", s.State.LastChoice),
		}
	case ScreenStories:
		return []string{
			"1) Adjust accessibility settings for comfortable reading.",
			"2) Make mission choices that affect resources.",
			"3) Recover safely from invalid input.",
		}
	case ScreenInclusivity:
		return []string{
			"1) User control via settings",
			"2) Support for varied abilities",
			"3) Clear and consistent language",
			"4) Error prevention and recovery",
			"5) Respectful, neutral tone",
			"6) Transparent system feedback",
			"7) Privacy (no accounts or tracking)",
			"8) Predictable consequences",
		}
	case ScreenQuality:
		return []string{
			"Accessibility / Usability: Readability and motion options",
			"Reliability: Graceful handling of invalid input",
			"Maintainability: Clear separation of UI, logic, and data",
		}
	}
	return nil
}

// Options returns the fixed ordered option table for the current screen.
func (s *Session) Options() []Option {
	switch s.screen {
	case ScreenMain:
		return []Option{
			{1, "User Stories", ActionShowStories},
			{2, "Inclusivity Heuristics", ActionShowInclusivity},
			{3, "Quality Attributes", ActionShowQuality},
			{4, "Start Mission", ActionStartMission},
			{5, "Status", ActionShowStatus},
			{6, "Profile", ActionOpenProfile},
			{7, "Settings", ActionOpenSettings},
			{8, "Exit", ActionExit},
		}
	case ScreenSettings:
		return []Option{
			{1, fmt.Sprintf("Text size: %s", s.Prefs.TextSize), ActionToggleTextSize},
			{2, fmt.Sprintf("High contrast: %t", s.Prefs.HighContrast), ActionToggleContrast},
			{3, fmt.Sprintf("Reduced motion: %t", s.Prefs.ReducedMotion), ActionToggleMotion},
			{4, fmt.Sprintf("Confirm actions: %t", s.Prefs.ConfirmActions), ActionToggleConfirm},
			{5, "Back", ActionBack},
		}
	case ScreenProfile:
		return []Option{
			{1, "Edit ship name", ActionEditShipName},
			{2, "Edit callsign", ActionEditCallsign},
			{3, "Back", ActionBack},
		}
	case ScreenMission:
		return []Option{
			{1, "Boost relay (costs 1 power cell)", ActionBoostRelay},
			{2, "Manual reroute", ActionManualReroute},
			{3, "Back", ActionBack},
		}
	case ScreenStatus, ScreenStories, ScreenInclusivity, ScreenQuality:
		return []Option{
			{1, "Back", ActionBack},
		}
	}
	return nil
}

// Prompt returns the input prompt for the current mode.
func (s *Session) Prompt() string {
	switch s.mode {
	case modeEditShipName:
		return "New ship name:"
	case modeEditCallsign:
		return "New callsign:"
	case modeConfirmBoost:
		return "Spend 1 power cell? (y/n):"
	case modeConfirmManual:
		return "Attempt manual reroute? (y/n):"
	}
	opts := s.Options()
	if len(opts) == 1 {
		return "Choose (1):"
	}
	return fmt.Sprintf("Choose (1-%d):", len(opts))
}

// Handle consumes one line of input and advances the state machine.
func (s *Session) Handle(line string) {
	s.notice = nil

	switch s.mode {
	case modeEditShipName:
		s.mode = modeChoose
		if err := s.State.SetShipName(strings.TrimSpace(line)); err != nil {
			s.fail(err.Error())
		}
	case modeEditCallsign:
		s.mode = modeChoose
		if err := s.State.SetCallsign(strings.TrimSpace(line)); err != nil {
			s.fail(err.Error())
		}
	case modeConfirmBoost:
		s.mode = modeChoose
		if confirmed(line) {
			s.completeBoost()
		}
	case modeConfirmManual:
		s.mode = modeChoose
		if confirmed(line) {
			s.completeManual()
		}
	default:
		s.handleChoice(line)
	}
}

// handleChoice validates a numbered selection and dispatches its action.
func (s *Session) handleChoice(line string) {
	opts := s.Options()
	valid := make(map[int]bool, len(opts))
	byKey := make(map[int]Action, len(opts))
	for _, o := range opts {
		valid[o.Key] = true
		byKey[o.Key] = o.Action
	}

	key, ok := ParseBoundedChoice(line, valid)
	if !ok {
		s.fail("Invalid selection.")
		return
	}
	s.dispatch(byKey[key])
}

// dispatch applies a named action. Exhaustive over the action set.
func (s *Session) dispatch(a Action) {
	switch a {
	case ActionShowStories:
		s.screen = ScreenStories
	case ActionShowInclusivity:
		s.screen = ScreenInclusivity
	case ActionShowQuality:
		s.screen = ScreenQuality
	case ActionStartMission:
		s.screen = ScreenMission
	case ActionShowStatus:
		s.screen = ScreenStatus
	case ActionOpenProfile:
		s.screen = ScreenProfile
	case ActionOpenSettings:
		s.screen = ScreenSettings
	case ActionExit:
		s.screen = ScreenExit
	case ActionToggleTextSize:
		s.Prefs.ToggleTextSize()
	case ActionToggleContrast:
		s.Prefs.HighContrast = !s.Prefs.HighContrast
	case ActionToggleMotion:
		s.Prefs.ReducedMotion = !s.Prefs.ReducedMotion
	case ActionToggleConfirm:
		s.Prefs.ConfirmActions = !s.Prefs.ConfirmActions
	case ActionEditShipName:
		s.mode = modeEditShipName
	case ActionEditCallsign:
		s.mode = modeEditCallsign
	case ActionBoostRelay:
		s.startBoost()
	case ActionManualReroute:
		s.startManual()
	case ActionBack:
		s.screen = ScreenMain
	case ActionNone:
	}
}

// startBoost checks the power cell precondition, then either asks for
// confirmation or completes immediately when confirmations are off.
func (s *Session) startBoost() {
	if s.State.PowerCells <= 0 {
		s.fail(ErrNoPowerCells.Error())
		return
	}
	if s.Prefs.ConfirmActions {
		s.mode = modeConfirmBoost
		return
	}
	s.completeBoost()
}

func (s *Session) startManual() {
	if s.Prefs.ConfirmActions {
		s.mode = modeConfirmManual
		return
	}
	s.completeManual()
}

// completeBoost commits the boost: spend a cell, send a packet, end the
// mission session.
func (s *Session) completeBoost() {
	if err := s.State.Boost(); err != nil {
		// Cells ran out between check and confirm; stay in the mission.
		s.fail(err.Error())
		return
	}
	s.finishMission("Relay boosted successfully.")
}

func (s *Session) completeManual() {
	s.State.ManualReroute()
	s.finishMission("Manual reroute completed.")
}

// finishMission records the outcome, advances the chapter, and returns
// control to the main menu.
func (s *Session) finishMission(msg string) {
	s.State.AdvanceChapter()
	s.outcome = &MissionOutcome{
		Choice:              s.State.LastChoice,
		Chapter:             s.State.Chapter,
		PowerCells:          s.State.PowerCells,
		DistressPacketsSent: s.State.DistressPacketsSent,
		ShipName:            s.State.ShipName,
		Callsign:            s.State.Callsign,
	}
	s.screen = ScreenMain
	s.notice = &Notice{Text: msg, OK: true}
}

func (s *Session) fail(msg string) {
	s.notice = &Notice{Text: msg}
}

// confirmed reports whether a confirmation line accepts the action.
// Anything other than y/yes declines.
func confirmed(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

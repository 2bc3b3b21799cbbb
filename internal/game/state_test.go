package game

import (
	"errors"
	"testing"
)

func TestBoostWithNoCellsLeavesStateUnchanged(t *testing.T) {
	s := DefaultState()
	s.PowerCells = 0
	before := s

	err := s.Boost()
	if !errors.Is(err, ErrNoPowerCells) {
		t.Fatalf("Boost() with 0 cells = %v, want ErrNoPowerCells", err)
	}
	if s != before {
		t.Errorf("Boost() mutated state on failure: %+v vs %+v", s, before)
	}
}

func TestBoostSpendsCellAndSendsPacket(t *testing.T) {
	s := DefaultState()
	s.PowerCells = 3

	if err := s.Boost(); err != nil {
		t.Fatalf("Boost() failed: %v", err)
	}
	if s.PowerCells != 2 {
		t.Errorf("PowerCells = %d, want 2", s.PowerCells)
	}
	if s.DistressPacketsSent != 1 {
		t.Errorf("DistressPacketsSent = %d, want 1", s.DistressPacketsSent)
	}
	if s.LastChoice != ChoiceBoost {
		t.Errorf("LastChoice = %v, want boost", s.LastChoice)
	}
}

func TestManualRerouteSetsChoiceOnly(t *testing.T) {
	s := DefaultState()

	s.ManualReroute()
	if s.LastChoice != ChoiceManual {
		t.Errorf("LastChoice = %v, want manual", s.LastChoice)
	}
	if s.PowerCells != 3 || s.DistressPacketsSent != 0 {
		t.Errorf("ManualReroute() touched resources: %+v", s)
	}
}

func TestSetShipNameRejectsInvalid(t *testing.T) {
	s := DefaultState()

	if err := s.SetShipName(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("SetShipName(\"\") = %v, want ErrEmptyName", err)
	}
	if s.ShipName != "Vanguard" {
		t.Errorf("ShipName changed on failed set: %q", s.ShipName)
	}

	if err := s.SetShipName("Dauntless"); err != nil {
		t.Fatalf("SetShipName() failed: %v", err)
	}
	if s.ShipName != "Dauntless" {
		t.Errorf("ShipName = %q, want Dauntless", s.ShipName)
	}
}

func TestTogglePreferenceTwiceRestoresOriginal(t *testing.T) {
	p := DefaultPreferences()
	original := p

	p.ToggleTextSize()
	p.ToggleTextSize()
	p.HighContrast = !p.HighContrast
	p.HighContrast = !p.HighContrast

	if p != original {
		t.Errorf("double toggle did not restore preferences: %+v vs %+v", p, original)
	}
}

func TestTextSizeString(t *testing.T) {
	if TextNormal.String() != "normal" || TextLarge.String() != "large" {
		t.Errorf("unexpected TextSize names: %q, %q", TextNormal, TextLarge)
	}
}

package rules

import (
	"testing"

	"github.com/pennyante/tablerules/roulette"
)

func TestPhaseControllerStartsOpen(t *testing.T) {
	pc := NewPhaseController(NewValidator(mustLoad(t, American)))

	if pc.Current() != PhaseOpen {
		t.Errorf("Expected initial phase open, got %s", pc.Current())
	}
	if !pc.Accepting() {
		t.Error("Expected a fresh controller to accept bets")
	}
}

func TestPhaseControllerCloseReturnsReport(t *testing.T) {
	pc := NewPhaseController(NewValidator(mustLoad(t, American)))

	res, err := pc.Close([]Bet{
		{Type: roulette.Red, Amount: 25},
		{Type: roulette.Red, Amount: 10}, // below the 25 minimum
	})
	if err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Closing never rolls back, even when the batch is invalid.
	if pc.Current() != PhaseClosed {
		t.Errorf("Expected phase closed after Close, got %s", pc.Current())
	}
	if res.Valid {
		t.Error("Expected the closing report to flag the undersized bet")
	}
	if res.TotalAmount != 35 {
		t.Errorf("Expected closing total 35, got %d", res.TotalAmount)
	}
}

func TestPhaseControllerCloseIdempotent(t *testing.T) {
	pc := NewPhaseController(NewValidator(mustLoad(t, American)))

	if _, err := pc.Close(nil); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	res, err := pc.Close(nil)
	if err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
	if pc.Current() != PhaseClosed {
		t.Errorf("Expected phase to stay closed, got %s", pc.Current())
	}
	if !res.Valid || res.BetCount != 0 {
		t.Errorf("Expected a trivial empty-batch success, got %+v", res)
	}
}

func TestPhaseControllerReopen(t *testing.T) {
	pc := NewPhaseController(NewValidator(mustLoad(t, American)))

	pc.Open() // no-op while already open
	if pc.Current() != PhaseOpen {
		t.Errorf("Expected open to be a no-op, got %s", pc.Current())
	}

	if _, err := pc.Close(nil); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	pc.Open()
	if !pc.Accepting() {
		t.Error("Expected the controller to accept bets again after Open")
	}
}

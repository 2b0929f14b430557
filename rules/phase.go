package rules

// Phase is whether the current round is accepting new bets.
type Phase int

const (
	PhaseOpen Phase = iota
	PhaseClosed
)

func (p Phase) String() string {
	return [...]string{"open", "closed"}[p]
}

// PhaseController gates whether new bets may be accepted for a round. The
// initial phase is open. The controller is not internally synchronized; the
// table collaborator that owns the accumulated-bet set holds the lock that
// covers both.
type PhaseController struct {
	phase     Phase
	validator *Validator
}

// NewPhaseController creates a controller in the open phase.
func NewPhaseController(v *Validator) *PhaseController {
	return &PhaseController{phase: PhaseOpen, validator: v}
}

// Current returns the current phase.
func (pc *PhaseController) Current() Phase {
	return pc.phase
}

// Accepting reports whether new bets may be accepted. Entry points check
// this before running any amount validation; phase gating is cheaper and
// logically prior.
func (pc *PhaseController) Accepting() bool {
	return pc.phase == PhaseOpen
}

// Open begins a new betting round. No-op if already open.
func (pc *PhaseController) Open() {
	pc.phase = PhaseOpen
}

// Close stops accepting bets and validates whatever has accumulated for the
// round, returning that report alongside the transition. Closing never rolls
// back: the phase becomes closed even when the batch is invalid, and it is
// the caller's job to inspect the report before resolving the round. Calling
// Close again re-validates and reports without re-transitioning.
func (pc *PhaseController) Close(bets []Bet) (Result, error) {
	res, err := pc.validator.ValidateBatch(bets)
	if err != nil {
		return Result{}, err
	}
	pc.phase = PhaseClosed
	return res, nil
}

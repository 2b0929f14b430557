package table

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/pennyante/tablerules/roulette"
	"github.com/pennyante/tablerules/rules"
)

// PlacedBet is a wager accepted into the current round. Spaces are the wheel
// values the bet covers; outside bets may leave it empty and win on their
// membership group.
type PlacedBet struct {
	Player string
	Type   roulette.BetType
	Spaces []string
	Amount int
}

// Config describes how a table resolves its rule set.
type Config struct {
	Variant      rules.Variant
	DocumentFile string
	Overlay      *rules.RuleDocument

	// BettingWindow auto-closes betting this long after a round opens.
	// Zero disables the timer; the croupier closes by hand.
	BettingWindow time.Duration
}

// Table owns everything the rules engine deliberately does not: the seated
// players and their balances, the accumulated-bet set for the round, and the
// no-more-bets timer. All bet acceptance goes through the engine's phase
// gate and incremental validation before any balance is touched.
type Table struct {
	mu         sync.Mutex
	rules      *rules.Rules
	validator  *rules.Validator
	phase      *rules.PhaseController
	players    map[string]*Player
	bets       []PlacedBet
	imprisoned []PlacedBet
	round      int

	logger *log.Logger
	clock  quartz.Clock
	window time.Duration
	timer  *quartz.Timer
}

// New resolves the table's rule set and opens the first round.
func New(cfg Config, logger *log.Logger, clock quartz.Clock) (*Table, error) {
	var opts []rules.Option
	if cfg.DocumentFile != "" {
		opts = append(opts, rules.WithDocumentFile(cfg.DocumentFile))
	}
	if cfg.Overlay != nil {
		opts = append(opts, rules.WithOverlay(cfg.Overlay))
	}
	r, err := rules.Load(cfg.Variant, opts...)
	if err != nil {
		return nil, err
	}

	t := &Table{
		rules:   r,
		players: make(map[string]*Player),
		logger:  logger,
		clock:   clock,
		window:  cfg.BettingWindow,
	}
	t.validator = rules.NewValidator(r, rules.WithBankroll(t.canAfford))
	// Affordability is a placement-time check; stakes are already collected
	// by the time the closing batch is re-validated, so the phase controller
	// gets a validator without the bankroll predicate.
	t.phase = rules.NewPhaseController(rules.NewValidator(r))
	t.armWindow()

	logger.Info("table open",
		"variant", r.Variant(),
		"minimumBet", r.TableMinimum(),
		"maximumBet", r.TableMaximum(),
		"maximumTotal", r.MaximumTotal())
	return t, nil
}

// Rules returns the table's resolved rule set.
func (t *Table) Rules() *rules.Rules {
	return t.rules
}

// Phase returns the current betting phase.
func (t *Table) Phase() rules.Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase.Current()
}

// AddPlayer seats a player with an initial buy-in.
func (t *Table) AddPlayer(name string, buyIn int) (*Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[name]; ok {
		return nil, fmt.Errorf("a player named %q is already seated", name)
	}
	p := &Player{Name: name}
	if err := p.BuyIn(buyIn); err != nil {
		return nil, err
	}
	t.players[name] = p
	t.logger.Debug("player seated", "player", name, "chips", buyIn)
	return p, nil
}

// Player returns a seated player by name, nil when absent.
func (t *Table) Player(name string) *Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.players[name]
}

// canAfford is the bankroll predicate wired into the validator. Only called
// from validation paths that already hold t.mu.
func (t *Table) canAfford(player string, amount int) bool {
	p, ok := t.players[player]
	return ok && p.CanAfford(amount)
}

// PlaceBet validates and, when valid, accepts a bet into the round. The
// phase check, the total-limit check and the append are one atomic unit
// under the table lock, so two concurrent bets cannot both pass a total
// check that only one of them should.
func (t *Table) PlaceBet(player string, bt roulette.BetType, spaces []string, amount int) (rules.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[player]; !ok {
		return rules.Result{}, fmt.Errorf("no player named %q is seated", player)
	}

	if !t.phase.Accepting() {
		return rules.Result{
			Errors: []rules.Failure{{Kind: rules.BettingClosed, Message: "betting is closed for this round"}},
		}, nil
	}

	res, err := t.validator.ValidateIncremental(t.roundTotal(), rules.Bet{Type: bt, Amount: amount, Player: player})
	if err != nil {
		return rules.Result{}, err
	}
	if !res.Valid {
		t.logger.Debug("rejected bet", "player", player, "type", bt, "amount", amount, "errors", len(res.Errors))
		return res, nil
	}

	t.players[player].deduct(amount)
	t.bets = append(t.bets, PlacedBet{Player: player, Type: bt, Spaces: spaces, Amount: amount})
	t.logger.Debug("accepted bet", "player", player, "type", bt, "amount", amount, "roundTotal", res.TotalAmount)
	return res, nil
}

// RoundTotal returns the combined wager accepted so far this round.
func (t *Table) RoundTotal() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.roundTotal()
}

func (t *Table) roundTotal() int {
	total := 0
	for _, b := range t.bets {
		total += b.Amount
	}
	return total
}

// Bets returns a copy of the round's accepted bets.
func (t *Table) Bets() []PlacedBet {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]PlacedBet, len(t.bets))
	copy(out, t.bets)
	return out
}

// CloseBetting stops accepting bets and returns the closing validation
// report over the accumulated batch.
func (t *Table) CloseBetting() (rules.Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeLocked()
}

func (t *Table) closeLocked() (rules.Result, error) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	res, err := t.phase.Close(t.betDescriptors())
	if err != nil {
		return rules.Result{}, err
	}
	t.logger.Info("betting closed", "bets", res.BetCount, "total", res.TotalAmount, "valid", res.Valid)
	return res, nil
}

// OpenRound begins a new betting round, clearing the accumulated set the
// table owns. Bets imprisoned by the en prison rule carry over.
func (t *Table) OpenRound() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.openLocked()
}

func (t *Table) openLocked() {
	t.bets = append([]PlacedBet(nil), t.imprisoned...)
	t.imprisoned = nil
	t.round++
	t.phase.Open()
	t.armWindow()
	t.logger.Debug("round open", "round", t.round, "carriedBets", len(t.bets))
}

// armWindow schedules the no-more-bets timer. Caller holds t.mu. The callback
// captures the round generation it was armed for: a callback that has already
// fired but is still waiting on the lock while the round is resolved must not
// close the round opened after it.
func (t *Table) armWindow() {
	if t.window <= 0 {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	round := t.round
	t.timer = t.clock.AfterFunc(t.window, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.round != round {
			return
		}
		if _, err := t.closeLocked(); err != nil {
			t.logger.Error("failed to close betting window", "error", err)
		}
	})
}

func (t *Table) betDescriptors() []rules.Bet {
	out := make([]rules.Bet, len(t.bets))
	for i, b := range t.bets {
		out[i] = rules.Bet{Type: b.Type, Amount: b.Amount, Player: b.Player}
	}
	return out
}

// RoundReport is the outcome of resolving a round.
type RoundReport struct {
	Closing rules.Result
	Winning roulette.Space

	// Payouts is the full amount returned to each winning player, stake
	// included. Returned is half-stake refunds under la partage or
	// surrender. Imprisoned lists even-money bets held for the next round
	// under en prison.
	Payouts    map[string]int
	Returned   map[string]int
	Imprisoned []PlacedBet
}

// ResolveRound closes betting if still open, settles every accepted bet
// against the winning space, then opens the next round. Settlement is a
// ratio lookup per winning bet; losing stakes were already collected at
// placement time.
func (t *Table) ResolveRound(winning roulette.Space) (RoundReport, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	closing, err := t.closeLocked()
	if err != nil {
		return RoundReport{}, err
	}

	report := RoundReport{
		Closing:  closing,
		Winning:  winning,
		Payouts:  make(map[string]int),
		Returned: make(map[string]int),
	}

	for _, b := range t.bets {
		if roulette.Wins(b.Type, b.Spaces, winning) {
			ratio, err := t.rules.PayoutRatio(b.Type)
			if err != nil {
				return RoundReport{}, err
			}
			pay := roulette.Payout(b.Amount, ratio)
			t.players[b.Player].credit(pay)
			report.Payouts[b.Player] += pay
			continue
		}

		if winning.IsZero() && b.Type.IsEvenMoney() {
			switch {
			case t.rules.RuleEnabled("en_prison"):
				report.Imprisoned = append(report.Imprisoned, b)
			case t.rules.RuleEnabled("la_partage") || t.rules.RuleEnabled("surrender"):
				half := b.Amount / 2
				t.players[b.Player].credit(half)
				report.Returned[b.Player] += half
			}
		}
	}

	t.logger.Info("round resolved",
		"winning", winning.Value,
		"color", winning.Color,
		"winners", len(report.Payouts),
		"imprisoned", len(report.Imprisoned))

	t.imprisoned = report.Imprisoned
	t.openLocked()
	return report, nil
}

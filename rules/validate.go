package rules

import (
	"fmt"

	"github.com/pennyante/tablerules/roulette"
)

// Bet is the minimal view of a wager the validator needs: the type, the
// amount, and optionally the owning player. Constructed by the placement
// layer; read-only here.
type Bet struct {
	Type   roulette.BetType
	Amount int
	Player string
}

// TypeSummary is the per-type breakdown carried by aggregate results.
type TypeSummary struct {
	Count int
	Total int
}

// Result is the outcome of one validation call. Batch and incremental calls
// additionally populate TotalAmount, BetCount and PerType so a caller can
// render a breakdown even for a rejected batch.
type Result struct {
	Valid       bool
	Errors      []Failure
	Warnings    []string
	TotalAmount int
	BetCount    int
	PerType     map[roulette.BetType]TypeSummary
}

func (res *Result) fail(kind FailureKind, format string, args ...any) {
	res.Valid = false
	res.Errors = append(res.Errors, Failure{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// BankrollFunc reports whether a player can cover an amount. Wired in by the
// round/table collaborator that owns player balances; the validator never
// performs the deduction itself.
type BankrollFunc func(player string, amount int) bool

// Validator checks bets against a resolved rule set. It holds no per-round
// state; every call is a pure function of its inputs and the rules.
type Validator struct {
	rules    *Rules
	bankroll BankrollFunc
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithBankroll adds an affordability predicate as one more validation check.
func WithBankroll(fn BankrollFunc) ValidatorOption {
	return func(v *Validator) { v.bankroll = fn }
}

// NewValidator creates a validator over a resolved rule set.
func NewValidator(r *Rules, opts ...ValidatorOption) *Validator {
	v := &Validator{rules: r}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Rules returns the rule set this validator checks against.
func (v *Validator) Rules() *Rules {
	return v.rules
}

// ValidateBet checks a single bet: type allowance, positive amount, and the
// derived per-type minimum and maximum. All failing checks are collected
// rather than short-circuited. The only error return is a ConfigError from
// the ratio lookup when the type is wholly unconfigured.
func (v *Validator) ValidateBet(bet Bet) (Result, error) {
	res := Result{Valid: true}

	if !v.rules.IsAllowed(bet.Type) {
		res.fail(BetTypeNotAllowed, "bet type %s is not allowed on this table", bet.Type)
	}

	if bet.Amount <= 0 {
		res.fail(InvalidAmount, "bet amount must be a positive number of chips, got %d", bet.Amount)
		return res, nil
	}

	minAmount, err := v.rules.MinimumAmount(bet.Type)
	if err != nil {
		return Result{}, err
	}
	maxAmount, err := v.rules.MaximumAmount(bet.Type)
	if err != nil {
		return Result{}, err
	}

	if bet.Amount < minAmount {
		res.fail(BelowMinimum, "bet of %d on %s is below the minimum of %d", bet.Amount, bet.Type, minAmount)
	}
	if bet.Amount > maxAmount {
		res.fail(AboveMaximum, "bet of %d on %s exceeds the maximum of %d", bet.Amount, bet.Type, maxAmount)
	}

	if v.bankroll != nil && !v.bankroll(bet.Player, bet.Amount) {
		res.fail(InsufficientBalance, "player %s cannot cover a bet of %d", bet.Player, bet.Amount)
	}

	return res, nil
}

// ValidateBatch checks a whole round's bets together. Every member is run
// through ValidateBet and all failures are collected with the originating
// bet's position, then the combined total is checked against the table-wide
// cap. The per-type summary is populated regardless of validity.
func (v *Validator) ValidateBatch(bets []Bet) (Result, error) {
	res := Result{
		Valid:    true,
		BetCount: len(bets),
		PerType:  make(map[roulette.BetType]TypeSummary),
	}

	for i, bet := range bets {
		betRes, err := v.ValidateBet(bet)
		if err != nil {
			return Result{}, err
		}
		for _, f := range betRes.Errors {
			res.Valid = false
			res.Errors = append(res.Errors, Failure{
				Kind:    f.Kind,
				Message: fmt.Sprintf("bet %d: %s", i+1, f.Message),
			})
		}
		res.Warnings = append(res.Warnings, betRes.Warnings...)

		res.TotalAmount += bet.Amount
		summary := res.PerType[bet.Type]
		summary.Count++
		summary.Total += bet.Amount
		res.PerType[bet.Type] = summary
	}

	limit := v.rules.MaximumTotal()
	if res.TotalAmount > limit {
		res.fail(TotalExceedsLimit, "combined wager of %d exceeds the table total limit of %d", res.TotalAmount, limit)
	} else if res.TotalAmount == limit {
		res.Warnings = append(res.Warnings, "round total has reached the table cap")
	}

	return res, nil
}

// ValidateIncremental is the form used when bets arrive one at a time during
// an open round: it checks what the round total would become before any
// external state is touched, and independently reports whether the new bet
// alone passes. The combined Valid is the AND of both checks.
func (v *Validator) ValidateIncremental(existingTotal int, bet Bet) (Result, error) {
	res, err := v.ValidateBet(bet)
	if err != nil {
		return Result{}, err
	}

	res.BetCount = 1
	res.TotalAmount = existingTotal + bet.Amount
	res.PerType = map[roulette.BetType]TypeSummary{
		bet.Type: {Count: 1, Total: bet.Amount},
	}

	limit := v.rules.MaximumTotal()
	if res.TotalAmount > limit {
		res.fail(TotalExceedsLimit,
			"accepting this bet would bring the round total to %d, exceeding the table limit of %d",
			res.TotalAmount, limit)
	} else if res.TotalAmount == limit {
		res.Warnings = append(res.Warnings, "round total has reached the table cap")
	}

	return res, nil
}

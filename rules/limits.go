package rules

import (
	"fmt"

	"github.com/pennyante/tablerules/roulette"
)

// Rules is a rule document after variant selection and overlay merge.
// Instances are immutable once loaded and safe to share across tables and
// goroutines. Derived amounts are computed on demand rather than cached, so
// a table that loads new limits gets consistent numbers immediately.
type Rules struct {
	variant Variant
	doc     RuleDocument
}

// Variant returns the table variant this rule set was loaded for.
func (r *Rules) Variant() Variant {
	return r.variant
}

// TableMinimum returns the table-wide base minimum bet.
func (r *Rules) TableMinimum() int {
	return *r.doc.TableLimits.MinimumBet
}

// TableMaximum returns the table-wide base maximum bet.
func (r *Rules) TableMaximum() int {
	return *r.doc.TableLimits.MaximumBet
}

// MaximumTotal returns the cap on the combined wager across a round.
func (r *Rules) MaximumTotal() int {
	return *r.doc.TableLimits.MaximumTotalBet
}

// PayoutRatio returns the configured payout multiplier for a bet type.
// Unlike the bet ratios there is no global fallback: a type without an
// explicit payout entry is simply not offered on this table.
func (r *Rules) PayoutRatio(bt roulette.BetType) (int, error) {
	if v := r.doc.PayoutRatios.forType(bt); v != nil {
		return *v, nil
	}
	return 0, &ConfigError{
		Field:  "payout_ratios." + bt.String(),
		Reason: "no payout ratio configured for bet type",
	}
}

// resolveRatio applies the type-specific entry, then the global fallback.
// Absence of both is a configuration error, never a silent zero: the ratios
// are load-bearing and an unconfigured type must not pass validation against
// an accidental zero minimum.
func resolveRatio(sec *RatioSection, section string, bt roulette.BetType) (float64, error) {
	if v := sec.forType(bt); v != nil {
		return *v, nil
	}
	if sec.Global != nil {
		return *sec.Global, nil
	}
	return 0, &ConfigError{
		Field:  fmt.Sprintf("%s.%s", section, bt),
		Reason: "no ratio configured and no global fallback present",
	}
}

// MinimumAmount converts the minimum-bet ratio for a type into a concrete
// amount: floor(table minimum × ratio). Truncation keeps recomputation after
// a limit change deterministic and monotonic with the limit.
func (r *Rules) MinimumAmount(bt roulette.BetType) (int, error) {
	ratio, err := resolveRatio(r.doc.MinimumBetRatios, "minimum_bet_ratios", bt)
	if err != nil {
		return 0, err
	}
	return int(float64(r.TableMinimum()) * ratio), nil
}

// MaximumAmount converts the maximum-bet ratio for a type into a concrete
// amount: floor(table maximum × ratio).
func (r *Rules) MaximumAmount(bt roulette.BetType) (int, error) {
	ratio, err := resolveRatio(r.doc.MaximumBetRatios, "maximum_bet_ratios", bt)
	if err != nil {
		return 0, err
	}
	return int(float64(r.TableMaximum()) * ratio), nil
}

// IsAllowed reports whether a bet type may be wagered on this table: it must
// carry an explicit payout entry, and announced bets additionally require
// their feature toggle. A type switched off by a toggle is reported by the
// validator as a failure rather than silently dropped from the allowed set.
func (r *Rules) IsAllowed(bt roulette.BetType) bool {
	if r.doc.PayoutRatios.forType(bt) == nil {
		return false
	}
	switch bt {
	case roulette.Neighbors:
		return r.RuleEnabled("allow_neighbor_bets")
	case roulette.CallBet:
		return r.RuleEnabled("allow_call_bets")
	}
	return true
}

// AllowedTypes lists every bet type wagerable under this rule set, in
// declaration order.
func (r *Rules) AllowedTypes() []roulette.BetType {
	var out []roulette.BetType
	for _, bt := range roulette.BetTypes {
		if r.IsAllowed(bt) {
			out = append(out, bt)
		}
	}
	return out
}

// HouseEdge returns the standard house edge percentage for the variant:
// 5.26 for double-zero tables, 2.70 for single-zero tables.
func (r *Rules) HouseEdge() float64 {
	if r.variant == European {
		return 2.70
	}
	return 5.26
}

package rules

import (
	"errors"
	"testing"

	"github.com/pennyante/tablerules/roulette"
)

func mustLoad(t *testing.T, variant Variant, opts ...Option) *Rules {
	t.Helper()
	r, err := Load(variant, opts...)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", variant, err)
	}
	return r
}

func TestMinimumAmountScalesFromTableMinimum(t *testing.T) {
	// straight_up ratio 1.0 at table minimum 5 derives 5; red ratio 5.0
	// derives 25.
	r := mustLoad(t, American)

	got, err := r.MinimumAmount(roulette.StraightUp)
	if err != nil {
		t.Fatalf("MinimumAmount(straight_up) failed: %v", err)
	}
	if got != 5 {
		t.Errorf("Expected straight_up minimum 5, got %d", got)
	}

	got, err = r.MinimumAmount(roulette.Red)
	if err != nil {
		t.Fatalf("MinimumAmount(red) failed: %v", err)
	}
	if got != 25 {
		t.Errorf("Expected red minimum 25, got %d", got)
	}
}

func TestMinimumAmountTruncates(t *testing.T) {
	// floor, not round: 7 × 1.5 = 10.5 derives 10
	r := mustLoad(t, American, WithOverlay(&RuleDocument{
		MinimumBetRatios: &RatioSection{StraightUp: fptr(1.5)},
		TableLimits:      &TableLimits{MinimumBet: iptr(7)},
	}))

	got, err := r.MinimumAmount(roulette.StraightUp)
	if err != nil {
		t.Fatalf("MinimumAmount failed: %v", err)
	}
	if got != 10 {
		t.Errorf("Expected truncated minimum 10, got %d", got)
	}
}

func TestMinimumAmountMonotonicInTableMinimum(t *testing.T) {
	prev := -1
	for _, tableMin := range []int{1, 3, 5, 10, 25, 100, 999} {
		r := mustLoad(t, American, WithOverlay(&RuleDocument{
			TableLimits: &TableLimits{MinimumBet: iptr(tableMin)},
		}))
		got, err := r.MinimumAmount(roulette.Red)
		if err != nil {
			t.Fatalf("MinimumAmount failed at table minimum %d: %v", tableMin, err)
		}
		if got != tableMin*5 {
			t.Errorf("Table minimum %d: expected %d, got %d", tableMin, tableMin*5, got)
		}
		if got < prev {
			t.Errorf("Minimum amount decreased from %d to %d as table minimum rose", prev, got)
		}
		prev = got
	}
}

func TestMaximumAmountScalesFromTableMaximum(t *testing.T) {
	r := mustLoad(t, American)

	got, err := r.MaximumAmount(roulette.StraightUp)
	if err != nil {
		t.Fatalf("MaximumAmount(straight_up) failed: %v", err)
	}
	if got != 500_000 {
		t.Errorf("Expected straight_up maximum 500000 (ratio 0.5 of 1000000), got %d", got)
	}

	// red has no explicit entry and falls back to global 1.0
	got, err = r.MaximumAmount(roulette.Red)
	if err != nil {
		t.Fatalf("MaximumAmount(red) failed: %v", err)
	}
	if got != 1_000_000 {
		t.Errorf("Expected red maximum 1000000 via global fallback, got %d", got)
	}
}

func TestRatioResolutionFailsWithoutGlobal(t *testing.T) {
	// An unconfigured type with no global fallback is a configuration
	// error, never a zero-minimum pass-through.
	r := mustLoad(t, American, WithDocument(&RuleDocument{
		PayoutRatios:     DefaultAmericanRules().PayoutRatios,
		MinimumBetRatios: &RatioSection{StraightUp: fptr(1.0)},
		MaximumBetRatios: &RatioSection{Global: fptr(1.0)},
		TableLimits:      DefaultAmericanRules().TableLimits,
	}))

	_, err := r.MinimumAmount(roulette.Corner)
	if err == nil {
		t.Fatal("Expected ConfigError for unconfigured type with no global fallback")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigError, got %T: %v", err, err)
	}
	if cfgErr.Field != "minimum_bet_ratios.corner" {
		t.Errorf("Expected field minimum_bet_ratios.corner, got %s", cfgErr.Field)
	}
}

func TestDefaultDocumentsKeepMinBelowMax(t *testing.T) {
	// Regression property for the shipped default configs: every allowed
	// type derives a minimum no greater than its maximum.
	for _, variant := range []Variant{American, European} {
		r := mustLoad(t, variant)
		for _, bt := range r.AllowedTypes() {
			minAmount, err := r.MinimumAmount(bt)
			if err != nil {
				t.Fatalf("%s: MinimumAmount(%s) failed: %v", variant, bt, err)
			}
			maxAmount, err := r.MaximumAmount(bt)
			if err != nil {
				t.Fatalf("%s: MaximumAmount(%s) failed: %v", variant, bt, err)
			}
			if minAmount > maxAmount {
				t.Errorf("%s %s: minimum %d exceeds maximum %d", variant, bt, minAmount, maxAmount)
			}
		}
	}
}

func TestPayoutRatioRequiresExplicitEntry(t *testing.T) {
	r := mustLoad(t, American)

	if _, err := r.PayoutRatio(roulette.StraightUp); err != nil {
		t.Errorf("Expected payout for straight_up, got error: %v", err)
	}

	// No global fallback for payouts: neighbors is unconfigured on the
	// American table.
	_, err := r.PayoutRatio(roulette.Neighbors)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigError for unconfigured payout, got %T: %v", err, err)
	}
}

func TestAllowedTypes(t *testing.T) {
	american := mustLoad(t, American)
	for _, bt := range []roulette.BetType{roulette.Neighbors, roulette.CallBet} {
		if american.IsAllowed(bt) {
			t.Errorf("%s should not be allowed on the American table", bt)
		}
	}

	european := mustLoad(t, European)
	for _, bt := range []roulette.BetType{roulette.Neighbors, roulette.CallBet} {
		if !european.IsAllowed(bt) {
			t.Errorf("%s should be allowed on the European table", bt)
		}
	}

	// Toggling the special rule off removes the type even though its
	// payout is still configured.
	gated := mustLoad(t, European, WithOverlay(&RuleDocument{
		SpecialRules: &SpecialRules{AllowNeighborBets: bptr(false)},
	}))
	if gated.IsAllowed(roulette.Neighbors) {
		t.Error("neighbors should be gated off by allow_neighbor_bets = false")
	}
	if !gated.IsAllowed(roulette.CallBet) {
		t.Error("call_bet should be unaffected by the neighbor toggle")
	}
}

func TestHouseEdge(t *testing.T) {
	if got := mustLoad(t, American).HouseEdge(); got != 5.26 {
		t.Errorf("Expected American house edge 5.26, got %g", got)
	}
	if got := mustLoad(t, European).HouseEdge(); got != 2.70 {
		t.Errorf("Expected European house edge 2.70, got %g", got)
	}
}

package rules

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyante/tablerules/roulette"
)

func TestOverlayMergeIsIdempotent(t *testing.T) {
	// Overlaying a document equal to the base must produce the same
	// resolved rules as no overlay at all.
	plain, err := Load(American)
	require.NoError(t, err)

	overlaid, err := Load(American, WithOverlay(DefaultAmericanRules()))
	require.NoError(t, err)

	if !reflect.DeepEqual(plain.doc, overlaid.doc) {
		t.Errorf("self-overlay changed the resolved document")
	}
}

func TestOverlayMergeIsLocal(t *testing.T) {
	// Overriding one table limit must leave every other resolved field
	// identical to the un-overlaid base.
	plain, err := Load(American)
	require.NoError(t, err)

	overlaid, err := Load(American, WithOverlay(&RuleDocument{
		TableLimits: &TableLimits{MinimumBet: iptr(25)},
	}))
	require.NoError(t, err)

	assert.Equal(t, 25, overlaid.TableMinimum())
	assert.Equal(t, plain.TableMaximum(), overlaid.TableMaximum())
	assert.Equal(t, plain.MaximumTotal(), overlaid.MaximumTotal())

	if !reflect.DeepEqual(plain.doc.PayoutRatios, overlaid.doc.PayoutRatios) {
		t.Errorf("payout_ratios changed by a table_limits overlay")
	}
	if !reflect.DeepEqual(plain.doc.MinimumBetRatios, overlaid.doc.MinimumBetRatios) {
		t.Errorf("minimum_bet_ratios changed by a table_limits overlay")
	}
	if !reflect.DeepEqual(plain.doc.GameRules, overlaid.doc.GameRules) {
		t.Errorf("game_rules changed by a table_limits overlay")
	}
}

func TestOverlayKeyLevelMerge(t *testing.T) {
	r, err := Load(American, WithOverlay(&RuleDocument{
		PayoutRatios: &PayoutSection{
			StraightUp: iptr(40),
			FirstDozen: iptr(3),
		},
		GameRules: &GameRules{
			Surrender:      bptr(true),
			MaximumRepeats: iptr(3),
		},
	}))
	require.NoError(t, err)

	payout := func(bt roulette.BetType) int {
		v, err := r.PayoutRatio(bt)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, 40, payout(roulette.StraightUp), "overridden key")
	assert.Equal(t, 3, payout(roulette.FirstDozen), "overridden key")
	assert.Equal(t, 17, payout(roulette.Split), "untouched key in an overlaid section")
	assert.Equal(t, 1, payout(roulette.Red), "untouched key in an overlaid section")

	assert.True(t, r.RuleEnabled("surrender"))
	assert.False(t, r.RuleEnabled("en_prison"), "untouched toggle keeps base value")
	assert.Equal(t, 3, r.RuleValue("maximum_repeats"))
}

func TestOverlayValidatedAfterMerge(t *testing.T) {
	// An overlay that pushes the minimum above the maximum fails
	// resolution even though both documents are individually sane.
	_, err := Load(American, WithOverlay(&RuleDocument{
		TableLimits: &TableLimits{MinimumBet: iptr(2_000_000)},
	}))
	require.Error(t, err)
}

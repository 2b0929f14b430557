package rules

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/pennyante/tablerules/roulette"
)

// Variant selects which built-in rule document a table starts from.
type Variant string

const (
	American Variant = "AMERICAN"
	European Variant = "EUROPEAN"
)

// ParseVariant converts a user-supplied variant name into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToUpper(s)) {
	case American:
		return American, nil
	case European:
		return European, nil
	}
	return "", &ConfigError{Field: "variant", Reason: fmt.Sprintf("unrecognized table variant %q", s)}
}

// RuleDocument is the on-disk shape of a rule configuration: six sections,
// each a fixed record with optional fields so missing-vs-present is explicit.
// The same type doubles as a partial overlay document.
type RuleDocument struct {
	PayoutRatios     *PayoutSection `hcl:"payout_ratios,block"`
	MinimumBetRatios *RatioSection  `hcl:"minimum_bet_ratios,block"`
	MaximumBetRatios *RatioSection  `hcl:"maximum_bet_ratios,block"`
	TableLimits      *TableLimits   `hcl:"table_limits,block"`
	GameRules        *GameRules     `hcl:"game_rules,block"`
	SpecialRules     *SpecialRules  `hcl:"special_rules,block"`
}

// PayoutSection maps bet types to payout multipliers (35 means 35:1).
type PayoutSection struct {
	StraightUp   *int `hcl:"straight_up,optional"`
	Split        *int `hcl:"split,optional"`
	Street       *int `hcl:"street,optional"`
	Corner       *int `hcl:"corner,optional"`
	SixLine      *int `hcl:"six_line,optional"`
	Red          *int `hcl:"red,optional"`
	Black        *int `hcl:"black,optional"`
	Odd          *int `hcl:"odd,optional"`
	Even         *int `hcl:"even,optional"`
	High         *int `hcl:"high,optional"`
	Low          *int `hcl:"low,optional"`
	FirstDozen   *int `hcl:"first_dozen,optional"`
	SecondDozen  *int `hcl:"second_dozen,optional"`
	ThirdDozen   *int `hcl:"third_dozen,optional"`
	FirstColumn  *int `hcl:"first_column,optional"`
	SecondColumn *int `hcl:"second_column,optional"`
	ThirdColumn  *int `hcl:"third_column,optional"`
	Neighbors    *int `hcl:"neighbors,optional"`
	CallBet      *int `hcl:"call_bet,optional"`
}

// RatioSection maps bet types to dimensionless multipliers applied to a
// table-wide base limit. The global entry is the fallback for types without
// an explicit entry.
type RatioSection struct {
	Global       *float64 `hcl:"global,optional"`
	StraightUp   *float64 `hcl:"straight_up,optional"`
	Split        *float64 `hcl:"split,optional"`
	Street       *float64 `hcl:"street,optional"`
	Corner       *float64 `hcl:"corner,optional"`
	SixLine      *float64 `hcl:"six_line,optional"`
	Red          *float64 `hcl:"red,optional"`
	Black        *float64 `hcl:"black,optional"`
	Odd          *float64 `hcl:"odd,optional"`
	Even         *float64 `hcl:"even,optional"`
	High         *float64 `hcl:"high,optional"`
	Low          *float64 `hcl:"low,optional"`
	FirstDozen   *float64 `hcl:"first_dozen,optional"`
	SecondDozen  *float64 `hcl:"second_dozen,optional"`
	ThirdDozen   *float64 `hcl:"third_dozen,optional"`
	FirstColumn  *float64 `hcl:"first_column,optional"`
	SecondColumn *float64 `hcl:"second_column,optional"`
	ThirdColumn  *float64 `hcl:"third_column,optional"`
	Neighbors    *float64 `hcl:"neighbors,optional"`
	CallBet      *float64 `hcl:"call_bet,optional"`
}

// TableLimits holds the table-wide base limits every derived amount scales
// from. All three fields are required in a resolved document.
type TableLimits struct {
	MinimumBet      *int `hcl:"minimum_bet,optional"`
	MaximumBet      *int `hcl:"maximum_bet,optional"`
	MaximumTotalBet *int `hcl:"maximum_total_bet,optional"`
}

// GameRules holds variant-level play toggles.
type GameRules struct {
	EnPrison       *bool `hcl:"en_prison,optional"`
	LaPartage      *bool `hcl:"la_partage,optional"`
	Surrender      *bool `hcl:"surrender,optional"`
	MaximumRepeats *int  `hcl:"maximum_repeats,optional"`
}

// SpecialRules holds optional feature toggles distinct from numeric limits.
type SpecialRules struct {
	AllowCallBets      *bool `hcl:"allow_call_bets,optional"`
	AllowNeighborBets  *bool `hcl:"allow_neighbor_bets,optional"`
	ProgressiveBetting *bool `hcl:"progressive_betting,optional"`
	MaximumParlay      *int  `hcl:"maximum_parlay,optional"`
}

type ratioField struct {
	name string
	val  **float64
}

func (s *RatioSection) fields() []ratioField {
	return []ratioField{
		{"global", &s.Global},
		{"straight_up", &s.StraightUp},
		{"split", &s.Split},
		{"street", &s.Street},
		{"corner", &s.Corner},
		{"six_line", &s.SixLine},
		{"red", &s.Red},
		{"black", &s.Black},
		{"odd", &s.Odd},
		{"even", &s.Even},
		{"high", &s.High},
		{"low", &s.Low},
		{"first_dozen", &s.FirstDozen},
		{"second_dozen", &s.SecondDozen},
		{"third_dozen", &s.ThirdDozen},
		{"first_column", &s.FirstColumn},
		{"second_column", &s.SecondColumn},
		{"third_column", &s.ThirdColumn},
		{"neighbors", &s.Neighbors},
		{"call_bet", &s.CallBet},
	}
}

// forType resolves the explicit ratio for a bet type, nil when absent.
// The global fallback is applied by the caller, not here.
func (s *RatioSection) forType(bt roulette.BetType) *float64 {
	switch bt {
	case roulette.StraightUp:
		return s.StraightUp
	case roulette.Split:
		return s.Split
	case roulette.Street:
		return s.Street
	case roulette.Corner:
		return s.Corner
	case roulette.SixLine:
		return s.SixLine
	case roulette.Red:
		return s.Red
	case roulette.Black:
		return s.Black
	case roulette.Odd:
		return s.Odd
	case roulette.Even:
		return s.Even
	case roulette.High:
		return s.High
	case roulette.Low:
		return s.Low
	case roulette.FirstDozen:
		return s.FirstDozen
	case roulette.SecondDozen:
		return s.SecondDozen
	case roulette.ThirdDozen:
		return s.ThirdDozen
	case roulette.FirstColumn:
		return s.FirstColumn
	case roulette.SecondColumn:
		return s.SecondColumn
	case roulette.ThirdColumn:
		return s.ThirdColumn
	case roulette.Neighbors:
		return s.Neighbors
	case roulette.CallBet:
		return s.CallBet
	}
	return nil
}

type payoutField struct {
	name string
	val  **int
}

func (s *PayoutSection) fields() []payoutField {
	return []payoutField{
		{"straight_up", &s.StraightUp},
		{"split", &s.Split},
		{"street", &s.Street},
		{"corner", &s.Corner},
		{"six_line", &s.SixLine},
		{"red", &s.Red},
		{"black", &s.Black},
		{"odd", &s.Odd},
		{"even", &s.Even},
		{"high", &s.High},
		{"low", &s.Low},
		{"first_dozen", &s.FirstDozen},
		{"second_dozen", &s.SecondDozen},
		{"third_dozen", &s.ThirdDozen},
		{"first_column", &s.FirstColumn},
		{"second_column", &s.SecondColumn},
		{"third_column", &s.ThirdColumn},
		{"neighbors", &s.Neighbors},
		{"call_bet", &s.CallBet},
	}
}

func (s *PayoutSection) forType(bt roulette.BetType) *int {
	switch bt {
	case roulette.StraightUp:
		return s.StraightUp
	case roulette.Split:
		return s.Split
	case roulette.Street:
		return s.Street
	case roulette.Corner:
		return s.Corner
	case roulette.SixLine:
		return s.SixLine
	case roulette.Red:
		return s.Red
	case roulette.Black:
		return s.Black
	case roulette.Odd:
		return s.Odd
	case roulette.Even:
		return s.Even
	case roulette.High:
		return s.High
	case roulette.Low:
		return s.Low
	case roulette.FirstDozen:
		return s.FirstDozen
	case roulette.SecondDozen:
		return s.SecondDozen
	case roulette.ThirdDozen:
		return s.ThirdDozen
	case roulette.FirstColumn:
		return s.FirstColumn
	case roulette.SecondColumn:
		return s.SecondColumn
	case roulette.ThirdColumn:
		return s.ThirdColumn
	case roulette.Neighbors:
		return s.Neighbors
	case roulette.CallBet:
		return s.CallBet
	}
	return nil
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

// DefaultAmericanRules returns the built-in rule document for a double-zero
// table. Announced bets are not offered.
func DefaultAmericanRules() *RuleDocument {
	return &RuleDocument{
		PayoutRatios: &PayoutSection{
			StraightUp:   iptr(35),
			Split:        iptr(17),
			Street:       iptr(11),
			Corner:       iptr(8),
			SixLine:      iptr(5),
			Red:          iptr(1),
			Black:        iptr(1),
			Odd:          iptr(1),
			Even:         iptr(1),
			High:         iptr(1),
			Low:          iptr(1),
			FirstDozen:   iptr(2),
			SecondDozen:  iptr(2),
			ThirdDozen:   iptr(2),
			FirstColumn:  iptr(2),
			SecondColumn: iptr(2),
			ThirdColumn:  iptr(2),
		},
		MinimumBetRatios: &RatioSection{
			Global:       fptr(1.0),
			StraightUp:   fptr(1.0),
			Red:          fptr(5.0),
			Black:        fptr(5.0),
			Odd:          fptr(5.0),
			Even:         fptr(5.0),
			High:         fptr(5.0),
			Low:          fptr(5.0),
			FirstDozen:   fptr(5.0),
			SecondDozen:  fptr(5.0),
			ThirdDozen:   fptr(5.0),
			FirstColumn:  fptr(5.0),
			SecondColumn: fptr(5.0),
			ThirdColumn:  fptr(5.0),
		},
		MaximumBetRatios: &RatioSection{
			Global:     fptr(1.0),
			StraightUp: fptr(0.5),
		},
		TableLimits: &TableLimits{
			MinimumBet:      iptr(5),
			MaximumBet:      iptr(1_000_000),
			MaximumTotalBet: iptr(10_000_000),
		},
		GameRules: &GameRules{
			EnPrison:       bptr(false),
			LaPartage:      bptr(false),
			Surrender:      bptr(false),
			MaximumRepeats: iptr(10),
		},
		SpecialRules: &SpecialRules{
			AllowCallBets:      bptr(false),
			AllowNeighborBets:  bptr(false),
			ProgressiveBetting: bptr(true),
			MaximumParlay:      iptr(0),
		},
	}
}

// DefaultEuropeanRules returns the built-in rule document for a single-zero
// table, where la partage applies and announced bets are offered.
func DefaultEuropeanRules() *RuleDocument {
	doc := DefaultAmericanRules()
	doc.PayoutRatios.Neighbors = iptr(35)
	doc.PayoutRatios.CallBet = iptr(35)
	doc.MinimumBetRatios.Neighbors = fptr(1.0)
	doc.MaximumBetRatios.Neighbors = fptr(0.5)
	doc.MaximumBetRatios.CallBet = fptr(0.5)
	doc.TableLimits = &TableLimits{
		MinimumBet:      iptr(2),
		MaximumBet:      iptr(2_000_000),
		MaximumTotalBet: iptr(20_000_000),
	}
	doc.GameRules.LaPartage = bptr(true)
	doc.SpecialRules.AllowCallBets = bptr(true)
	doc.SpecialRules.AllowNeighborBets = bptr(true)
	doc.SpecialRules.MaximumParlay = iptr(3)
	return doc
}

// LoadDocumentFile parses an HCL rule document. Unknown attributes are
// rejected by the decoder, which catches configuration typos at load time.
func LoadDocumentFile(path string) (*RuleDocument, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rule document %s: %s", path, diags.Error())
	}

	var doc RuleDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rule document %s: %s", path, diags.Error())
	}
	return &doc, nil
}

type loadOptions struct {
	doc     *RuleDocument
	path    string
	overlay *RuleDocument
}

// Option customizes rule resolution.
type Option func(*loadOptions)

// WithDocument supplies an explicit base document instead of the variant's
// built-in default.
func WithDocument(doc *RuleDocument) Option {
	return func(lo *loadOptions) { lo.doc = doc }
}

// WithDocumentFile loads the base document from an HCL file instead of the
// variant's built-in default.
func WithDocumentFile(path string) Option {
	return func(lo *loadOptions) { lo.path = path }
}

// WithOverlay deep-merges a partial document onto the base: keys present in
// an overlay section override the base, everything else is untouched.
func WithOverlay(overlay *RuleDocument) Option {
	return func(lo *loadOptions) { lo.overlay = overlay }
}

// Load resolves a rule set for a table variant. The result is immutable;
// changing rules means loading a new one.
func Load(variant Variant, opts ...Option) (*Rules, error) {
	if variant != American && variant != European {
		return nil, &ConfigError{Field: "variant", Reason: fmt.Sprintf("unrecognized table variant %q", variant)}
	}

	var lo loadOptions
	for _, o := range opts {
		o(&lo)
	}

	var base *RuleDocument
	switch {
	case lo.doc != nil:
		base = lo.doc.clone()
	case lo.path != "":
		doc, err := LoadDocumentFile(lo.path)
		if err != nil {
			return nil, err
		}
		base = doc
	case variant == European:
		base = DefaultEuropeanRules()
	default:
		base = DefaultAmericanRules()
	}

	resolved := mergeDocuments(base, lo.overlay)
	if err := validateDocument(resolved); err != nil {
		return nil, err
	}

	return &Rules{variant: variant, doc: *resolved}, nil
}

// validateDocument enforces the structural invariants of a resolved
// document: required sections, positive ordered table limits, non-negative
// ratios. The game_rules and special_rules sections may be absent; the rule
// gate treats missing toggles as disabled.
func validateDocument(doc *RuleDocument) error {
	if doc.PayoutRatios == nil {
		return &ConfigError{Field: "payout_ratios", Reason: "required section is missing"}
	}
	if doc.MinimumBetRatios == nil {
		return &ConfigError{Field: "minimum_bet_ratios", Reason: "required section is missing"}
	}
	if doc.MaximumBetRatios == nil {
		return &ConfigError{Field: "maximum_bet_ratios", Reason: "required section is missing"}
	}
	if doc.TableLimits == nil {
		return &ConfigError{Field: "table_limits", Reason: "required section is missing"}
	}

	tl := doc.TableLimits
	for _, lim := range []struct {
		name string
		val  *int
	}{
		{"table_limits.minimum_bet", tl.MinimumBet},
		{"table_limits.maximum_bet", tl.MaximumBet},
		{"table_limits.maximum_total_bet", tl.MaximumTotalBet},
	} {
		if lim.val == nil {
			return &ConfigError{Field: lim.name, Reason: "required field is missing"}
		}
		if *lim.val <= 0 {
			return &ConfigError{Field: lim.name, Reason: fmt.Sprintf("must be a positive integer, got %d", *lim.val)}
		}
	}
	if *tl.MinimumBet > *tl.MaximumBet {
		return &ConfigError{
			Field:  "table_limits",
			Reason: fmt.Sprintf("minimum_bet %d exceeds maximum_bet %d", *tl.MinimumBet, *tl.MaximumBet),
		}
	}

	for _, f := range doc.PayoutRatios.fields() {
		if v := *f.val; v != nil && *v < 0 {
			return &ConfigError{Field: "payout_ratios." + f.name, Reason: fmt.Sprintf("must not be negative, got %d", *v)}
		}
	}
	for _, sec := range []struct {
		name string
		s    *RatioSection
	}{
		{"minimum_bet_ratios", doc.MinimumBetRatios},
		{"maximum_bet_ratios", doc.MaximumBetRatios},
	} {
		for _, f := range sec.s.fields() {
			if v := *f.val; v != nil && *v < 0 {
				return &ConfigError{Field: sec.name + "." + f.name, Reason: fmt.Sprintf("must not be negative, got %g", *v)}
			}
		}
	}

	if gr := doc.GameRules; gr != nil && gr.MaximumRepeats != nil && *gr.MaximumRepeats < 0 {
		return &ConfigError{Field: "game_rules.maximum_repeats", Reason: "must not be negative"}
	}
	if sr := doc.SpecialRules; sr != nil && sr.MaximumParlay != nil && *sr.MaximumParlay < 0 {
		return &ConfigError{Field: "special_rules.maximum_parlay", Reason: "must not be negative"}
	}

	return nil
}

// Package rules implements the betting-rules layer of a roulette table: it
// resolves a declarative rule configuration into enforced numeric limits,
// validates individual and aggregate wagers against them, and gates bet
// acceptance on a per-round open/closed phase.
//
// # Basic Usage
//
// Load a rule set for a variant and validate a bet:
//
//	r, err := rules.Load(rules.American)
//	v := rules.NewValidator(r)
//	res, err := v.ValidateBet(rules.Bet{Type: roulette.Red, Amount: 25})
//	if !res.Valid {
//	    for _, f := range res.Errors {
//	        fmt.Println(f)
//	    }
//	}
//
// # Overlays
//
// A partial document deep-merges onto the base at section→key depth,
// overriding only the keys it specifies:
//
//	min := 25
//	r, err := rules.Load(rules.American, rules.WithOverlay(&rules.RuleDocument{
//	    TableLimits: &rules.TableLimits{MinimumBet: &min},
//	}))
//
// # Architecture
//
// Rules is immutable after Load and freely shareable across tables. The
// Validator is stateless per call; the one piece of per-round state, the
// open/closed phase, lives in PhaseController. The accumulated-bet set for a
// round is owned by the table collaborator, not by this package, which keeps
// the engine trivially testable.
package rules

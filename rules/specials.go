package rules

// RuleEnabled looks up a named toggle across the game_rules and
// special_rules sections. Unknown or unset names are disabled rather than an
// error: these are optional feature toggles, not load-bearing limits.
func (r *Rules) RuleEnabled(name string) bool {
	gr, sr := r.doc.GameRules, r.doc.SpecialRules
	switch name {
	case "en_prison":
		return gr != nil && gr.EnPrison != nil && *gr.EnPrison
	case "la_partage":
		return gr != nil && gr.LaPartage != nil && *gr.LaPartage
	case "surrender":
		return gr != nil && gr.Surrender != nil && *gr.Surrender
	case "allow_call_bets":
		return sr != nil && sr.AllowCallBets != nil && *sr.AllowCallBets
	case "allow_neighbor_bets":
		return sr != nil && sr.AllowNeighborBets != nil && *sr.AllowNeighborBets
	case "progressive_betting":
		return sr != nil && sr.ProgressiveBetting != nil && *sr.ProgressiveBetting
	}
	return false
}

// RuleValue looks up a named numeric rule. Unknown or unset names return
// zero.
func (r *Rules) RuleValue(name string) int {
	gr, sr := r.doc.GameRules, r.doc.SpecialRules
	switch name {
	case "maximum_repeats":
		if gr != nil && gr.MaximumRepeats != nil {
			return *gr.MaximumRepeats
		}
	case "maximum_parlay":
		if sr != nil && sr.MaximumParlay != nil {
			return *sr.MaximumParlay
		}
	}
	return 0
}

package rules

// Overlay merging is recursive only to the section→key depth: a key present
// in an overlay section replaces the base value wholesale, keys absent from
// the overlay retain their base values, and sections absent from the overlay
// leave the base section untouched.

func (doc *RuleDocument) clone() *RuleDocument {
	out := &RuleDocument{}
	out.PayoutRatios = mergePayout(nil, doc.PayoutRatios)
	out.MinimumBetRatios = mergeRatio(nil, doc.MinimumBetRatios)
	out.MaximumBetRatios = mergeRatio(nil, doc.MaximumBetRatios)
	out.TableLimits = mergeTableLimits(nil, doc.TableLimits)
	out.GameRules = mergeGameRules(nil, doc.GameRules)
	out.SpecialRules = mergeSpecialRules(nil, doc.SpecialRules)
	return out
}

// mergeDocuments produces a fresh document with overlay applied onto base.
// Neither input is modified; the result shares no pointers with either.
func mergeDocuments(base, overlay *RuleDocument) *RuleDocument {
	out := base.clone()
	if overlay == nil {
		return out
	}
	if overlay.PayoutRatios != nil {
		out.PayoutRatios = mergePayout(out.PayoutRatios, overlay.PayoutRatios)
	}
	if overlay.MinimumBetRatios != nil {
		out.MinimumBetRatios = mergeRatio(out.MinimumBetRatios, overlay.MinimumBetRatios)
	}
	if overlay.MaximumBetRatios != nil {
		out.MaximumBetRatios = mergeRatio(out.MaximumBetRatios, overlay.MaximumBetRatios)
	}
	if overlay.TableLimits != nil {
		out.TableLimits = mergeTableLimits(out.TableLimits, overlay.TableLimits)
	}
	if overlay.GameRules != nil {
		out.GameRules = mergeGameRules(out.GameRules, overlay.GameRules)
	}
	if overlay.SpecialRules != nil {
		out.SpecialRules = mergeSpecialRules(out.SpecialRules, overlay.SpecialRules)
	}
	return out
}

func mergeRatio(base, overlay *RatioSection) *RatioSection {
	if overlay == nil {
		return base
	}
	if base == nil {
		base = &RatioSection{}
	}
	bf, of := base.fields(), overlay.fields()
	for i := range of {
		if v := *of[i].val; v != nil {
			val := *v
			*bf[i].val = &val
		}
	}
	return base
}

func mergePayout(base, overlay *PayoutSection) *PayoutSection {
	if overlay == nil {
		return base
	}
	if base == nil {
		base = &PayoutSection{}
	}
	bf, of := base.fields(), overlay.fields()
	for i := range of {
		if v := *of[i].val; v != nil {
			val := *v
			*bf[i].val = &val
		}
	}
	return base
}

func mergeTableLimits(base, overlay *TableLimits) *TableLimits {
	if overlay == nil {
		return base
	}
	if base == nil {
		base = &TableLimits{}
	}
	if overlay.MinimumBet != nil {
		base.MinimumBet = iptr(*overlay.MinimumBet)
	}
	if overlay.MaximumBet != nil {
		base.MaximumBet = iptr(*overlay.MaximumBet)
	}
	if overlay.MaximumTotalBet != nil {
		base.MaximumTotalBet = iptr(*overlay.MaximumTotalBet)
	}
	return base
}

func mergeGameRules(base, overlay *GameRules) *GameRules {
	if overlay == nil {
		return base
	}
	if base == nil {
		base = &GameRules{}
	}
	if overlay.EnPrison != nil {
		base.EnPrison = bptr(*overlay.EnPrison)
	}
	if overlay.LaPartage != nil {
		base.LaPartage = bptr(*overlay.LaPartage)
	}
	if overlay.Surrender != nil {
		base.Surrender = bptr(*overlay.Surrender)
	}
	if overlay.MaximumRepeats != nil {
		base.MaximumRepeats = iptr(*overlay.MaximumRepeats)
	}
	return base
}

func mergeSpecialRules(base, overlay *SpecialRules) *SpecialRules {
	if overlay == nil {
		return base
	}
	if base == nil {
		base = &SpecialRules{}
	}
	if overlay.AllowCallBets != nil {
		base.AllowCallBets = bptr(*overlay.AllowCallBets)
	}
	if overlay.AllowNeighborBets != nil {
		base.AllowNeighborBets = bptr(*overlay.AllowNeighborBets)
	}
	if overlay.ProgressiveBetting != nil {
		base.ProgressiveBetting = bptr(*overlay.ProgressiveBetting)
	}
	if overlay.MaximumParlay != nil {
		base.MaximumParlay = iptr(*overlay.MaximumParlay)
	}
	return base
}

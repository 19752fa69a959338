package schedule

// composeObjective sets the single scalar minimization objective:
//
//	sum_n overtime_cost * overtime(n)
//	  + sum_s understaff_penalty * unmet(s)
//	  - sum_{n,s} preference_weight * score(n,s) * assign(n,s)
//
// Overtime and understaffing are penalties; preference satisfaction is a
// reward, so it enters with a negative sign and minimizing cost maximizes
// it. When the preference weight is zero or no scores were indexed the
// reward term is omitted entirely rather than written with zero
// coefficients. Weights are used as supplied; choosing commensurable
// scales is the caller's problem.
func composeObjective(bm *builtModel, cfg Config) {
	for i := range bm.ix.Nurses {
		bm.m.AddObjectiveCoef(bm.overtime[i], cfg.OvertimeCost)
	}
	for j := range bm.ix.Shifts {
		bm.m.AddObjectiveCoef(bm.unmet[j], cfg.UnderstaffPenalty)
	}

	if cfg.PreferenceWeight == 0 || !bm.ix.HasPreferences() {
		return
	}
	for i, n := range bm.ix.Nurses {
		for j, s := range bm.ix.Shifts {
			if score := bm.ix.Preference(n, s); score != 0 {
				bm.m.AddObjectiveCoef(bm.assign[i][j], -cfg.PreferenceWeight*score)
			}
		}
	}
}

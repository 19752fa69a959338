package schedule

import (
	"fmt"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
)

// builtModel pairs the emitted MILP with the index positions of its
// decision variables. assign is nurse-major: assign[i][j] is the binary for
// ix.Nurses[i] working ix.Shifts[j].
type builtModel struct {
	m        *milp.Model
	ix       *Index
	assign   [][]milp.VarID
	overtime []milp.VarID // per nurse, hours beyond the weekly limit
	unmet    []milp.VarID // per shift, headcount shortfall
}

// buildModel declares all decision variables and emits the constraint set.
// Every constraint is a linear row; integrality is the engine's job.
//
// Rows emitted, mirroring the invariants:
//   - coverage_<shift>:      sum_n assign + unmet >= demand
//   - no_understaff_<shift>: unmet == 0            (when understaffing disallowed)
//   - availability_<n>_<s>:  assign <= 0           (only for unavailable pairs;
//     available pairs are already bounded by the binary's [0,1] domain)
//   - skill_<n>_<s>:         assign == 0           (ICU shift, non-ICU nurse)
//   - hour_limit_<nurse>:    sum_s hours*assign - overtime <= max_hours
//   - no_overtime_<nurse>:   overtime == 0         (when overtime disallowed)
//
// The unmet variables are declared unconditionally and pinned to zero when
// understaffing is disallowed, so the decoder's output shape never depends
// on configuration.
func buildModel(ix *Index, cfg Config) *builtModel {
	bm := &builtModel{
		m:        milp.New("nurse_schedule"),
		ix:       ix,
		assign:   make([][]milp.VarID, len(ix.Nurses)),
		overtime: make([]milp.VarID, len(ix.Nurses)),
		unmet:    make([]milp.VarID, len(ix.Shifts)),
	}

	for i, n := range ix.Nurses {
		bm.assign[i] = make([]milp.VarID, len(ix.Shifts))
		for j, s := range ix.Shifts {
			bm.assign[i][j] = bm.m.AddBinary(fmt.Sprintf("assign_%s_%s", n, s))
		}
	}
	for i, n := range ix.Nurses {
		bm.overtime[i] = bm.m.AddContinuous(fmt.Sprintf("overtime_%s", n), 0)
	}
	for j, s := range ix.Shifts {
		bm.unmet[j] = bm.m.AddContinuous(fmt.Sprintf("unmet_%s", s), 0)
	}

	// Shift coverage, with the unmet slack absorbing any shortfall.
	for j, s := range ix.Shifts {
		terms := make([]milp.Term, 0, len(ix.Nurses)+1)
		for i := range ix.Nurses {
			terms = append(terms, milp.Term{Var: bm.assign[i][j], Coef: 1})
		}
		terms = append(terms, milp.Term{Var: bm.unmet[j], Coef: 1})
		bm.m.AddConstraint(fmt.Sprintf("coverage_%s", s), terms, milp.GreaterEq, float64(ix.ShiftDemand[s]))

		if !cfg.AllowUnderstaff {
			bm.m.AddConstraint(fmt.Sprintf("no_understaff_%s", s),
				[]milp.Term{{Var: bm.unmet[j], Coef: 1}}, milp.Equal, 0)
		}
	}

	// Availability and skill exclusions.
	for i, n := range ix.Nurses {
		for j, s := range ix.Shifts {
			if !ix.Available(n, s) {
				bm.m.AddConstraint(fmt.Sprintf("availability_%s_%s", n, s),
					[]milp.Term{{Var: bm.assign[i][j], Coef: 1}}, milp.LessEq, 0)
			}
			if !ix.NurseSkill[n].Satisfies(ix.ShiftSkill[s]) {
				bm.m.AddConstraint(fmt.Sprintf("skill_%s_%s", n, s),
					[]milp.Term{{Var: bm.assign[i][j], Coef: 1}}, milp.Equal, 0)
			}
		}
	}

	// Weekly hour limits, with overtime absorbing the excess.
	for i, n := range ix.Nurses {
		terms := make([]milp.Term, 0, len(ix.Shifts)+1)
		for j, s := range ix.Shifts {
			terms = append(terms, milp.Term{Var: bm.assign[i][j], Coef: ix.ShiftHours[s]})
		}
		terms = append(terms, milp.Term{Var: bm.overtime[i], Coef: -1})
		bm.m.AddConstraint(fmt.Sprintf("hour_limit_%s", n), terms, milp.LessEq, ix.NurseMaxHours[n])

		if !cfg.AllowOvertime {
			bm.m.AddConstraint(fmt.Sprintf("no_overtime_%s", n),
				[]milp.Term{{Var: bm.overtime[i], Coef: 1}}, milp.Equal, 0)
		}
	}

	return bm
}

package schedule

import (
	"math"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
)

// binaryEps is the tolerance for floating residue on binary variables.
// Values inside [-binaryEps, 1+binaryEps] are rounded; anything further
// out is an engine contract violation.
const binaryEps = 1e-6

// decode maps raw variable values back into domain records. The solver's
// status is carried through unchanged: an infeasible or interrupted solve
// still decodes whatever values the engine reported, and the caller
// decides how much to trust them.
func decode(bm *builtModel, sol *milp.Solution) (*Result, error) {
	res := &Result{
		Status:          sol.Status,
		Objective:       sol.Objective,
		Assignments:     make([]model.Assignment, 0, len(bm.ix.Nurses)*len(bm.ix.Shifts)),
		OvertimeByNurse: make(map[string]float64, len(bm.ix.Nurses)),
		UnmetByShift:    make(map[string]float64, len(bm.ix.Shifts)),
	}

	for i, n := range bm.ix.Nurses {
		for j, s := range bm.ix.Shifts {
			v := sol.Values[bm.assign[i][j]]
			if v < -binaryEps || v > 1+binaryEps {
				return nil, &DecodingError{Variable: bm.m.Vars[bm.assign[i][j]].Name, Value: v}
			}
			res.Assignments = append(res.Assignments, model.Assignment{
				NurseID:  n,
				ShiftID:  s,
				Assigned: int(math.Round(v)),
			})
		}
	}

	for i, n := range bm.ix.Nurses {
		res.OvertimeByNurse[n] = math.Max(0, sol.Values[bm.overtime[i]])
	}
	for j, s := range bm.ix.Shifts {
		res.UnmetByShift[s] = math.Max(0, sol.Values[bm.unmet[j]])
	}

	return res, nil
}

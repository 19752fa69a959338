// Package enumerate implements the milp.Solver port by exhaustive search
// over the binary variables. It is exact on the instances it accepts and
// has no external dependencies, which makes it the engine of choice for
// tests and for installs without a native solver library. Instance size is
// capped: the search visits 2^b candidates for b binary variables.
//
// The engine accepts models in which every constraint row references at
// most one continuous variable. Under that restriction the continuous
// variables decouple once the binaries are fixed, and each one's optimal
// value is a bound computed directly from its rows.
package enumerate

import (
	"context"
	"fmt"
	"math"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
)

// DefaultMaxBinaries bounds the search space to about a million candidates.
const DefaultMaxBinaries = 20

const eps = 1e-9

// Engine is an exhaustive-search solver for small MILPs.
type Engine struct {
	// MaxBinaries overrides DefaultMaxBinaries when positive.
	MaxBinaries int
}

// New returns an Engine with default limits.
func New() *Engine {
	return &Engine{}
}

// Solve enumerates all assignments of the binary variables, resolves the
// continuous variables per candidate, and returns the best feasible
// candidate. Statuses: OPTIMAL when a best candidate exists, INFEASIBLE
// when no candidate is feasible, UNBOUNDED when a feasible candidate lets
// a negatively-weighted continuous variable grow without limit, and
// NOT_SOLVED when the context is cancelled mid-search.
func (e *Engine) Solve(ctx context.Context, m *milp.Model) (*milp.Solution, error) {
	binaries, continuous, err := splitVars(m)
	if err != nil {
		return nil, err
	}

	maxBin := e.MaxBinaries
	if maxBin <= 0 {
		maxBin = DefaultMaxBinaries
	}
	if len(binaries) > maxBin {
		return nil, fmt.Errorf("instance has %d binary variables, enumeration cap is %d", len(binaries), maxBin)
	}

	rows, err := analyzeRows(m)
	if err != nil {
		return nil, err
	}

	values := make([]float64, m.NumVars())
	best := (*candidate)(nil)

	total := 1 << len(binaries)
	for mask := 0; mask < total; mask++ {
		if mask%1024 == 0 && ctx.Err() != nil {
			return &milp.Solution{
				Status: milp.StatusNotSolved,
				Values: make([]float64, m.NumVars()),
			}, nil
		}

		for bit, id := range binaries {
			if mask&(1<<bit) != 0 {
				values[id] = 1
			} else {
				values[id] = 0
			}
		}

		cand, unbounded := evaluate(m, rows, continuous, values)
		if unbounded {
			return &milp.Solution{
				Status: milp.StatusUnbounded,
				Values: append([]float64(nil), values...),
			}, nil
		}
		if cand == nil {
			continue
		}
		if best == nil || cand.objective < best.objective {
			best = cand
		}
	}

	if best == nil {
		return &milp.Solution{
			Status: milp.StatusInfeasible,
			Values: make([]float64, m.NumVars()),
		}, nil
	}

	return &milp.Solution{
		Status:    milp.StatusOptimal,
		Values:    best.values,
		Objective: best.objective,
	}, nil
}

type candidate struct {
	values    []float64
	objective float64
}

// row is a constraint split into its binary part and its single optional
// continuous term.
type row struct {
	c       milp.Constraint
	binTerm []milp.Term
	contVar milp.VarID // -1 when the row is purely binary
	contCo  float64
}

func splitVars(m *milp.Model) (binaries, continuous []milp.VarID, err error) {
	for _, v := range m.Vars {
		switch v.Kind {
		case milp.Binary:
			binaries = append(binaries, v.ID)
		case milp.Continuous:
			continuous = append(continuous, v.ID)
		default:
			return nil, nil, fmt.Errorf("variable %s has unknown kind", v.Name)
		}
	}
	return binaries, continuous, nil
}

func analyzeRows(m *milp.Model) ([]row, error) {
	rows := make([]row, 0, m.NumConstraints())
	for _, c := range m.Constraints {
		r := row{c: c, contVar: -1}
		for _, t := range c.Terms {
			if m.Vars[t.Var].Kind == milp.Continuous {
				if r.contVar >= 0 {
					return nil, fmt.Errorf("constraint %s references multiple continuous variables, not supported by enumeration", c.Name)
				}
				r.contVar = t.Var
				r.contCo = t.Coef
			} else {
				r.binTerm = append(r.binTerm, t)
			}
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// evaluate resolves the continuous variables for one binary assignment.
// It returns nil when the candidate is infeasible, and unbounded=true when
// a feasible candidate has a continuous variable with negative objective
// weight and no finite upper bound.
func evaluate(m *milp.Model, rows []row, continuous []milp.VarID, values []float64) (*candidate, bool) {
	lower := make(map[milp.VarID]float64, len(continuous))
	upper := make(map[milp.VarID]float64, len(continuous))
	for _, id := range continuous {
		lower[id] = m.Vars[id].Lower
		upper[id] = m.Vars[id].Upper
	}

	for _, r := range rows {
		fixed := 0.0
		for _, t := range r.binTerm {
			fixed += t.Coef * values[t.Var]
		}

		if r.contVar < 0 {
			if !holds(fixed, r.c.Op, r.c.RHS) {
				return nil, false
			}
			continue
		}

		// fixed + contCo*y Op RHS, rearranged into a bound on y.
		bound := (r.c.RHS - fixed) / r.contCo
		switch {
		case r.c.Op == milp.Equal:
			lower[r.contVar] = math.Max(lower[r.contVar], bound)
			upper[r.contVar] = math.Min(upper[r.contVar], bound)
		case (r.c.Op == milp.LessEq) == (r.contCo > 0):
			upper[r.contVar] = math.Min(upper[r.contVar], bound)
		default:
			lower[r.contVar] = math.Max(lower[r.contVar], bound)
		}
	}

	for _, id := range continuous {
		if lower[id] > upper[id]+eps {
			return nil, false
		}
		coef := m.ObjectiveCoef(id)
		switch {
		case coef < 0 && math.IsInf(upper[id], 1):
			values[id] = lower[id]
			return nil, true
		case coef < 0:
			values[id] = upper[id]
		default:
			// Zero-weight variables also sit at their lower bound, which
			// keeps decoded slack values tight.
			values[id] = lower[id]
		}
	}

	objective := 0.0
	for _, v := range m.Vars {
		if coef := m.ObjectiveCoef(v.ID); coef != 0 {
			objective += coef * values[v.ID]
		}
	}

	return &candidate{
		values:    append([]float64(nil), values...),
		objective: objective,
	}, false
}

func holds(lhs float64, op milp.RelOp, rhs float64) bool {
	switch op {
	case milp.LessEq:
		return lhs <= rhs+eps
	case milp.GreaterEq:
		return lhs >= rhs-eps
	default:
		return math.Abs(lhs-rhs) <= eps
	}
}

// Package glpk adapts the GNU Linear Programming Kit to the milp.Solver
// port via the lukpank/go-glpk bindings. The adapter is a thin translation
// layer: columns for variables, rows for constraints, one simplex pass on
// the relaxation followed by branch-and-cut. GLPK internals never leak past
// this package.
//
// Building requires cgo and libglpk; installs without it should use the
// enumerate engine instead.
package glpk

import (
	"context"
	"fmt"
	"math"

	"github.com/lukpank/go-glpk/glpk"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
)

// Engine solves models with GLPK's branch-and-cut MIP solver.
type Engine struct{}

// New returns a GLPK-backed engine.
func New() *Engine {
	return &Engine{}
}

// Solve makes a single solve attempt: simplex on the LP relaxation, then
// Intopt for integrality. The context is checked before starting; GLPK
// itself does not support mid-solve cancellation through these bindings.
func (e *Engine) Solve(ctx context.Context, m *milp.Model) (*milp.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName(m.Name)
	lp.SetObjDir(glpk.ObjDir(glpk.MIN))

	lp.AddCols(m.NumVars())
	for _, v := range m.Vars {
		col := colIndex(v.ID)
		lp.SetColName(col, v.Name)
		switch v.Kind {
		case milp.Binary:
			lp.SetColKind(col, glpk.VarType(glpk.BV))
		case milp.Continuous:
			lp.SetColKind(col, glpk.VarType(glpk.CV))
			if math.IsInf(v.Upper, 1) {
				lp.SetColBnds(col, glpk.BndsType(glpk.LO), v.Lower, 0)
			} else {
				lp.SetColBnds(col, glpk.BndsType(glpk.DB), v.Lower, v.Upper)
			}
		}
		if coef := m.ObjectiveCoef(v.ID); coef != 0 {
			lp.SetObjCoef(col, coef)
		}
	}

	lp.AddRows(m.NumConstraints())
	for i, c := range m.Constraints {
		row := i + 1
		lp.SetRowName(row, c.Name)
		switch c.Op {
		case milp.LessEq:
			lp.SetRowBnds(row, glpk.BndsType(glpk.UP), 0, c.RHS)
		case milp.GreaterEq:
			lp.SetRowBnds(row, glpk.BndsType(glpk.LO), c.RHS, 0)
		case milp.Equal:
			lp.SetRowBnds(row, glpk.BndsType(glpk.FX), c.RHS, c.RHS)
		}

		ind, val := matRow(c.Terms)
		lp.SetMatRow(row, ind, val)
	}

	smcp := glpk.NewSmcp()
	smcp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := lp.Simplex(smcp); err != nil {
		return nil, &schedule.SolverUnavailableError{Engine: "glpk", Cause: fmt.Errorf("simplex failed: %w", err)}
	}

	// The relaxation already settles infeasible and unbounded instances;
	// Intopt would refuse to run on them.
	switch lp.Status() {
	case glpk.NOFEAS, glpk.INFEAS:
		return &milp.Solution{Status: milp.StatusInfeasible, Values: make([]float64, m.NumVars())}, nil
	case glpk.UNBND:
		return &milp.Solution{Status: milp.StatusUnbounded, Values: make([]float64, m.NumVars())}, nil
	}

	iocp := glpk.NewIocp()
	iocp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := lp.Intopt(iocp); err != nil {
		return nil, &schedule.SolverUnavailableError{Engine: "glpk", Cause: fmt.Errorf("intopt failed: %w", err)}
	}

	var status milp.Status
	switch lp.MipStatus() {
	case glpk.OPT:
		status = milp.StatusOptimal
	case glpk.FEAS:
		// A feasible incumbent without an optimality proof.
		status = milp.StatusNotSolved
	case glpk.NOFEAS, glpk.INFEAS:
		status = milp.StatusInfeasible
	case glpk.UNBND:
		status = milp.StatusUnbounded
	default:
		status = milp.StatusUndefined
	}

	sol := &milp.Solution{
		Status:    status,
		Values:    make([]float64, m.NumVars()),
		Objective: lp.MipObjVal(),
	}
	for _, v := range m.Vars {
		sol.Values[v.ID] = lp.MipColVal(colIndex(v.ID))
	}
	return sol, nil
}

// colIndex maps zero-based variable ids onto GLPK's one-based columns.
func colIndex(id milp.VarID) int {
	return int(id) + 1
}

// matRow marshals constraint terms into SetMatRow's sparse-vector form.
// The binding keeps GLPK's C convention: indices and values are read from
// positions 1..len-1, and element 0 is a dummy that is never consumed.
func matRow(terms []milp.Term) ([]int32, []float64) {
	ind := make([]int32, len(terms)+1)
	val := make([]float64, len(terms)+1)
	for j, t := range terms {
		ind[j+1] = int32(colIndex(t.Var))
		val[j+1] = t.Coef
	}
	return ind, val
}

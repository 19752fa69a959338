package enumerate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
)

func TestSolve_SimpleBinaryChoice(t *testing.T) {
	// min 2x + y  s.t.  x + y >= 1  =>  y = 1, x = 0.
	m := milp.New("choice")
	x := m.AddBinary("x")
	y := m.AddBinary("y")
	m.AddConstraint("pick", []milp.Term{{Var: x, Coef: 1}, {Var: y, Coef: 1}}, milp.GreaterEq, 1)
	m.AddObjectiveCoef(x, 2)
	m.AddObjectiveCoef(y, 1)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, sol.Status)
	assert.Equal(t, 0.0, sol.Values[x])
	assert.Equal(t, 1.0, sol.Values[y])
	assert.Equal(t, 1.0, sol.Objective)
}

func TestSolve_ContinuousSlackTakesMinimalValue(t *testing.T) {
	// min 5u  s.t.  x + u >= 2  with one binary: u must cover the gap.
	m := milp.New("slack")
	x := m.AddBinary("x")
	u := m.AddContinuous("u", 0)
	m.AddConstraint("cover", []milp.Term{{Var: x, Coef: 1}, {Var: u, Coef: 1}}, milp.GreaterEq, 2)
	m.AddObjectiveCoef(u, 5)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, sol.Status)
	// Cheapest candidate sets x = 1 so the slack only covers the rest.
	assert.Equal(t, 1.0, sol.Values[x])
	assert.Equal(t, 1.0, sol.Values[u])
	assert.Equal(t, 5.0, sol.Objective)
}

func TestSolve_Infeasible(t *testing.T) {
	m := milp.New("infeasible")
	x := m.AddBinary("x")
	m.AddConstraint("want_two", []milp.Term{{Var: x, Coef: 1}}, milp.GreaterEq, 2)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusInfeasible, sol.Status)
	assert.Len(t, sol.Values, 1)
}

func TestSolve_Unbounded(t *testing.T) {
	// A rewarded continuous variable with no upper bound.
	m := milp.New("unbounded")
	y := m.AddContinuous("y", 0)
	m.AddObjectiveCoef(y, -1)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusUnbounded, sol.Status)
}

func TestSolve_EqualityPin(t *testing.T) {
	// Pinned slack forces the binary to do all the covering.
	m := milp.New("pin")
	x := m.AddBinary("x")
	u := m.AddContinuous("u", 0)
	m.AddConstraint("cover", []milp.Term{{Var: x, Coef: 1}, {Var: u, Coef: 1}}, milp.GreaterEq, 1)
	m.AddConstraint("pin_u", []milp.Term{{Var: u, Coef: 1}}, milp.Equal, 0)
	m.AddObjectiveCoef(u, 50)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, sol.Status)
	assert.Equal(t, 1.0, sol.Values[x])
	assert.Equal(t, 0.0, sol.Values[u])
}

func TestSolve_NegativeCoefficientContinuous(t *testing.T) {
	// hour-limit shape: 8x - o <= 4 forces o >= 4 when x = 1.
	m := milp.New("hours")
	x := m.AddBinary("x")
	o := m.AddContinuous("o", 0)
	m.AddConstraint("limit", []milp.Term{{Var: x, Coef: 8}, {Var: o, Coef: -1}}, milp.LessEq, 4)
	m.AddConstraint("work", []milp.Term{{Var: x, Coef: 1}}, milp.GreaterEq, 1)
	m.AddObjectiveCoef(o, 10)

	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, sol.Status)
	assert.Equal(t, 1.0, sol.Values[x])
	assert.InDelta(t, 4.0, sol.Values[o], 1e-9)
	assert.InDelta(t, 40.0, sol.Objective, 1e-9)
}

func TestSolve_BinaryCapExceeded(t *testing.T) {
	m := milp.New("big")
	for i := 0; i < 25; i++ {
		m.AddBinary("x")
	}

	_, err := New().Solve(context.Background(), m)
	assert.Error(t, err)
}

func TestSolve_MultipleContinuousInOneRowRejected(t *testing.T) {
	m := milp.New("coupled")
	a := m.AddContinuous("a", 0)
	b := m.AddContinuous("b", 0)
	m.AddConstraint("coupled", []milp.Term{{Var: a, Coef: 1}, {Var: b, Coef: 1}}, milp.LessEq, 1)

	_, err := New().Solve(context.Background(), m)
	assert.Error(t, err)
}

func TestSolve_CancelledContext(t *testing.T) {
	m := milp.New("cancelled")
	for i := 0; i < 12; i++ {
		m.AddBinary("x")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := New().Solve(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, milp.StatusNotSolved, sol.Status)
}

package milp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_VariableDeclaration(t *testing.T) {
	m := New("test")

	x := m.AddBinary("x")
	o := m.AddContinuous("o", 0)

	assert.Equal(t, 2, m.NumVars())
	assert.Equal(t, VarID(0), x)
	assert.Equal(t, VarID(1), o)

	assert.Equal(t, Binary, m.Vars[x].Kind)
	assert.Equal(t, 0.0, m.Vars[x].Lower)
	assert.Equal(t, 1.0, m.Vars[x].Upper)

	assert.Equal(t, Continuous, m.Vars[o].Kind)
	assert.Equal(t, 0.0, m.Vars[o].Lower)
	assert.True(t, math.IsInf(m.Vars[o].Upper, 1))
}

func TestModel_ObjectiveCoefAccumulates(t *testing.T) {
	m := New("test")
	x := m.AddBinary("x")

	m.AddObjectiveCoef(x, 10)
	m.AddObjectiveCoef(x, -3)

	assert.Equal(t, 7.0, m.ObjectiveCoef(x))
	// Undeclared coefficients read as zero.
	assert.Equal(t, 0.0, m.ObjectiveCoef(VarID(99)))
}

func TestModel_Constraints(t *testing.T) {
	m := New("test")
	x := m.AddBinary("x")
	y := m.AddBinary("y")

	m.AddConstraint("cover", []Term{{x, 1}, {y, 1}}, GreaterEq, 1)
	m.AddConstraint("pin_y", []Term{{y, 1}}, Equal, 0)

	assert.Equal(t, 2, m.NumConstraints())
	assert.Equal(t, "cover", m.Constraints[0].Name)
	assert.Equal(t, GreaterEq, m.Constraints[0].Op)
	assert.Equal(t, 1.0, m.Constraints[0].RHS)
	assert.Len(t, m.Constraints[0].Terms, 2)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "OPTIMAL", StatusOptimal.String())
	assert.Equal(t, "INFEASIBLE", StatusInfeasible.String())
	assert.Equal(t, "UNBOUNDED", StatusUnbounded.String())
	assert.Equal(t, "NOT_SOLVED", StatusNotSolved.String())
	assert.Equal(t, "UNDEFINED", StatusUndefined.String())
}

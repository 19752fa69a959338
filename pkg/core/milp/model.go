// Package milp provides an engine-neutral representation of mixed-integer
// linear programs and the solver interface the rest of the application
// depends on. Nothing in this package references a concrete engine; each
// engine lives in its own adapter package under pkg/solver.
package milp

import "math"

// VarKind distinguishes binary from continuous decision variables.
type VarKind int

const (
	Binary VarKind = iota
	Continuous
)

// VarID identifies a variable within its model. IDs are dense and start at
// zero, so solutions can be stored as plain slices indexed by VarID.
type VarID int

// Var is a single decision variable.
type Var struct {
	ID    VarID
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64 // math.Inf(1) when unbounded above
}

// Term is one coefficient-variable product in a linear expression.
type Term struct {
	Var  VarID
	Coef float64
}

// RelOp is the relational operator of a constraint row.
type RelOp int

const (
	LessEq RelOp = iota
	GreaterEq
	Equal
)

// Constraint is a named linear row: sum(Terms) Op RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Op    RelOp
	RHS   float64
}

// Model is a minimization MILP under construction. A Model is built once,
// solved once, and discarded; it is not safe for concurrent mutation.
type Model struct {
	Name        string
	Vars        []Var
	Constraints []Constraint

	objective map[VarID]float64
}

// New creates an empty minimization model.
func New(name string) *Model {
	return &Model{
		Name:      name,
		objective: make(map[VarID]float64),
	}
}

// AddBinary declares a binary variable and returns its id.
func (m *Model) AddBinary(name string) VarID {
	id := VarID(len(m.Vars))
	m.Vars = append(m.Vars, Var{ID: id, Name: name, Kind: Binary, Lower: 0, Upper: 1})
	return id
}

// AddContinuous declares a continuous variable with the given lower bound
// and no upper bound.
func (m *Model) AddContinuous(name string, lower float64) VarID {
	id := VarID(len(m.Vars))
	m.Vars = append(m.Vars, Var{ID: id, Name: name, Kind: Continuous, Lower: lower, Upper: math.Inf(1)})
	return id
}

// AddConstraint appends a named row to the model.
func (m *Model) AddConstraint(name string, terms []Term, op RelOp, rhs float64) {
	m.Constraints = append(m.Constraints, Constraint{Name: name, Terms: terms, Op: op, RHS: rhs})
}

// AddObjectiveCoef adds coef to the objective coefficient of v. Repeated
// calls for the same variable accumulate, which lets penalty and reward
// terms target the same variable independently.
func (m *Model) AddObjectiveCoef(v VarID, coef float64) {
	m.objective[v] += coef
}

// ObjectiveCoef returns the accumulated objective coefficient of v.
func (m *Model) ObjectiveCoef(v VarID) float64 {
	return m.objective[v]
}

// NumVars returns the number of declared variables.
func (m *Model) NumVars() int {
	return len(m.Vars)
}

// NumConstraints returns the number of rows.
func (m *Model) NumConstraints() int {
	return len(m.Constraints)
}

package milp

import "context"

// Status is the outcome of a solve attempt. It mirrors the coarse status
// vocabulary shared by MILP engines; adapters map their engine's richer
// codes onto it.
type Status int

const (
	// StatusOptimal means a provably optimal solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible means the constraint set admits no solution.
	StatusInfeasible
	// StatusUnbounded means the objective can decrease without limit.
	StatusUnbounded
	// StatusNotSolved means the engine stopped before reaching a
	// conclusion (limits, interruption, or a feasible-but-unproven
	// incumbent).
	StatusNotSolved
	// StatusUndefined means the engine reported no usable information.
	StatusUndefined
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusNotSolved:
		return "NOT_SOLVED"
	default:
		return "UNDEFINED"
	}
}

// Solution is the raw outcome of one solve: per-variable values indexed by
// VarID, the objective value, and the engine's status. Values may be
// meaningless for non-optimal statuses; callers must check Status before
// trusting them.
type Solution struct {
	Status    Status
	Values    []float64
	Objective float64
}

// Solver is the port through which models reach an engine. Implementations
// must support binary and continuous variables and linear constraints, and
// must make exactly one solve attempt per call. Concurrent Solve calls on
// independent models are the engine's responsibility to support.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}

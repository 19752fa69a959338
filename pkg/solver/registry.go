// Package solver maps configured engine names onto milp.Solver
// implementations. Each engine lives in its own subpackage so the core
// never imports engine-specific types.
package solver

import (
	"strings"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
	"github.com/nurseshiftly/nurseshiftly/pkg/solver/enumerate"
	"github.com/nurseshiftly/nurseshiftly/pkg/solver/glpk"
)

// Engine names accepted in configuration.
const (
	EngineGLPK      = "glpk"
	EngineEnumerate = "enumerate"
)

// ForName returns the engine registered under name, or a
// *schedule.SolverUnavailableError when no such engine exists.
func ForName(name string) (milp.Solver, error) {
	switch strings.ToLower(name) {
	case EngineGLPK:
		return glpk.New(), nil
	case EngineEnumerate:
		return enumerate.New(), nil
	default:
		return nil, &schedule.SolverUnavailableError{Engine: name}
	}
}

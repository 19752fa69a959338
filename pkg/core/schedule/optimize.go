package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/milp"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
)

// Config are the caller-supplied optimization weights and modes. All
// weights must be non-negative.
type Config struct {
	AllowOvertime     bool
	OvertimeCost      float64
	AllowUnderstaff   bool
	UnderstaffPenalty float64
	PreferenceWeight  float64
}

// DefaultConfig mirrors the documented defaults: overtime allowed at cost
// 10, understaffing disallowed with penalty 50, preferences ignored.
func DefaultConfig() Config {
	return Config{
		AllowOvertime:     true,
		OvertimeCost:      10.0,
		AllowUnderstaff:   false,
		UnderstaffPenalty: 50.0,
		PreferenceWeight:  0.0,
	}
}

func (c Config) validate() error {
	if c.OvertimeCost < 0 {
		return NewValidationError("", "overtime_cost must be non-negative, got %g", c.OvertimeCost)
	}
	if c.UnderstaffPenalty < 0 {
		return NewValidationError("", "understaff_penalty must be non-negative, got %g", c.UnderstaffPenalty)
	}
	if c.PreferenceWeight < 0 {
		return NewValidationError("", "preference_weight must be non-negative, got %g", c.PreferenceWeight)
	}
	return nil
}

// Result is the decoded outcome of one optimization call. Assignments
// cover every nurse x shift pair in nurse-major input order. Callers must
// check Status before trusting the values: non-optimal statuses are
// returned here, not as errors.
type Result struct {
	Assignments     []model.Assignment
	OvertimeByNurse map[string]float64
	UnmetByShift    map[string]float64
	Status          milp.Status
	Objective       float64
}

// TotalUnmet sums the headcount shortfall across shifts.
func (r *Result) TotalUnmet() float64 {
	var total float64
	for _, v := range r.UnmetByShift {
		total += v
	}
	return total
}

// TotalOvertime sums overtime hours across nurses.
func (r *Result) TotalOvertime() float64 {
	var total float64
	for _, v := range r.OvertimeByNurse {
		total += v
	}
	return total
}

// Optimize builds the weekly scheduling MILP from the input tables, makes
// exactly one solve attempt on the given engine, and decodes the solution.
// Each call constructs an independent model, so concurrent calls are safe
// provided the engine supports concurrent independent solves.
//
// Fatal failures (*ValidationError, *SolverUnavailableError,
// *DecodingError, engine errors) abort the call with no result; otherwise
// the full result is returned with whatever status the engine reported.
func Optimize(
	ctx context.Context,
	engine milp.Solver,
	logger *zap.Logger,
	nurses []model.Nurse,
	shifts []model.Shift,
	availability []model.Availability,
	preferences []model.Preference,
	cfg Config,
) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ix, err := BuildIndex(nurses, shifts, availability, preferences, cfg.PreferenceWeight != 0)
	if err != nil {
		return nil, err
	}
	logger.Debug("Entity index built",
		zap.Int("nurses", len(ix.Nurses)),
		zap.Int("shifts", len(ix.Shifts)))

	bm := buildModel(ix, cfg)
	composeObjective(bm, cfg)
	logger.Debug("Model built",
		zap.Int("variables", bm.m.NumVars()),
		zap.Int("constraints", bm.m.NumConstraints()))

	sol, err := engine.Solve(ctx, bm.m)
	if err != nil {
		return nil, fmt.Errorf("solve failed: %w", err)
	}
	logger.Debug("Solve finished",
		zap.Stringer("status", sol.Status),
		zap.Float64("objective", sol.Objective))

	res, err := decode(bm, sol)
	if err != nil {
		return nil, err
	}

	logger.Info("Schedule optimized",
		zap.Stringer("status", res.Status),
		zap.Float64("objective", res.Objective),
		zap.Float64("total_overtime", res.TotalOvertime()),
		zap.Float64("total_unmet", res.TotalUnmet()))

	return res, nil
}

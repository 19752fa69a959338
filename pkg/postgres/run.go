package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
)

// Run is one recorded optimization run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Engine    string
	Status    string
	Objective float64
	Config    schedule.Config
}

// InsertRun stores a solved schedule together with the configuration it
// was produced under. Returns the generated run id.
func (db *DB) InsertRun(ctx context.Context, engine string, cfg schedule.Config, result *schedule.Result) (string, error) {
	runID := uuid.New().String()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO optimization_run (id, engine, status, objective, allow_overtime, overtime_cost, allow_understaff, understaff_penalty, preference_weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, runID, engine, result.Status.String(), result.Objective,
		cfg.AllowOvertime, cfg.OvertimeCost, cfg.AllowUnderstaff, cfg.UnderstaffPenalty, cfg.PreferenceWeight)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for _, a := range result.Assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO run_assignment (run_id, nurse_id, shift_id, assigned)
			VALUES ($1, $2, $3, $4)
		`, runID, a.NurseID, a.ShiftID, a.Assigned)
		if err != nil {
			return "", fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	for nurseID, hours := range result.OvertimeByNurse {
		_, err := tx.Exec(ctx, `
			INSERT INTO run_overtime (run_id, nurse_id, hours)
			VALUES ($1, $2, $3)
		`, runID, nurseID, hours)
		if err != nil {
			return "", fmt.Errorf("failed to insert overtime: %w", err)
		}
	}

	for shiftID, shortfall := range result.UnmetByShift {
		_, err := tx.Exec(ctx, `
			INSERT INTO run_unmet (run_id, shift_id, shortfall)
			VALUES ($1, $2, $3)
		`, runID, shiftID, shortfall)
		if err != nil {
			return "", fmt.Errorf("failed to insert unmet demand: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return runID, nil
}

// GetRuns retrieves recorded runs, newest first.
func (db *DB) GetRuns(ctx context.Context) ([]Run, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, created_at, engine, status, objective, allow_overtime, overtime_cost, allow_understaff, understaff_penalty, preference_weight
		FROM optimization_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Engine, &r.Status, &r.Objective,
			&r.Config.AllowOvertime, &r.Config.OvertimeCost,
			&r.Config.AllowUnderstaff, &r.Config.UnderstaffPenalty,
			&r.Config.PreferenceWeight); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

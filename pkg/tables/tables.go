// Package tables decodes the four CSV input tables into domain records and
// serializes decoded assignments back out. It is pure serialization: every
// scheduling rule lives in pkg/core/schedule, which also owns the
// referential checks across tables. This package only enforces each file's
// own column contract.
package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
)

// header maps column names to their positions and reports missing
// required columns as validation errors.
type header struct {
	table string
	cols  map[string]int
}

func readHeader(table string, r *csv.Reader) (*header, error) {
	record, err := r.Read()
	if err == io.EOF {
		return nil, schedule.NewValidationError(table, "file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", table, err)
	}

	h := &header{table: table, cols: make(map[string]int, len(record))}
	for i, name := range record {
		h.cols[strings.TrimSpace(name)] = i
	}
	return h, nil
}

func (h *header) require(names ...string) error {
	for _, name := range names {
		if _, ok := h.cols[name]; !ok {
			return schedule.NewValidationError(h.table, "missing required column %q", name)
		}
	}
	return nil
}

func (h *header) field(record []string, name string) string {
	return strings.TrimSpace(record[h.cols[name]])
}

// LoadNurses decodes the nurses table: nurse_id, max_hours_per_week,
// skill_level.
func LoadNurses(r io.Reader) ([]model.Nurse, error) {
	cr := csv.NewReader(r)
	h, err := readHeader("nurses", cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("nurse_id", "max_hours_per_week", "skill_level"); err != nil {
		return nil, err
	}

	var nurses []model.Nurse
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read nurses row: %w", err)
		}

		maxHours, err := strconv.ParseFloat(h.field(record, "max_hours_per_week"), 64)
		if err != nil {
			return nil, schedule.NewValidationError("nurses", "line %d: invalid max_hours_per_week %q", line, h.field(record, "max_hours_per_week"))
		}

		nurses = append(nurses, model.Nurse{
			ID:              h.field(record, "nurse_id"),
			MaxHoursPerWeek: maxHours,
			Skill:           model.SkillLevel(h.field(record, "skill_level")),
		})
	}
	return nurses, nil
}

// LoadShifts decodes the shifts table: shift_id, hours, demand,
// required_skill.
func LoadShifts(r io.Reader) ([]model.Shift, error) {
	cr := csv.NewReader(r)
	h, err := readHeader("shifts", cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("shift_id", "hours", "demand", "required_skill"); err != nil {
		return nil, err
	}

	var shifts []model.Shift
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read shifts row: %w", err)
		}

		hours, err := strconv.ParseFloat(h.field(record, "hours"), 64)
		if err != nil {
			return nil, schedule.NewValidationError("shifts", "line %d: invalid hours %q", line, h.field(record, "hours"))
		}
		demand, err := strconv.Atoi(h.field(record, "demand"))
		if err != nil {
			return nil, schedule.NewValidationError("shifts", "line %d: invalid demand %q", line, h.field(record, "demand"))
		}

		shifts = append(shifts, model.Shift{
			ID:            h.field(record, "shift_id"),
			Hours:         hours,
			Demand:        demand,
			RequiredSkill: model.SkillLevel(h.field(record, "required_skill")),
		})
	}
	return shifts, nil
}

// LoadAvailability decodes the availability table: nurse_id, shift_id,
// available. The available column accepts 0/1 and boolean spellings.
func LoadAvailability(r io.Reader) ([]model.Availability, error) {
	cr := csv.NewReader(r)
	h, err := readHeader("availability", cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("nurse_id", "shift_id", "available"); err != nil {
		return nil, err
	}

	var rows []model.Availability
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read availability row: %w", err)
		}

		available, err := parseBool(h.field(record, "available"))
		if err != nil {
			return nil, schedule.NewValidationError("availability", "line %d: invalid available value %q", line, h.field(record, "available"))
		}

		rows = append(rows, model.Availability{
			NurseID:   h.field(record, "nurse_id"),
			ShiftID:   h.field(record, "shift_id"),
			Available: available,
		})
	}
	return rows, nil
}

// LoadPreferences decodes the optional preferences table: nurse_id,
// shift_id, score.
func LoadPreferences(r io.Reader) ([]model.Preference, error) {
	cr := csv.NewReader(r)
	h, err := readHeader("preferences", cr)
	if err != nil {
		return nil, err
	}
	if err := h.require("nurse_id", "shift_id", "score"); err != nil {
		return nil, err
	}

	var rows []model.Preference
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read preferences row: %w", err)
		}

		score, err := strconv.ParseFloat(h.field(record, "score"), 64)
		if err != nil {
			return nil, schedule.NewValidationError("preferences", "line %d: invalid score %q", line, h.field(record, "score"))
		}

		rows = append(rows, model.Preference{
			NurseID: h.field(record, "nurse_id"),
			ShiftID: h.field(record, "shift_id"),
			Score:   score,
		})
	}
	return rows, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

// WriteAssignments serializes the decoded schedule as
// nurse_id,shift_id,assigned rows, preserving the core's ordering.
func WriteAssignments(w io.Writer, assignments []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"nurse_id", "shift_id", "assigned"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, a := range assignments {
		if err := cw.Write([]string{a.NurseID, a.ShiftID, strconv.Itoa(a.Assigned)}); err != nil {
			return fmt.Errorf("failed to write assignment row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteShifts serializes a shifts table, used by the shift template
// expansion command to produce optimizer input.
func WriteShifts(w io.Writer, shifts []model.Shift) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"shift_id", "hours", "demand", "required_skill"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range shifts {
		record := []string{
			s.ID,
			strconv.FormatFloat(s.Hours, 'f', -1, 64),
			strconv.Itoa(s.Demand),
			string(s.RequiredSkill),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write shift row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

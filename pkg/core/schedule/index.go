// Package schedule is the optimization core: it turns nurse, shift,
// availability and preference tables into a MILP, hands the model to a
// solver engine through the milp port, and decodes the raw solution back
// into domain records.
package schedule

import (
	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
)

type pair struct {
	nurse string
	shift string
}

// Index is the canonical view of one optimization call's inputs: the
// ordered, deduplicated nurse and shift id sets plus attribute lookups.
// Availability defaults to false and preference to 0 for absent pairs.
type Index struct {
	Nurses []string
	Shifts []string

	ShiftHours    map[string]float64
	ShiftDemand   map[string]int
	ShiftSkill    map[string]model.SkillLevel
	NurseMaxHours map[string]float64
	NurseSkill    map[string]model.SkillLevel

	availability map[pair]bool
	preference   map[pair]float64
}

// BuildIndex validates the input tables and derives the Index. The
// preference lookup is only built when withPreferences is set; callers pass
// false when the preference weight is zero so the objective composer never
// sees scores it would ignore.
//
// Returns a *ValidationError for duplicate ids, availability or preference
// rows referencing undeclared nurses or shifts, or attribute values outside
// their documented ranges.
func BuildIndex(
	nurses []model.Nurse,
	shifts []model.Shift,
	availability []model.Availability,
	preferences []model.Preference,
	withPreferences bool,
) (*Index, error) {
	ix := &Index{
		ShiftHours:    make(map[string]float64, len(shifts)),
		ShiftDemand:   make(map[string]int, len(shifts)),
		ShiftSkill:    make(map[string]model.SkillLevel, len(shifts)),
		NurseMaxHours: make(map[string]float64, len(nurses)),
		NurseSkill:    make(map[string]model.SkillLevel, len(nurses)),
		availability:  make(map[pair]bool, len(availability)),
	}

	for _, n := range nurses {
		if n.ID == "" {
			return nil, NewValidationError("nurses", "empty nurse_id")
		}
		if _, dup := ix.NurseMaxHours[n.ID]; dup {
			return nil, NewValidationError("nurses", "duplicate nurse_id %q", n.ID)
		}
		if n.MaxHoursPerWeek < 0 {
			return nil, NewValidationError("nurses", "nurse %q has negative max_hours_per_week", n.ID)
		}
		ix.Nurses = append(ix.Nurses, n.ID)
		ix.NurseMaxHours[n.ID] = n.MaxHoursPerWeek
		ix.NurseSkill[n.ID] = n.Skill
	}

	for _, s := range shifts {
		if s.ID == "" {
			return nil, NewValidationError("shifts", "empty shift_id")
		}
		if _, dup := ix.ShiftHours[s.ID]; dup {
			return nil, NewValidationError("shifts", "duplicate shift_id %q", s.ID)
		}
		if s.Hours <= 0 {
			return nil, NewValidationError("shifts", "shift %q must have positive hours, got %g", s.ID, s.Hours)
		}
		if s.Demand < 0 {
			return nil, NewValidationError("shifts", "shift %q has negative demand", s.ID)
		}
		ix.Shifts = append(ix.Shifts, s.ID)
		ix.ShiftHours[s.ID] = s.Hours
		ix.ShiftDemand[s.ID] = s.Demand
		ix.ShiftSkill[s.ID] = s.RequiredSkill
	}

	for _, a := range availability {
		if _, ok := ix.NurseMaxHours[a.NurseID]; !ok {
			return nil, NewValidationError("availability", "unknown nurse_id %q", a.NurseID)
		}
		if _, ok := ix.ShiftHours[a.ShiftID]; !ok {
			return nil, NewValidationError("availability", "unknown shift_id %q", a.ShiftID)
		}
		ix.availability[pair{a.NurseID, a.ShiftID}] = a.Available
	}

	if withPreferences {
		ix.preference = make(map[pair]float64, len(preferences))
		for _, p := range preferences {
			if _, ok := ix.NurseMaxHours[p.NurseID]; !ok {
				return nil, NewValidationError("preferences", "unknown nurse_id %q", p.NurseID)
			}
			if _, ok := ix.ShiftHours[p.ShiftID]; !ok {
				return nil, NewValidationError("preferences", "unknown shift_id %q", p.ShiftID)
			}
			ix.preference[pair{p.NurseID, p.ShiftID}] = p.Score
		}
	}

	return ix, nil
}

// Available reports whether a nurse can work a shift; pairs with no
// availability row are unavailable.
func (ix *Index) Available(nurseID, shiftID string) bool {
	return ix.availability[pair{nurseID, shiftID}]
}

// Preference returns the stated score for a pair, 0 when absent or when
// the index was built without preferences.
func (ix *Index) Preference(nurseID, shiftID string) float64 {
	if ix.preference == nil {
		return 0
	}
	return ix.preference[pair{nurseID, shiftID}]
}

// HasPreferences reports whether any preference scores were indexed.
func (ix *Index) HasPreferences() bool {
	return len(ix.preference) > 0
}

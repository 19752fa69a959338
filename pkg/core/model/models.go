// Package model holds the plain domain records exchanged between the
// optimization core and the presentation layers. All fields are read-only
// inputs or decoded outputs; none carry behavior beyond small predicates.
package model

import "strings"

// SkillLevel is a categorical nurse qualification. The only tier with
// scheduling semantics today is ICU; any other value admits everyone.
type SkillLevel string

// SkillICU is the one skill tier that gates shift eligibility.
const SkillICU SkillLevel = "ICU"

// IsICU reports whether the level is the ICU tier. Comparison is
// case-insensitive to match the tolerant handling of hand-edited tables.
func (s SkillLevel) IsICU() bool {
	return strings.EqualFold(string(s), string(SkillICU))
}

// Satisfies reports whether a nurse with this level may work a shift
// requiring the given level. The rule is deliberately binary: an ICU
// requirement excludes non-ICU nurses, every other requirement excludes
// nobody. Additional tiers would extend this method, nothing else.
func (s SkillLevel) Satisfies(required SkillLevel) bool {
	if required.IsICU() {
		return s.IsICU()
	}
	return true
}

// Nurse is one schedulable nurse.
type Nurse struct {
	ID              string
	MaxHoursPerWeek float64
	Skill           SkillLevel
}

// Shift is one shift slot in the week being scheduled.
type Shift struct {
	ID            string
	Hours         float64
	Demand        int // required headcount
	RequiredSkill SkillLevel
}

// Availability marks whether a nurse can work a shift. Pairs with no
// record are treated as unavailable.
type Availability struct {
	NurseID   string
	ShiftID   string
	Available bool
}

// Preference is a nurse's stated desirability score for a shift. Pairs
// with no record score zero.
type Preference struct {
	NurseID string
	ShiftID string
	Score   float64
}

// Assignment is one decoded cell of the solved schedule: exactly 0 or 1
// for every nurse x shift pair.
type Assignment struct {
	NurseID  string
	ShiftID  string
	Assigned int
}

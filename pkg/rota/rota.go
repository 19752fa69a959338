// Package rota expands recurring shift templates into the concrete weekly
// shift table the optimizer consumes. Templates carry an RFC 5545
// recurrence rule plus the shift attributes; expansion instantiates one
// shift per occurrence inside the requested week.
package rota

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
)

// ShiftTemplate describes one recurring shift.
type ShiftTemplate struct {
	Name          string           `yaml:"name" validate:"required"`
	RRule         string           `yaml:"rrule" validate:"required"`
	Hours         float64          `yaml:"hours" validate:"gt=0"`
	Demand        int              `yaml:"demand" validate:"min=0"`
	RequiredSkill model.SkillLevel `yaml:"requiredSkill"`
}

// ExpandWeek instantiates every template occurrence in the seven days
// starting at weekStart (inclusive). Shift ids are deterministic,
// NAME_YYYY-MM-DD, so re-running the expansion for the same week yields
// the same table.
func ExpandWeek(templates []ShiftTemplate, weekStart time.Time) ([]model.Shift, error) {
	weekStart = weekStart.Truncate(24 * time.Hour)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var shifts []model.Shift
	for _, tpl := range templates {
		rule, err := rrule.StrToRRule(tpl.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in template %q: %w", tpl.Name, err)
		}
		rule.DTStart(weekStart)

		for _, occ := range rule.Between(weekStart, weekEnd, true) {
			if !occ.Before(weekEnd) {
				continue
			}
			shifts = append(shifts, model.Shift{
				ID:            fmt.Sprintf("%s_%s", tpl.Name, occ.Format("2006-01-02")),
				Hours:         tpl.Hours,
				Demand:        tpl.Demand,
				RequiredSkill: tpl.RequiredSkill,
			})
		}
	}
	return shifts, nil
}

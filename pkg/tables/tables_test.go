package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseshiftly/nurseshiftly/pkg/core/model"
	"github.com/nurseshiftly/nurseshiftly/pkg/core/schedule"
)

func TestLoadNurses(t *testing.T) {
	csv := "nurse_id,max_hours_per_week,skill_level\nA,40,GENERAL\nB,36.5,ICU\n"

	nurses, err := LoadNurses(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, nurses, 2)
	assert.Equal(t, model.Nurse{ID: "A", MaxHoursPerWeek: 40, Skill: "GENERAL"}, nurses[0])
	assert.Equal(t, model.Nurse{ID: "B", MaxHoursPerWeek: 36.5, Skill: "ICU"}, nurses[1])
}

func TestLoadNurses_ColumnOrderIrrelevant(t *testing.T) {
	csv := "skill_level,nurse_id,max_hours_per_week\nICU,B,36\n"

	nurses, err := LoadNurses(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, "B", nurses[0].ID)
	assert.Equal(t, 36.0, nurses[0].MaxHoursPerWeek)
}

func TestLoadNurses_MissingColumn(t *testing.T) {
	csv := "nurse_id,skill_level\nA,GENERAL\n"

	_, err := LoadNurses(strings.NewReader(csv))
	require.Error(t, err)

	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nurses", verr.Table)
	assert.Contains(t, verr.Reason, "max_hours_per_week")
}

func TestLoadShifts(t *testing.T) {
	csv := "shift_id,hours,demand,required_skill\nS1,8,2,GENERAL\nS2,12,1,ICU\n"

	shifts, err := LoadShifts(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, shifts, 2)
	assert.Equal(t, model.Shift{ID: "S2", Hours: 12, Demand: 1, RequiredSkill: "ICU"}, shifts[1])
}

func TestLoadShifts_InvalidDemand(t *testing.T) {
	csv := "shift_id,hours,demand,required_skill\nS1,8,two,GENERAL\n"

	_, err := LoadShifts(strings.NewReader(csv))
	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "line 2")
}

func TestLoadAvailability_BooleanSpellings(t *testing.T) {
	csv := "nurse_id,shift_id,available\nA,S1,1\nA,S2,0\nB,S1,true\nB,S2,FALSE\n"

	rows, err := LoadAvailability(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.True(t, rows[0].Available)
	assert.False(t, rows[1].Available)
	assert.True(t, rows[2].Available)
	assert.False(t, rows[3].Available)
}

func TestLoadAvailability_InvalidBoolean(t *testing.T) {
	csv := "nurse_id,shift_id,available\nA,S1,maybe\n"

	_, err := LoadAvailability(strings.NewReader(csv))
	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "availability", verr.Table)
}

func TestLoadPreferences(t *testing.T) {
	csv := "nurse_id,shift_id,score\nA,S1,4.5\nB,S2,-2\n"

	rows, err := LoadPreferences(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 4.5, rows[0].Score)
	assert.Equal(t, -2.0, rows[1].Score)
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := LoadNurses(strings.NewReader(""))
	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestWriteAssignments_RoundTripOrdering(t *testing.T) {
	assignments := []model.Assignment{
		{NurseID: "A", ShiftID: "S1", Assigned: 1},
		{NurseID: "A", ShiftID: "S2", Assigned: 0},
		{NurseID: "B", ShiftID: "S1", Assigned: 0},
		{NurseID: "B", ShiftID: "S2", Assigned: 1},
	}

	var sb strings.Builder
	require.NoError(t, WriteAssignments(&sb, assignments))

	want := "nurse_id,shift_id,assigned\nA,S1,1\nA,S2,0\nB,S1,0\nB,S2,1\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteShifts(t *testing.T) {
	shifts := []model.Shift{
		{ID: "DAY_2026-01-05", Hours: 8, Demand: 2, RequiredSkill: "GENERAL"},
	}

	var sb strings.Builder
	require.NoError(t, WriteShifts(&sb, shifts))

	assert.Equal(t, "shift_id,hours,demand,required_skill\nDAY_2026-01-05,8,2,GENERAL\n", sb.String())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurseshiftly/nurseshiftly/pkg/rota"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Engine: "glpk",
		Solve: Solve{
			AllowOvertime:     true,
			OvertimeCost:      10,
			UnderstaffPenalty: 50,
		},
		ShiftTemplates: []rota.ShiftTemplate{
			{
				Name:   "DAY",
				RRule:  "FREQ=DAILY",
				Hours:  8,
				Demand: 2,
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_UnknownEngine(t *testing.T) {
	cfg := Default()
	cfg.Engine = "cplex"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_NegativeWeight(t *testing.T) {
	cfg := Default()
	cfg.Solve.OvertimeCost = -1

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := Default()
	cfg.ShiftTemplates = []rota.ShiftTemplate{
		{
			Name:   "NIGHT",
			RRule:  "INVALID_RRULE_SYNTAX",
			Hours:  12,
			Demand: 1,
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "glpk", cfg.Engine)
	assert.True(t, cfg.Solve.AllowOvertime)
	assert.Equal(t, 10.0, cfg.Solve.OvertimeCost)
	assert.False(t, cfg.Solve.AllowUnderstaff)
	assert.Equal(t, 50.0, cfg.Solve.UnderstaffPenalty)
	assert.Equal(t, 0.0, cfg.Solve.PreferenceWeight)

	assert.NoError(t, Validate(cfg))
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
engine: "enumerate"
solve:
  allowOvertime: false
  overtimeCost: 25
  allowUnderstaff: true
  understaffPenalty: 100
  preferenceWeight: 1.5
postgresDSN: "postgres://localhost/nurseshiftly"
shiftTemplates:
  - name: "DAY"
    rrule: "FREQ=WEEKLY;BYDAY=MO,WE,FR"
    hours: 8
    demand: 2
    requiredSkill: "GENERAL"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "enumerate", cfg.Engine)
	assert.False(t, cfg.Solve.AllowOvertime)
	assert.Equal(t, 25.0, cfg.Solve.OvertimeCost)
	assert.True(t, cfg.Solve.AllowUnderstaff)
	assert.Equal(t, 100.0, cfg.Solve.UnderstaffPenalty)
	assert.Equal(t, 1.5, cfg.Solve.PreferenceWeight)
	assert.Equal(t, "postgres://localhost/nurseshiftly", cfg.PostgresDSN)

	require.Len(t, cfg.ShiftTemplates, 1)
	tmpl := cfg.ShiftTemplates[0]
	assert.Equal(t, "DAY", tmpl.Name)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO,WE,FR", tmpl.RRule)
	assert.Equal(t, 8.0, tmpl.Hours)
	assert.Equal(t, 2, tmpl.Demand)
}

func TestLoadFromPath_PartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial_config.yaml")

	partialConfig := `
engine: "glpk"
solve:
  preferenceWeight: 2
`

	err := os.WriteFile(configPath, []byte(partialConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	// Unset fields fall back to defaults
	assert.True(t, cfg.Solve.AllowOvertime)
	assert.Equal(t, 10.0, cfg.Solve.OvertimeCost)
	assert.Equal(t, 2.0, cfg.Solve.PreferenceWeight)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Empty(t, cfg.ShiftTemplates)
}

func TestLoadFromPath_TemplateWithoutRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_template.yaml")

	invalidTemplate := `
engine: "glpk"
shiftTemplates:
  - name: "DAY"
    hours: 8
    demand: 1
`

	err := os.WriteFile(configPath, []byte(invalidTemplate), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
engine: "glpk"
  invalid indentation
solve: {}
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

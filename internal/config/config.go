package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/nurseshiftly/nurseshiftly/pkg/rota"
)

// Solve holds the objective weights and relaxation modes for a run.
// Zero weights are legal, negative weights are not.
type Solve struct {
	AllowOvertime     bool    `yaml:"allowOvertime"`
	OvertimeCost      float64 `yaml:"overtimeCost" validate:"min=0"`
	AllowUnderstaff   bool    `yaml:"allowUnderstaff"`
	UnderstaffPenalty float64 `yaml:"understaffPenalty" validate:"min=0"`
	PreferenceWeight  float64 `yaml:"preferenceWeight" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	Engine         string               `yaml:"engine" validate:"required,oneof=glpk enumerate"`
	Solve          Solve                `yaml:"solve"`
	PostgresDSN    string               `yaml:"postgresDSN,omitempty"`
	ShiftTemplates []rota.ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Engine: "glpk",
		Solve: Solve{
			AllowOvertime:     true,
			OvertimeCost:      10,
			AllowUnderstaff:   false,
			UnderstaffPenalty: 50,
			PreferenceWeight:  0,
		},
	}
}

// Load loads and validates the configuration from nurseshiftly.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. When neither exists, defaults are returned.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, tmpl := range cfg.ShiftTemplates {
		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for nurseshiftly.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "nurseshiftly.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

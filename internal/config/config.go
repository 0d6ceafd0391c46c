package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// DateLayout is the layout used for dates in the config file
const DateLayout = "2006-01-02"

// ErrConfigNotFound is returned when no config file exists in the searched locations
var ErrConfigNotFound = errors.New("config file not found in current directory or home directory")

// Config represents the application configuration
type Config struct {
	// Seed for random decisions. Same roster and seed always produce the same schedule.
	Seed int64 `yaml:"seed"`

	MaxDaysPerWeek    int `yaml:"maxDaysPerWeek" validate:"min=1,max=7"`
	MinStaffPerShift  int `yaml:"minStaffPerShift" validate:"min=1,max=10"`
	SoftFullThreshold int `yaml:"softFullThreshold" validate:"min=1,max=10"`

	// WeekStart is the Monday the schedule applies to (YYYY-MM-DD). Optional.
	WeekStart string `yaml:"weekStart,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// ClosedDates are RRULE strings marking dates shown as closed in the report
	ClosedDates []string `yaml:"closedDates,omitempty" validate:"dive,required"`

	LogsDir string `yaml:"logsDir" validate:"required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Seed:              allocator.DefaultSeed,
		MaxDaysPerWeek:    allocator.DefaultMaxDaysPerWeek,
		MinStaffPerShift:  allocator.DefaultMinStaffPerShift,
		SoftFullThreshold: allocator.DefaultSoftFullThreshold,
		LogsDir:           "logs",
	}
}

// Load loads and validates the configuration from shift_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads shift_config_<env>.yaml, falling back to shift_config.yaml
func LoadWithEnv(env string) (*Config, error) {
	var names []string
	if env != "" {
		names = append(names, fmt.Sprintf("shift_config_%s.yaml", env))
	}
	names = append(names, "shift_config.yaml")

	configPath, err := findConfigFile(names)
	if err != nil {
		return nil, err
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their Default values.
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

// Validate validates the configuration struct, the week start and the closed date rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WeekStart != "" {
		start, err := time.Parse(DateLayout, cfg.WeekStart)
		if err != nil {
			return fmt.Errorf("invalid weekStart: %w", err)
		}
		if start.Weekday() != time.Monday {
			return fmt.Errorf("weekStart must be a Monday, got %s", start.Weekday())
		}
	}

	for i, rule := range cfg.ClosedDates {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in closedDates[%d]: %w", i, err)
		}
	}

	return nil
}

// WeekStartDate returns the parsed week start, or false if none is configured
func (c *Config) WeekStartDate() (time.Time, bool) {
	if c.WeekStart == "" {
		return time.Time{}, false
	}
	start, err := time.Parse(DateLayout, c.WeekStart)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}

// AllocationConfig builds the allocator config for the given registry
func (c *Config) AllocationConfig(registry *model.Registry) allocator.AllocationConfig {
	return allocator.AllocationConfig{
		Registry:          registry,
		Seed:              c.Seed,
		MaxDaysPerWeek:    c.MaxDaysPerWeek,
		MinStaffPerShift:  c.MinStaffPerShift,
		SoftFullThreshold: c.SoftFullThreshold,
	}
}

// findConfigFile searches for the named files in the current directory and then the home directory
func findConfigFile(names []string) (string, error) {
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	for _, name := range names {
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", ErrConfigNotFound
}

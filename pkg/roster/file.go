package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/preferences"
)

// ErrNoEmployees is returned when a roster contains nobody to schedule
var ErrNoEmployees = errors.New("roster has no employees")

// File is the on-disk roster format
//
//	employees:
//	  - name: Alice
//	    default: "M"
//	    preferences:
//	      Mon: "M,E"
//	      Sat: "A"
type File struct {
	Employees []Entry `yaml:"employees" validate:"unique=Name,dive"`
}

// Entry is a single employee in a roster file.
// Default is the preference line used for days missing from Preferences.
type Entry struct {
	Name        string            `yaml:"name" validate:"required"`
	Default     string            `yaml:"default,omitempty"`
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadFromPath reads a roster file and builds the registry
func LoadFromPath(path string) (*model.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse decodes roster YAML and builds the registry
func Parse(data []byte) (*model.Registry, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	return file.Registry()
}

// Registry validates the file and normalizes every preference line
func (f *File) Registry() (*model.Registry, error) {
	if len(f.Employees) == 0 {
		return nil, ErrNoEmployees
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}

	registry := model.NewRegistry()
	for i, entry := range f.Employees {
		lines, err := entry.dayLines()
		if err != nil {
			return nil, fmt.Errorf("employees[%d] (%s): %w", i, entry.Name, err)
		}

		if _, err := registry.Add(entry.Name, preferences.ParseWeek(lines)); err != nil {
			return nil, fmt.Errorf("employees[%d]: %w", i, err)
		}
	}

	return registry, nil
}

// dayLines maps each day to its raw preference line, filling gaps with Default
func (e Entry) dayLines() (map[model.Day]string, error) {
	lines := make(map[model.Day]string, model.DaysInWeek)
	for _, day := range model.Days() {
		lines[day] = e.Default
	}
	for label, line := range e.Preferences {
		day, err := model.ParseDay(label)
		if err != nil {
			return nil, err
		}
		lines[day] = line
	}
	return lines, nil
}

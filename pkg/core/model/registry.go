package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName         = errors.New("employee name is empty")
	ErrDuplicateEmployee = errors.New("duplicate employee name")
)

// Registry holds the employees for one scheduling run in input order
type Registry struct {
	employees []*Employee
	byName    map[string]*Employee
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Employee)}
}

// Add registers an employee. Names are trimmed and must be unique.
func (r *Registry) Add(name string, prefs map[Day][]Shift) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateEmployee, name)
	}
	if r.byName == nil {
		r.byName = make(map[string]*Employee)
	}

	employee := NewEmployee(name, prefs)
	r.employees = append(r.employees, employee)
	r.byName[name] = employee
	return employee, nil
}

// Employees returns the registered employees in input order
func (r *Registry) Employees() []*Employee {
	return r.employees
}

// Get looks up an employee by name
func (r *Registry) Get(name string) (*Employee, bool) {
	e, ok := r.byName[name]
	return e, ok
}

func (r *Registry) Len() int {
	return len(r.employees)
}

package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/core/preferences"
)

// Prompter collects a roster interactively from a terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps in with a buffered reader unless it already is one,
// so a shared reader keeps any input buffered for later prompts.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompter{in: br, out: out}
}

// PromptRoster asks for the number of employees, then each name and one
// preference line per day
func (p *Prompter) PromptRoster() (*model.Registry, error) {
	count, err := p.promptCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoEmployees
	}

	registry := model.NewRegistry()
	for i := 0; i < count; i++ {
		name, err := p.promptName(registry, i+1)
		if err != nil {
			return nil, err
		}

		fmt.Fprintln(p.out, "Enter preferences for each day as ranked shifts (comma-separated). Example: M,E,A")
		lines := make(map[model.Day]string, model.DaysInWeek)
		for _, day := range model.Days() {
			line, err := p.ask(fmt.Sprintf("  %s: ", day))
			if err != nil {
				return nil, fmt.Errorf("failed to read %s preferences for %s: %w", day, name, err)
			}
			lines[day] = line
		}

		if _, err := registry.Add(name, preferences.ParseWeek(lines)); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

func (p *Prompter) promptCount() (int, error) {
	for {
		line, err := p.ask("Number of employees: ")
		if err != nil {
			return 0, fmt.Errorf("failed to read number of employees: %w", err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || count < 0 {
			fmt.Fprintf(p.out, "Please enter a whole number, got %q\n", line)
			continue
		}
		return count, nil
	}
}

func (p *Prompter) promptName(registry *model.Registry, position int) (string, error) {
	for {
		line, err := p.ask(fmt.Sprintf("Employee %d name: ", position))
		if err != nil {
			return "", fmt.Errorf("failed to read name of employee %d: %w", position, err)
		}

		name := strings.TrimSpace(line)
		if name == "" {
			fmt.Fprintln(p.out, "Name cannot be empty")
			continue
		}
		if _, exists := registry.Get(name); exists {
			fmt.Fprintf(p.out, "%s is already on the roster, names must be unique\n", name)
			continue
		}
		return name, nil
	}
}

// ask prints the prompt and reads one line without its line ending.
// A final line without a newline is accepted.
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

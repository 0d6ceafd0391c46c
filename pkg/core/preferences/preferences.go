package preferences

import (
	"strings"

	"github.com/jakechorley/shift-rota/pkg/core/model"
)

// Parse turns a comma separated preference line such as "M,E,A" into a ranked
// list of shifts.
//
// Unknown tokens are dropped and repeats keep their first position. When only one
// distinct shift survives, the remaining shifts follow it in canonical order. When
// none survive, the canonical order is returned. Two or more distinct shifts are
// returned as given, so unmentioned shifts are never tried for that day.
func Parse(raw string) []model.Shift {
	seen := make(map[model.Shift]bool)
	ranked := make([]model.Shift, 0, 3)

	for _, token := range strings.Split(raw, ",") {
		shift := model.Shift(strings.ToUpper(strings.TrimSpace(token)))
		if shift == "" || !shift.IsValid() || seen[shift] {
			continue
		}
		seen[shift] = true
		ranked = append(ranked, shift)
	}

	switch len(ranked) {
	case 0:
		return model.Shifts()
	case 1:
		for _, shift := range model.Shifts() {
			if shift != ranked[0] {
				ranked = append(ranked, shift)
			}
		}
	}

	return ranked
}

// ParseWeek parses one preference line per day. Days without a line get the canonical order.
func ParseWeek(lines map[model.Day]string) map[model.Day][]model.Shift {
	week := make(map[model.Day][]model.Shift, model.DaysInWeek)
	for _, day := range model.Days() {
		week[day] = Parse(lines[day])
	}
	return week
}

// Describe renders a ranking for display, e.g. "M > E > A"
func Describe(ranked []model.Shift) string {
	codes := make([]string, len(ranked))
	for i, shift := range ranked {
		codes[i] = string(shift)
	}
	return strings.Join(codes, " > ")
}

package allocator

import "github.com/jakechorley/shift-rota/pkg/core/model"

// assignPreferences runs the preference pass over every day in canonical order.
//
// Each day visits all employees in a fresh random order. An employee who cannot be
// placed on the visited day is scanned forward through later days, so a popular shift
// early in the week can push them into a later day.
func (a *Allocator) assignPreferences() {
	employees := a.registry.Employees()
	days := model.Days()

	for dayIdx, day := range days {
		order := make([]*model.Employee, len(employees))
		copy(order, employees)
		a.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		for _, employee := range order {
			if !employee.CanWorkMore(a.maxDaysPerWeek) {
				continue
			}
			if employee.IsAssigned(day) {
				continue
			}
			a.tryAssign(employee, days[dayIdx:])
		}
	}
}

// tryAssign places the employee on the first day in days with room on a ranked shift,
// falling back to any shift on that same day before moving to the next day.
// Returns false if no day in the scan had room.
func (a *Allocator) tryAssign(employee *model.Employee, days []model.Day) bool {
	if !employee.CanWorkMore(a.maxDaysPerWeek) {
		return false
	}

	for _, day := range days {
		if employee.IsAssigned(day) {
			continue
		}

		if shift, ok := a.firstWithRoom(day, employee.RankedShifts(day)); ok {
			a.assign(employee, day, shift, PassPreference)
			return true
		}

		if shift, ok := a.firstWithRoom(day, model.Shifts()); ok {
			a.assign(employee, day, shift, PassPreference)
			return true
		}
	}

	return false
}

// firstWithRoom returns the first shift in candidates below the soft-full threshold
func (a *Allocator) firstWithRoom(day model.Day, candidates []model.Shift) (model.Shift, bool) {
	for _, shift := range candidates {
		if a.schedule.Count(day, shift) < a.softFullThreshold {
			return shift, true
		}
	}
	return "", false
}

// fillMinimums tops every slot up to the minimum staffing level, picking uniformly at
// random among employees under the cap and free that day. A slot with no eligible
// employee left is abandoned and shows up as a shortage.
func (a *Allocator) fillMinimums() {
	for _, day := range model.Days() {
		for _, shift := range model.Shifts() {
			for a.schedule.Count(day, shift) < a.minStaffPerShift {
				eligible := a.eligibleFor(day)
				if len(eligible) == 0 {
					break
				}

				pick := eligible[a.rng.Intn(len(eligible))]
				a.assign(pick, day, shift, PassMinimumFill)
			}
		}
	}
}

// eligibleFor returns employees under the weekly cap with no assignment on day, in registry order
func (a *Allocator) eligibleFor(day model.Day) []*model.Employee {
	var eligible []*model.Employee
	for _, employee := range a.registry.Employees() {
		if employee.CanWorkMore(a.maxDaysPerWeek) && !employee.IsAssigned(day) {
			eligible = append(eligible, employee)
		}
	}
	return eligible
}

// Package ledger holds the state of the payroll screen: employees, the
// advances recorded for a month, and the purely local totals panel.
package ledger

import (
	"context"
	"errors"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

// ErrInvalidAmount: advances must be strictly positive; rejected before
// any network call.
var ErrInvalidAmount = errors.New("advance amount must be greater than zero")

type AdvanceAction int

const (
	ActionCreate AdvanceAction = iota // no entry yet for (employee, period)
	ActionUpdate                      // cumulative update of the existing entry
)

// AdvancePlan is the resolved outcome of adding an advance: either update
// the matching fetched entry with the summed total, or create a fresh one.
type AdvancePlan struct {
	Action   AdvanceAction
	EntryID  string // set for ActionUpdate
	NewTotal float64
}

// PlanAdvance searches the fetched entries for the (employee, period)
// pair and accumulates the amount onto its running total; when no entry
// matches, the plan creates one seeded with the amount. The search is
// list-based on purpose: the API enforces no uniqueness for the pair
// (see DESIGN.md).
func PlanAdvance(entries []apiclient.PayrollEntry, employeeID, period string, amount float64) (AdvancePlan, error) {
	if amount <= 0 {
		return AdvancePlan{}, ErrInvalidAmount
	}
	for _, e := range entries {
		if e.EmployeeID == employeeID && e.Period == period {
			return AdvancePlan{Action: ActionUpdate, EntryID: e.ID, NewTotal: e.Advances + amount}, nil
		}
	}
	return AdvancePlan{Action: ActionCreate, NewTotal: amount}, nil
}

// ApplyAdvance executes a plan against the API.
func ApplyAdvance(ctx context.Context, c *apiclient.Client, plan AdvancePlan, employeeID, period string) error {
	if plan.Action == ActionUpdate {
		_, err := c.UpdatePayroll(ctx, plan.EntryID, apiclient.PayrollPatch{Advances: &plan.NewTotal})
		return err
	}
	_, err := c.CreatePayroll(ctx, apiclient.PayrollInput{
		EmployeeID: employeeID,
		Period:     period,
		Advances:   plan.NewTotal,
	})
	return err
}

// Totals is the screen's summary panel. Remaining may go negative when
// advances exceed the base salaries; it is displayed as-is.
type Totals struct {
	Base      float64
	Advances  float64
	Remaining float64
}

// Sum computes the panel over the employee filter: base salaries of the
// selected employees (all when selectedEmployeeID is empty) and advances
// of the fetched entries.
func Sum(employees []apiclient.Employee, entries []apiclient.PayrollEntry, selectedEmployeeID string) Totals {
	var t Totals
	for _, e := range employees {
		if selectedEmployeeID == "" || e.ID == selectedEmployeeID {
			t.Base += e.BaseSalary
		}
	}
	for _, p := range entries {
		t.Advances += p.Advances
	}
	t.Remaining = t.Base - t.Advances
	return t
}

package workflow

import (
	"context"

	"github.com/five82/lms/internal/lms"
)

func (r *Runner) hrMenu(ctx context.Context, hr lms.HR) error {
	r.console.Title("Welcome to HR portal")
	r.console.Info("Your ID is: %d", hr.HRID)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := r.console.Menu("HR Menu",
			"See all employees with details",
			"See all leaves in a specific time period",
			"Logout",
		)
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Value == 3 {
			r.console.Info("Logging out.")
			return nil
		}

		switch choice.Value {
		case 1:
			err = r.allEmployees(ctx)
		case 2:
			err = r.allLeavesInPeriod(ctx)
		}
		if err != nil {
			return err
		}
	}
}

func (r *Runner) allEmployees(ctx context.Context) error {
	employees, err := r.api.AllEmployees(ctx)
	if err != nil {
		r.serviceError("fetch employee information", err)
		return nil
	}
	showList(r, "List of All Employees with Details", "No employees found.", hrEmployeeCols, employees, hrEmployeeRow)
	return nil
}

func (r *Runner) allLeavesInPeriod(ctx context.Context) error {
	period, err := r.promptPeriod()
	if err != nil || period.Cancelled {
		return err
	}
	records, err := r.api.AllLeavesInPeriod(ctx, period.Value.Start, period.Value.End)
	if err != nil {
		r.serviceError("fetch leave applications", err)
		return nil
	}
	showList(r, "Leave Applications in the specified time period",
		"No leave applications in the specified time period.", leaveHeaders, records, leaveRow)
	return nil
}

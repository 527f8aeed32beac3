package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/notify"
	"github.com/five82/lms/internal/policy"
)

func (r *Runner) employeeMenu(ctx context.Context, employee lms.Employee) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := r.console.Menu("Employee Menu",
			"Apply for leave",
			"View my leaves",
			"View leaves in a specific time period",
			"Logout",
		)
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Value == 4 {
			r.console.Info("Logging out.")
			return nil
		}

		switch choice.Value {
		case 1:
			err = r.applyForLeave(ctx, employee)
		case 2:
			err = r.viewMyLeaves(ctx, employee)
		case 3:
			err = r.viewMyLeavesInPeriod(ctx, employee)
		}
		if err != nil {
			return err
		}
	}
}

// usedLeaves counts an employee's leaves in a window. A failed lookup
// counts as zero so the service stays the final judge of the quota.
func (r *Runner) usedLeaves(ctx context.Context, employeeID int, from, to time.Time) int {
	n, err := r.api.CountLeaves(ctx, employeeID, from, to)
	if err != nil {
		r.logger.Warn("leave history lookup failed; counting as zero",
			zap.Int("employee_id", employeeID),
			zap.String("from", policy.FormatDate(from)),
			zap.String("to", policy.FormatDate(to)),
			zap.Error(err),
		)
		return 0
	}
	return n
}

// applyForLeave checks the quota, collects the request and submits it.
// Policy rejections and cancellation return nil; only console errors are
// returned.
func (r *Runner) applyForLeave(ctx context.Context, employee lms.Employee) error {
	c := r.console
	today := r.today()

	c.Title("Leave Application Process")
	c.Info("Enter 'E' at any time to exit the leave application process.")

	monthFrom, monthTo := policy.MonthWindow(today)
	yearFrom, yearTo := policy.YearWindow(today)
	quota := policy.Quota{
		MonthlyUsed: r.usedLeaves(ctx, employee.EmployeeID, monthFrom, monthTo),
		YearlyUsed:  r.usedLeaves(ctx, employee.EmployeeID, yearFrom, yearTo),
	}

	monthly := r.rules.CheckMonthlyQuota(quota.MonthlyUsed)
	if !monthly.Allowed() {
		r.reject(employee, monthly)
		return nil
	}
	c.Info("You have %d leave(s) remaining this month.", monthly.RemainingMonth)

	yearly := r.rules.CheckYearlyQuota(quota.YearlyUsed)
	if !yearly.Allowed() {
		r.reject(employee, yearly)
		return nil
	}
	c.Info("You have %d leave(s) remaining this year.", yearly.RemainingYear)

	start, err := c.PromptDate("Enter the start date (yyyy-MM-dd) (or 'E' to exit):")
	if err != nil {
		return err
	}
	if start.Cancelled {
		return r.cancelApplication()
	}
	end, err := c.PromptDate("Enter the end date (yyyy-MM-dd) (or 'E' to exit):")
	if err != nil {
		return err
	}
	if end.Cancelled {
		return r.cancelApplication()
	}
	interval := policy.Interval{Start: start.Value, End: end.Value}
	if d := r.rules.ValidateInterval(today, interval.Start, interval.End); !d.Allowed() {
		r.reject(employee, d)
		return nil
	}

	var leaveType policy.LeaveType
	for {
		res, err := c.PromptLine(fmt.Sprintf("Enter the leave type (%s) (or 'E' to exit):", policy.LeaveTypeChoices()))
		if err != nil {
			return err
		}
		if res.Cancelled {
			return r.cancelApplication()
		}
		if r.rules.ValidateLeaveType(res.Value) {
			if lt, ok := policy.ParseLeaveType(res.Value); ok {
				leaveType = lt
				break
			}
		}
		c.Error("Invalid leave type. Please enter %s.", policy.LeaveTypeChoices())
	}

	reason, err := c.PromptRequired("Enter the reason (or 'E' to exit):")
	if err != nil {
		return err
	}
	if reason.Cancelled {
		return r.cancelApplication()
	}

	decision := policy.Evaluate(r.rules, quota, interval, string(leaveType), today)
	if !decision.Allowed() {
		r.reject(employee, decision)
		return nil
	}

	app := lms.NewLeaveApplication(employee, interval.Start, interval.End, leaveType, reason.Value)
	if err := r.api.ApplyLeave(ctx, app); err != nil {
		r.serviceError("submit leave application", err)
		return nil
	}

	r.logger.Info("leave applied",
		zap.Int("employee_id", employee.EmployeeID),
		zap.String("start", app.StartDate),
		zap.String("end", app.EndDate),
		zap.String("leave_type", app.LeaveType),
	)
	c.Success("Leave application submitted successfully.")
	r.notifier.Dispatch(notify.LeaveApplied(interval.Start, interval.End, leaveType, app.Reason))
	return nil
}

func (r *Runner) cancelApplication() error {
	r.console.Info("Leave application process canceled.")
	return nil
}

// reject reports a policy rejection with a user-facing explanation.
func (r *Runner) reject(employee lms.Employee, d policy.Decision) {
	r.logger.Info("leave rejected by policy",
		zap.Int("employee_id", employee.EmployeeID),
		zap.String("reason", d.Reason()),
	)
	r.console.Error("%s (%s)", rejectionMessage(d.Err), d.Reason())
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, policy.ErrMonthlyQuotaExhausted):
		return "You have already applied for the maximum allowed leaves this month."
	case errors.Is(err, policy.ErrYearlyQuotaExhausted):
		return "You have exhausted all your leaves for this year."
	case errors.Is(err, policy.ErrStartInPast):
		return "You have entered a past date. Please enter a current or future date."
	case errors.Is(err, policy.ErrEndInPast):
		return "You have entered a past date for the end date. Please enter a current or future date."
	case errors.Is(err, policy.ErrEndBeforeStart):
		return "End date must not be before the start date."
	case errors.Is(err, policy.ErrSpanTooLong):
		return fmt.Sprintf("You cannot apply for leave for %d or more continuous days.", policy.MaxContinuousDays)
	case errors.Is(err, policy.ErrInvalidLeaveType):
		return "Invalid leave type."
	default:
		return "Leave application not allowed."
	}
}

func (r *Runner) viewMyLeaves(ctx context.Context, employee lms.Employee) error {
	records, err := r.api.MyLeaves(ctx, employee.EmployeeID)
	if err != nil {
		r.serviceError("fetch leave applications", err)
		return nil
	}
	showList(r, "Your Leave Applications", "No leave applications found.", myLeaveHeaders, records, myLeaveRow)
	return nil
}

func (r *Runner) viewMyLeavesInPeriod(ctx context.Context, employee lms.Employee) error {
	period, err := r.promptPeriod()
	if err != nil || period.Cancelled {
		return err
	}
	records, err := r.api.MyLeavesInPeriod(ctx, employee.EmployeeID, period.Value.Start, period.Value.End)
	if err != nil {
		r.serviceError("fetch leave applications", err)
		return nil
	}
	showList(r, "Your Leave Applications in the specified time period",
		"No leave applications in the specified time period.", myLeaveHeaders, records, myLeaveRow)
	return nil
}

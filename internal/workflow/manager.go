package workflow

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/notify"
)

func (r *Runner) managerMenu(ctx context.Context, manager lms.Manager) error {
	r.console.Title("Welcome to Managers portal")
	r.console.Info("Your ID is: %d", manager.ManagerID)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := r.console.Menu("Manager Actions",
			"Approve/Reject Leave Applications",
			"See List of Employees Reporting to You",
			"See Leave Requests from Your Employees",
			"View leaves in specific time period",
			"Logout",
		)
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Value == 5 {
			r.console.Info("Logging out.")
			return nil
		}

		switch choice.Value {
		case 1:
			err = r.approveOrReject(ctx, manager)
		case 2:
			err = r.reportingEmployees(ctx, manager)
		case 3:
			err = r.managerRequests(ctx, manager)
		case 4:
			err = r.managerLeavesInPeriod(ctx, manager)
		}
		if err != nil {
			return err
		}
	}
}

// approveOrReject lists pending applications and records one decision.
func (r *Runner) approveOrReject(ctx context.Context, manager lms.Manager) error {
	c := r.console
	pending, err := r.api.PendingForManager(ctx, manager.ManagerID)
	if err != nil {
		r.serviceError("fetch leave applications", err)
		return nil
	}
	if len(pending) == 0 {
		c.Info("No leave applications for approval/rejection.")
		return nil
	}
	showList(r, "Leave Applications for Approval/Rejection", "", leaveHeaders, pending, leaveRow)

	known := make(map[int]bool, len(pending))
	for _, rec := range pending {
		known[rec.LeaveID] = true
	}

	var leaveID int
	for {
		res, err := c.PromptInt("Enter the Leave ID you want to approve/reject (0 to cancel):")
		if err != nil {
			return err
		}
		if res.Cancelled || res.Value == 0 {
			c.Info("Operation canceled.")
			return nil
		}
		if known[res.Value] {
			leaveID = res.Value
			break
		}
		c.Warn("Invalid Leave ID. Please enter a valid Leave ID or 0 to cancel.")
	}

	var decision lms.Decision
	for {
		res, err := c.PromptLine("Enter 'A' to approve or 'R' to reject:")
		if err != nil {
			return err
		}
		if res.Cancelled {
			c.Info("Operation canceled.")
			return nil
		}
		if d, ok := lms.ParseDecision(res.Value); ok {
			decision = d
			break
		}
		c.Warn("Invalid action. Please enter 'A' to approve or 'R' to reject.")
	}

	if err := r.api.SubmitDecision(ctx, leaveID, decision); err != nil {
		r.serviceError("update leave status", err)
		return nil
	}
	r.logger.Info("leave decided",
		zap.Int("manager_id", manager.ManagerID),
		zap.Int("leave_id", leaveID),
		zap.String("status", decision.Status()),
	)
	c.Success("Leave %d has been %s.", leaveID, decision.Status())

	// The decision is already stored; cancelling here only drops the note.
	note, err := c.PromptLine("Enter the message (Optional):")
	if err != nil {
		return err
	}
	if note.Cancelled {
		note.Value = ""
	}
	r.notifier.Dispatch(notify.LeaveDecided(decision, note.Value))
	return nil
}

func (r *Runner) reportingEmployees(ctx context.Context, manager lms.Manager) error {
	employees, err := r.api.ReportingEmployees(ctx, manager.ManagerID)
	if err != nil {
		r.serviceError("fetch employee information", err)
		return nil
	}
	showList(r, "Employees Reporting to You", "No employees reporting to you.", employeeHeaders, employees, employeeRow)
	return nil
}

func (r *Runner) managerRequests(ctx context.Context, manager lms.Manager) error {
	records, err := r.api.ManagerRequests(ctx, manager.ManagerID)
	if err != nil {
		r.serviceError("fetch leave requests", err)
		return nil
	}
	showList(r, "Leave Requests from Your Employees", "No leave requests from your employees.", leaveHeaders, records, leaveRow)
	return nil
}

func (r *Runner) managerLeavesInPeriod(ctx context.Context, manager lms.Manager) error {
	period, err := r.promptPeriod()
	if err != nil || period.Cancelled {
		return err
	}
	records, err := r.api.ManagerLeavesInPeriod(ctx, manager.ManagerID, period.Value.Start, period.Value.End)
	if err != nil {
		r.serviceError("fetch leave requests", err)
		return nil
	}
	showList(r, "Leave Requests within the Time Period",
		"No leave requests within the specified time period.", leaveHeaders, records, leaveRow)
	return nil
}

package workflow

import (
	"strconv"

	"github.com/five82/lms/internal/console"
	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/policy"
)

var (
	leaveHeaders    = []string{"Leave ID", "Employee ID", "Start Date", "End Date", "Leave Type", console.StatusHeader, "Reason"}
	myLeaveHeaders  = []string{"Leave ID", "Start Date", "End Date", "Leave Type", console.StatusHeader, "Reason"}
	employeeHeaders = []string{"Employee ID", "First Name", "Last Name", "Email", "Date of Birth", "Contact Number", "Account Status"}
	hrEmployeeCols  = append(append([]string(nil), employeeHeaders...), "Manager Id")
)

func leaveRow(r lms.LeaveRecord) []string {
	return []string{
		strconv.Itoa(r.LeaveID),
		strconv.Itoa(r.EmployeeID),
		displayDate(r.StartDate),
		displayDate(r.EndDate),
		r.LeaveType,
		r.Status,
		r.Reason,
	}
}

func myLeaveRow(r lms.LeaveRecord) []string {
	row := leaveRow(r)
	return append(row[:1:1], row[2:]...)
}

func employeeRow(e lms.Employee) []string {
	return []string{
		strconv.Itoa(e.EmployeeID),
		e.FirstName,
		e.LastName,
		e.Email,
		displayDate(e.DOB),
		e.ContactNumber,
		e.AccountStatus,
	}
}

func hrEmployeeRow(e lms.Employee) []string {
	return append(employeeRow(e), strconv.Itoa(e.ManagerID))
}

// displayDate shortens a service timestamp to yyyy-MM-dd, keeping values it
// cannot parse as they are.
func displayDate(raw string) string {
	if day := lms.ParseDay(raw); !day.IsZero() {
		return policy.FormatDate(day)
	}
	return raw
}

// showList prints items as a table under title, or empty when there are none.
func showList[T any](r *Runner, title, empty string, headers []string, items []T, row func(T) []string) {
	if len(items) == 0 {
		r.console.Info("%s", empty)
		return
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}
	r.console.Title(title)
	r.console.Table(headers, rows)
}

// promptPeriod asks for a start and end date, repeating the end date until
// it is not before the start.
func (r *Runner) promptPeriod() (console.Result[policy.Interval], error) {
	c := r.console
	start, err := c.PromptDate("Enter the start date (yyyy-MM-dd) (or 'E' to exit):")
	if err != nil || start.Cancelled {
		return console.Cancelled[policy.Interval](), err
	}
	for {
		end, err := c.PromptDate("Enter the end date (yyyy-MM-dd) (or 'E' to exit):")
		if err != nil || end.Cancelled {
			return console.Cancelled[policy.Interval](), err
		}
		if !end.Value.Before(start.Value) {
			return console.Value(policy.Interval{Start: start.Value, End: end.Value}), nil
		}
		c.Error("End date should not be before the start date. Please enter a valid end date.")
	}
}

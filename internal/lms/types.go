package lms

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/five82/lms/internal/policy"
)

// StatusPending is the status of a freshly submitted application.
const StatusPending = "pending"

// wireTimestampSuffix turns a yyyy-MM-dd date into the timestamp the service
// stores.
const wireTimestampSuffix = "T00:00:00.000Z"

// Employee mirrors an entry of the employees listing.
type Employee struct {
	EmployeeID    int    `json:"employeeId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
	AccountStatus string `json:"accountStatus"`
	ManagerID     int    `json:"managerId"`
}

// Manager mirrors an entry of the managers listing.
type Manager struct {
	ManagerID     int    `json:"managerId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AccountStatus string `json:"accountStatus"`
}

// HR mirrors an entry of the HR listing.
type HR struct {
	HRID          int    `json:"hrId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AccountStatus string `json:"accountStatus"`
}

// Account is the part of a user record needed to log in.
type Account interface {
	LoginEmail() string
	PasswordHash() string
	IsActive() bool
}

func (e Employee) LoginEmail() string   { return e.Email }
func (e Employee) PasswordHash() string { return e.Password }
func (e Employee) IsActive() bool       { return isActive(e.AccountStatus) }

func (m Manager) LoginEmail() string   { return m.Email }
func (m Manager) PasswordHash() string { return m.Password }
func (m Manager) IsActive() bool       { return isActive(m.AccountStatus) }

func (h HR) LoginEmail() string   { return h.Email }
func (h HR) PasswordHash() string { return h.Password }
func (h HR) IsActive() bool       { return isActive(h.AccountStatus) }

func isActive(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "Active")
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// LeaveRecord is a leave application as returned by the listing endpoints.
type LeaveRecord struct {
	LeaveID    int    `json:"leaveId"`
	EmployeeID int    `json:"employeeId"`
	ManagerID  int    `json:"managerId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	LeaveType  string `json:"leaveType"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

// StartDay returns the parsed start date, or the zero time.
func (r LeaveRecord) StartDay() time.Time {
	return ParseDay(r.StartDate)
}

// EndDay returns the parsed end date, or the zero time.
func (r LeaveRecord) EndDay() time.Time {
	return ParseDay(r.EndDate)
}

// LeaveApplication is the body of a leave submission.
type LeaveApplication struct {
	EmployeeID int    `json:"employeeId" validate:"gt=0"`
	ManagerID  int    `json:"managerId" validate:"gt=0"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	LeaveType  string `json:"leaveType" validate:"oneof=CasualLeave SickLeave Comp-off"`
	Reason     string `json:"reason" validate:"required"`
	Status     string `json:"status" validate:"eq=pending"`
}

// NewLeaveApplication builds a pending application for employee.
func NewLeaveApplication(employee Employee, start, end time.Time, leaveType policy.LeaveType, reason string) LeaveApplication {
	return LeaveApplication{
		EmployeeID: employee.EmployeeID,
		ManagerID:  employee.ManagerID,
		StartDate:  WireDate(start),
		EndDate:    WireDate(end),
		LeaveType:  string(leaveType),
		Reason:     strings.TrimSpace(reason),
		Status:     StatusPending,
	}
}

var applicationValidator = validator.New()

// Validate checks the application before it is sent.
func (a LeaveApplication) Validate() error {
	return applicationValidator.Struct(a)
}

// WireDate formats a calendar date as the service's midnight UTC timestamp.
func WireDate(day time.Time) string {
	return policy.FormatDate(day) + wireTimestampSuffix
}

// Decision is a manager's verdict on a leave application.
type Decision string

const (
	Approve Decision = "A"
	Reject  Decision = "R"
)

// ParseDecision accepts "A" or "R" in any case.
func ParseDecision(value string) (Decision, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(Approve):
		return Approve, true
	case string(Reject):
		return Reject, true
	}
	return "", false
}

// Status is the resulting leave status ("approved" or "rejected").
func (d Decision) Status() string {
	if d == Approve {
		return "approved"
	}
	return "rejected"
}

// ParseDay reads a date or timestamp as sent by the service and returns the
// calendar day, or the zero time when value is not a date.
func ParseDay(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, policy.DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return policy.Day(t)
		}
	}
	return time.Time{}
}

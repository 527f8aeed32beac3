package policy

import "strings"

// LeaveType is one of the leave categories the service accepts.
type LeaveType string

const (
	CasualLeave LeaveType = "CasualLeave"
	SickLeave   LeaveType = "SickLeave"
	CompOff     LeaveType = "Comp-off"
)

// LeaveTypes lists the accepted categories in display order.
var LeaveTypes = []LeaveType{CasualLeave, SickLeave, CompOff}

// ParseLeaveType matches candidate against the known types ignoring case and
// surrounding space, returning the canonical spelling.
func ParseLeaveType(candidate string) (LeaveType, bool) {
	trimmed := strings.TrimSpace(candidate)
	for _, lt := range LeaveTypes {
		if strings.EqualFold(trimmed, string(lt)) {
			return lt, true
		}
	}
	return "", false
}

// LeaveTypeChoices returns "CasualLeave, SickLeave, or Comp-off".
func LeaveTypeChoices() string {
	names := make([]string, len(LeaveTypes))
	for i, lt := range LeaveTypes {
		names[i] = string(lt)
	}
	last := len(names) - 1
	return strings.Join(names[:last], ", ") + ", or " + names[last]
}

package notify

import (
	"strings"
	"time"

	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/policy"
)

// Subject is used for every leave notification.
const Subject = "Leaves"

// Message is one plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// LeaveApplied describes a freshly submitted application.
func LeaveApplied(start, end time.Time, leaveType policy.LeaveType, reason string) Message {
	var b strings.Builder
	b.WriteString("Leave application submitted successfully.\n\n")
	b.WriteString("Start Date: " + policy.FormatDate(start) + "\n")
	b.WriteString("End Date: " + policy.FormatDate(end) + "\n")
	b.WriteString("Leave Type: " + string(leaveType) + "\n")
	b.WriteString("Reason: " + reason + "\n")
	b.WriteString("Status: " + lms.StatusPending + "\n")
	return Message{Subject: Subject, Body: b.String()}
}

// LeaveDecided tells the employee about a manager's decision. note is the
// manager's optional message.
func LeaveDecided(decision lms.Decision, note string) Message {
	body := "Leave has been " + decision.Status() + " by your manager.\n\n" + strings.TrimSpace(note)
	return Message{Subject: Subject, Body: body}
}

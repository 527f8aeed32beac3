package policy

import (
	"errors"
	"time"
)

// Quota thresholds applied to every employee.
const (
	MaxLeavesPerMonth = 4
	MaxLeavesPerYear  = 20
	MaxContinuousDays = 5
)

// Rejection reasons. The message text is what the console shows.
var (
	ErrMonthlyQuotaExhausted = errors.New("monthly quota exhausted")
	ErrYearlyQuotaExhausted  = errors.New("yearly quota exhausted")
	ErrStartInPast           = errors.New("start date in past")
	ErrEndInPast             = errors.New("end date in past")
	ErrEndBeforeStart        = errors.New("end before start")
	ErrSpanTooLong           = errors.New("span too long")
	ErrInvalidLeaveType      = errors.New("invalid leave type")
	ErrInvalidUsage          = errors.New("invalid usage count")
	ErrMissingDate           = errors.New("missing date")
)

// Decision is the outcome of a policy check. A nil Err means allowed.
type Decision struct {
	Err            error
	RemainingMonth int
	RemainingYear  int
}

// Allowed reports whether the check passed.
func (d Decision) Allowed() bool {
	return d.Err == nil
}

// Reason returns the rejection message, or "" when allowed.
func (d Decision) Reason() string {
	if d.Err == nil {
		return ""
	}
	return d.Err.Error()
}

func reject(err error) Decision {
	return Decision{Err: err}
}

// Quota carries the caller's already-fetched consumption counts.
type Quota struct {
	MonthlyUsed int
	YearlyUsed  int
}

// Interval is a candidate leave span in calendar days.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Rules is the set of checks Evaluate runs, in order.
//
//go:generate mockgen -source=policy.go -destination=mock/rules_mock.go -package=mock
type Rules interface {
	CheckMonthlyQuota(monthlyUsed int) Decision
	CheckYearlyQuota(yearlyUsed int) Decision
	ValidateInterval(today, start, end time.Time) Decision
	ValidateLeaveType(candidate string) bool
}

// Validator applies the fixed company thresholds. The zero value is ready to use
// and safe for concurrent callers.
type Validator struct{}

var _ Rules = Validator{}

// CheckMonthlyQuota allows the request while fewer than MaxLeavesPerMonth
// leaves were used this month.
func (Validator) CheckMonthlyQuota(monthlyUsed int) Decision {
	if monthlyUsed < 0 {
		return reject(ErrInvalidUsage)
	}
	if monthlyUsed >= MaxLeavesPerMonth {
		return reject(ErrMonthlyQuotaExhausted)
	}
	return Decision{RemainingMonth: MaxLeavesPerMonth - monthlyUsed}
}

// CheckYearlyQuota allows the request while fewer than MaxLeavesPerYear
// leaves were used this year.
func (Validator) CheckYearlyQuota(yearlyUsed int) Decision {
	if yearlyUsed < 0 {
		return reject(ErrInvalidUsage)
	}
	if yearlyUsed >= MaxLeavesPerYear {
		return reject(ErrYearlyQuotaExhausted)
	}
	return Decision{RemainingYear: MaxLeavesPerYear - yearlyUsed}
}

// ValidateInterval checks the span against today. The order of the checks is
// fixed so that inputs violating several rules always report the same reason.
func (Validator) ValidateInterval(today, start, end time.Time) Decision {
	if start.IsZero() || end.IsZero() {
		return reject(ErrMissingDate)
	}
	today, start, end = Day(today), Day(start), Day(end)

	if start.Before(today) {
		return reject(ErrStartInPast)
	}
	if end.Before(today) {
		return reject(ErrEndInPast)
	}
	if end.Before(start) {
		return reject(ErrEndBeforeStart)
	}
	if DaysBetween(start, end) >= MaxContinuousDays {
		return reject(ErrSpanTooLong)
	}
	return Decision{}
}

// ValidateLeaveType reports whether candidate names a known leave type,
// ignoring case.
func (Validator) ValidateLeaveType(candidate string) bool {
	_, ok := ParseLeaveType(candidate)
	return ok
}

// Evaluate runs the checks for a full request: monthly quota, yearly quota,
// interval, then leave type. The first rejection is returned and later checks
// are not run. An accepted decision carries both remaining counts.
func (v Validator) Evaluate(quota Quota, interval Interval, leaveType string, today time.Time) Decision {
	return Evaluate(v, quota, interval, leaveType, today)
}

// Evaluate runs rules in order against a request. See Validator.Evaluate.
func Evaluate(rules Rules, quota Quota, interval Interval, leaveType string, today time.Time) Decision {
	month := rules.CheckMonthlyQuota(quota.MonthlyUsed)
	if !month.Allowed() {
		return month
	}
	year := rules.CheckYearlyQuota(quota.YearlyUsed)
	if !year.Allowed() {
		return year
	}
	if d := rules.ValidateInterval(today, interval.Start, interval.End); !d.Allowed() {
		return d
	}
	if !rules.ValidateLeaveType(leaveType) {
		return reject(ErrInvalidLeaveType)
	}
	return Decision{
		RemainingMonth: month.RemainingMonth,
		RemainingYear:  year.RemainingYear,
	}
}

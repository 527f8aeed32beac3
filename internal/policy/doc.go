// Package policy decides whether an employee may apply for a leave.
//
// # Overview
//
// The package holds the only business rules in the client: monthly and yearly
// quotas and the sanity rules for a requested date span. Everything here is
// pure computation over values the caller supplies; there is no I/O, no
// shared state and nothing to cancel, so every function is safe to call
// concurrently.
//
// # Rules
//
//   - At most MaxLeavesPerMonth (4) leaves per calendar month
//   - At most MaxLeavesPerYear (20) leaves per calendar year
//   - Start and end must not be before today
//   - End must not be before start
//   - end - start must be below MaxContinuousDays (5) calendar days
//   - Leave type is CasualLeave, SickLeave or Comp-off (any case)
//
// # Decisions
//
// Every check returns a Decision. A nil Decision.Err means allowed; otherwise
// Err is one of the package's sentinel errors and can be matched with
// errors.Is:
//
//	d := policy.Validator{}.ValidateInterval(today, start, end)
//	if errors.Is(d.Err, policy.ErrSpanTooLong) {
//		...
//	}
//
// Quota checks fill RemainingMonth or RemainingYear; Evaluate fills both on
// acceptance so the console can show what is left.
//
// # Check Order
//
// ValidateInterval checks past start, past end, ordering, then span length.
// Evaluate checks monthly quota, yearly quota, interval, then leave type and
// stops at the first rejection. The order is observable through the Rules
// interface; see mock.MockRules.
//
// # Dates
//
// Dates are time.Time values truncated to UTC midnight (see Day). DaysBetween
// counts calendar days, so a same-day request spans zero days.
package policy

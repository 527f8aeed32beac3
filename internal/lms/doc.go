// Package lms provides an HTTP client for the leave-management REST service.
//
// # Overview
//
// The service owns employees, managers, HR staff and their leave records.
// This package mirrors its JSON schema and wraps each route the console
// uses in a typed method. Workflows depend on the Service interface so they
// can be exercised against a fake.
//
// # Architecture
//
//   - client.go: Client, request plumbing and one method per route
//   - types.go: account and leave records, the application body and the
//     manager Decision
//
// # Client Usage
//
//	client, err := lms.NewClient(cfg.API, logger)
//	if err != nil {
//		return err
//	}
//	employees, err := client.Employees(ctx)
//
// # Requests
//
// Every request carries a User-Agent of "lms/<version>" and a fresh
// X-Request-ID so a call can be matched with the service's own logs. Paths
// come from config.Endpoints; "{id}" is replaced with the id passed to the
// method, and period queries add employeeId or managerId together with
// startDate and endDate in yyyy-MM-dd form.
//
// Leave applications are posted as JSON with dates written as midnight UTC
// timestamps and status "pending". Decisions are posted as the bare letter
// "A" or "R", which is what the service reads from the body.
//
// # Error Handling
//
// Transport failures are wrapped as "execute request: ...". A status other
// than 200 yields a *StatusError carrying the method, path and code, so
// callers can use errors.As. Bodies that fail to decode are wrapped as
// "decode response: ...". An empty body decodes to a nil slice.
//
// CountLeaves returns the error to its caller; the apply workflow decides to
// treat a failed lookup as zero usage.
package lms

package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/lms/internal/config"
	"github.com/five82/lms/internal/policy"
)

// Service is the leave-management API as seen by the console workflows.
// It is implemented by *Client and faked in tests.
type Service interface {
	Employees(ctx context.Context) ([]Employee, error)
	Managers(ctx context.Context) ([]Manager, error)
	HRs(ctx context.Context) ([]HR, error)

	CountLeaves(ctx context.Context, employeeID int, from, to time.Time) (int, error)
	ApplyLeave(ctx context.Context, app LeaveApplication) error
	MyLeaves(ctx context.Context, employeeID int) ([]LeaveRecord, error)
	MyLeavesInPeriod(ctx context.Context, employeeID int, from, to time.Time) ([]LeaveRecord, error)

	PendingForManager(ctx context.Context, managerID int) ([]LeaveRecord, error)
	SubmitDecision(ctx context.Context, leaveID int, decision Decision) error
	ManagerRequests(ctx context.Context, managerID int) ([]LeaveRecord, error)
	ManagerLeavesInPeriod(ctx context.Context, managerID int, from, to time.Time) ([]LeaveRecord, error)
	ReportingEmployees(ctx context.Context, managerID int) ([]Employee, error)

	AllEmployees(ctx context.Context) ([]Employee, error)
	AllLeavesInPeriod(ctx context.Context, from, to time.Time) ([]LeaveRecord, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the leave-management HTTP API.
type Client struct {
	baseURL   *url.URL
	endpoints config.Endpoints
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

const (
	defaultUserAgent = "lms/0.1"
	defaultTimeout   = 10 * time.Second
	requestIDHeader  = "X-Request-ID"
)

// StatusError reports a response other than the expected success code.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// NewClient builds a Client for the configured API.
func NewClient(cfg config.API, logger *zap.Logger) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   base,
		endpoints: cfg.Endpoints,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger.Named("lms.client"),
	}, nil
}

// Employees lists every employee account.
func (c *Client) Employees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := c.get(ctx, c.endpoints.Employees, 0, nil, &out)
	return out, err
}

// Managers lists every manager account.
func (c *Client) Managers(ctx context.Context) ([]Manager, error) {
	var out []Manager
	err := c.get(ctx, c.endpoints.Managers, 0, nil, &out)
	return out, err
}

// HRs lists every HR account.
func (c *Client) HRs(ctx context.Context) ([]HR, error) {
	var out []HR
	err := c.get(ctx, c.endpoints.HRs, 0, nil, &out)
	return out, err
}

// LeaveHistory lists an employee's leaves between from and to inclusive.
func (c *Client) LeaveHistory(ctx context.Context, employeeID int, from, to time.Time) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.LeaveHistory, 0, periodQuery("employeeId", employeeID, from, to), &out)
	return out, err
}

// CountLeaves returns how many leaves an employee has in the window. The
// service answers with the matching records; only their number is used.
func (c *Client) CountLeaves(ctx context.Context, employeeID int, from, to time.Time) (int, error) {
	records, err := c.LeaveHistory(ctx, employeeID, from, to)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ApplyLeave submits a leave application. Only 200 OK counts as accepted.
func (c *Client) ApplyLeave(ctx context.Context, app LeaveApplication) error {
	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid leave application: %w", err)
	}
	body, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode leave application: %w", err)
	}
	rel, err := c.resolve(c.endpoints.ApplyLeave, 0, nil)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, rel, "application/json", body, http.StatusOK, nil)
}

// MyLeaves lists every leave of an employee.
func (c *Client) MyLeaves(ctx context.Context, employeeID int) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.MyLeaves, employeeID, nil, &out)
	return out, err
}

// MyLeavesInPeriod lists an employee's leaves inside a period.
func (c *Client) MyLeavesInPeriod(ctx context.Context, employeeID int, from, to time.Time) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.MyLeavesInPeriod, 0, periodQuery("employeeId", employeeID, from, to), &out)
	return out, err
}

// PendingForManager lists applications awaiting a manager's decision.
func (c *Client) PendingForManager(ctx context.Context, managerID int) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.PendingForManager, managerID, nil, &out)
	return out, err
}

// SubmitDecision approves or rejects a leave. The service expects the bare
// action letter as the request body.
func (c *Client) SubmitDecision(ctx context.Context, leaveID int, decision Decision) error {
	if decision != Approve && decision != Reject {
		return fmt.Errorf("unknown decision %q", decision)
	}
	rel, err := c.resolve(c.endpoints.SubmitDecision, leaveID, nil)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, rel, "application/json", []byte(decision), http.StatusOK, nil)
}

// ManagerRequests lists every leave request from a manager's reports.
func (c *Client) ManagerRequests(ctx context.Context, managerID int) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.ManagerRequests, managerID, nil, &out)
	return out, err
}

// ManagerLeavesInPeriod lists a manager's team leaves inside a period.
func (c *Client) ManagerLeavesInPeriod(ctx context.Context, managerID int, from, to time.Time) ([]LeaveRecord, error) {
	var out []LeaveRecord
	err := c.get(ctx, c.endpoints.ManagerLeavesInPeriod, 0, periodQuery("managerId", managerID, from, to), &out)
	return out, err
}

// ReportingEmployees lists the employees reporting to a manager.
func (c *Client) ReportingEmployees(ctx context.Context, managerID int) ([]Employee, error) {
	var out []Employee
	err := c.get(ctx, c.endpoints.ReportingEmployees, managerID, nil, &out)
	return out, err
}

// AllEmployees lists every employee with details, for HR.
func (c *Client) AllEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := c.get(ctx, c.endpoints.AllEmployees, 0, nil, &out)
	return out, err
}

// AllLeavesInPeriod lists every leave inside a period, for HR.
func (c *Client) AllLeavesInPeriod(ctx context.Context, from, to time.Time) ([]LeaveRecord, error) {
	var out []LeaveRecord
	values := url.Values{}
	values.Set("startDate", policy.FormatDate(from))
	values.Set("endDate", policy.FormatDate(to))
	err := c.get(ctx, c.endpoints.AllLeavesInPeriod, 0, values, &out)
	return out, err
}

func periodQuery(idKey string, id int, from, to time.Time) url.Values {
	values := url.Values{}
	values.Set(idKey, strconv.Itoa(id))
	values.Set("startDate", policy.FormatDate(from))
	values.Set("endDate", policy.FormatDate(to))
	return values
}

func (c *Client) get(ctx context.Context, endpoint string, id int, query url.Values, dest any) error {
	rel, err := c.resolve(endpoint, id, query)
	if err != nil {
		return err
	}
	return c.send(ctx, http.MethodGet, rel, "", nil, http.StatusOK, dest)
}

// resolve substitutes "{id}" in endpoint and attaches query.
func (c *Client) resolve(endpoint string, id int, query url.Values) (*url.URL, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	path := strings.TrimSpace(endpoint)
	if path == "" {
		return nil, fmt.Errorf("endpoint not configured")
	}
	if strings.Contains(path, "{id}") {
		if id <= 0 {
			return nil, fmt.Errorf("id required for %s", path)
		}
		path = strings.ReplaceAll(path, "{id}", strconv.Itoa(id))
	}
	rel, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if len(query) > 0 {
		rel.RawQuery = query.Encode()
	}
	return rel, nil
}

func (c *Client) send(ctx context.Context, method string, rel *url.URL, contentType string, body []byte, want int, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", reqURL.Path),
	)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("request done",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode != want {
		return &StatusError{Method: method, Path: reqURL.Path, Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	// Keep a path prefix such as /api; endpoints resolve below it.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

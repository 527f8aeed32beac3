// Package workflow drives the menus of a console session: login, leave
// applications, manager decisions and HR listings.
package workflow

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/five82/lms/internal/console"
	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/notify"
	"github.com/five82/lms/internal/policy"
)

// Notifier queues an email without waiting for delivery.
type Notifier interface {
	Dispatch(msg notify.Message)
}

// Deps are the collaborators of a Runner. Console and API are required.
type Deps struct {
	Console  *console.Console
	API      lms.Service
	Rules    policy.Rules
	Notifier Notifier
	Logger   *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// LastEmail is offered at the login prompt; OnLogin is told about
	// each successful login.
	LastEmail string
	OnLogin   func(email string)
}

// Runner drives the menus for one console session.
type Runner struct {
	console  *console.Console
	api      lms.Service
	rules    policy.Rules
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time

	lastEmail string
	onLogin   func(email string)
}

type discardNotifier struct{}

func (discardNotifier) Dispatch(notify.Message) {}

// New builds a Runner, filling optional collaborators with defaults.
func New(d Deps) *Runner {
	r := &Runner{
		console:   d.Console,
		api:       d.API,
		rules:     d.Rules,
		notifier:  d.Notifier,
		logger:    d.Logger,
		now:       d.Now,
		lastEmail: d.LastEmail,
		onLogin:   d.OnLogin,
	}
	if r.rules == nil {
		r.rules = policy.Validator{}
	}
	if r.notifier == nil {
		r.notifier = discardNotifier{}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	r.logger = r.logger.Named("workflow")
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Run shows the main menu until the user exits, input ends or ctx is done.
// End of input is a normal exit.
func (r *Runner) Run(ctx context.Context) error {
	err := r.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		r.logger.Info("input closed")
		return nil
	}
	return err
}

func (r *Runner) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := r.console.Menu("Welcome to Leave Management System",
			"Employee Login",
			"Manager Login",
			"HR Login",
			"Exit",
		)
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Value == 4 {
			r.console.Info("Exiting.")
			return nil
		}

		switch choice.Value {
		case 1:
			employee, ok, err := login(ctx, r, "Employee", r.api.Employees)
			if err != nil {
				return err
			}
			if ok {
				err = r.employeeMenu(ctx, employee)
			}
			if err != nil {
				return err
			}
		case 2:
			manager, ok, err := login(ctx, r, "Manager", r.api.Managers)
			if err != nil {
				return err
			}
			if ok {
				err = r.managerMenu(ctx, manager)
			}
			if err != nil {
				return err
			}
		case 3:
			hr, ok, err := login(ctx, r, "HR", r.api.HRs)
			if err != nil {
				return err
			}
			if ok {
				err = r.hrMenu(ctx, hr)
			}
			if err != nil {
				return err
			}
		}
	}
}

// today is the current calendar day in UTC.
func (r *Runner) today() time.Time {
	return policy.Day(r.now())
}

// serviceError reports a failed API call to the user and the log.
func (r *Runner) serviceError(action string, err error) {
	r.logger.Error("service call failed", zap.String("action", action), zap.Error(err))
	r.console.Error("Failed to %s: %v", action, err)
}

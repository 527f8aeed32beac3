// Package notify emails leave notifications through an SMTP relay without
// blocking the console.
package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/lms/internal/config"
)

// sendTimeout bounds a single delivery.
const sendTimeout = 30 * time.Second

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher sends notifications in the background so the console never
// waits on the mail relay. Failures are logged and dropped.
type Dispatcher struct {
	sender Sender
	to     string
	logger *zap.Logger

	mu       sync.Mutex
	draining bool
	wg       sync.WaitGroup

	disabledOnce sync.Once
}

// NewDispatcher returns a dispatcher for cfg. When cfg is not enabled the
// dispatcher drops every message.
func NewDispatcher(cfg config.SMTP, sender Sender, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		to:     cfg.MailTo,
		logger: logger.Named("notify"),
	}
	if cfg.Enabled() {
		d.sender = sender
	}
	return d
}

// Enabled reports whether messages are delivered.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.sender != nil
}

// Dispatch queues msg for the configured recipient and returns immediately.
// Messages dispatched after Wait has started are logged and dropped.
func (d *Dispatcher) Dispatch(msg Message) {
	if !d.Enabled() {
		if d != nil {
			d.disabledOnce.Do(func() {
				d.logger.Info("email notifications disabled; smtp host or mail_to not configured")
			})
		}
		return
	}
	if msg.To == "" {
		msg.To = d.to
	}

	d.mu.Lock()
	if d.draining {
		d.mu.Unlock()
		d.logger.Warn("notification dropped; dispatcher is shutting down",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		started := time.Now()
		if err := d.sender.Send(ctx, msg); err != nil {
			d.logger.Warn("send notification failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			return
		}
		d.logger.Info("notification sent",
			zap.String("to", msg.To),
			zap.Duration("elapsed", time.Since(started)),
		)
	}()
}

// Wait stops accepting messages and blocks until queued ones finish or ctx
// is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	d.draining = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

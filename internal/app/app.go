package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/five82/lms/internal/config"
	"github.com/five82/lms/internal/console"
	"github.com/five82/lms/internal/lms"
	"github.com/five82/lms/internal/notify"
	"github.com/five82/lms/internal/policy"
	"github.com/five82/lms/internal/prefs"
	"github.com/five82/lms/internal/workflow"
)

// drainTimeout bounds how long exit waits for queued notifications.
const drainTimeout = 15 * time.Second

// Options configure the lms application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lms/prefs.toml
	EnvFile    string // empty tries ./.env

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// Run starts the console session and blocks until the user exits, input ends
// or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	store, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("open prefs: %w", err)
	}
	userPrefs, err := store.Load()
	if err != nil {
		logger.Warn("prefs unreadable; using defaults", zap.String("path", store.Path()), zap.Error(err))
	}

	client, err := lms.NewClient(cfg.API, logger)
	if err != nil {
		return fmt.Errorf("init lms client: %w", err)
	}
	dispatcher := notify.NewDispatcher(cfg.SMTP, notify.NewSMTPSender(cfg.SMTP), logger)

	in, out := opts.Stdin, opts.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	con := console.New(in, out, console.WithTheme(console.GetTheme(userPrefs.Theme)))

	logger.Info("session started",
		zap.String("api", cfg.API.BaseURL),
		zap.Bool("email", dispatcher.Enabled()),
	)

	runner := workflow.New(workflow.Deps{
		Console:   con,
		API:       client,
		Rules:     policy.Validator{},
		Notifier:  dispatcher,
		Logger:    logger,
		LastEmail: userPrefs.LastEmail,
		OnLogin: func(email string) {
			if err := store.RememberLogin(email); err != nil {
				logger.Warn("save prefs failed", zap.String("path", store.Path()), zap.Error(err))
			}
		},
	})

	// The console blocks on input, so a signal must not wait for it.
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		con.Println("")
		con.Warn("Interrupted.")
		err = nil
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if werr := dispatcher.Wait(drainCtx); werr != nil {
		logger.Warn("pending notifications dropped", zap.Error(werr))
	}

	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("session ended", zap.Error(err))
	return err
}

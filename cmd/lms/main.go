package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lms/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/lms/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional, defaults to ~/.config/lms/prefs.toml)")
	envFile := flag.String("env", "", "dotenv file with LMS_* overrides (optional, defaults to ./.env)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		EnvFile:    *envFile,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lms: %v\n", err)
		return 1
	}
	return 0
}

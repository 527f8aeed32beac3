package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envBaseURL, envSMTPHost, envSMTPPort, envSMTPUsername, envSMTPPassword, envSMTPMailTo} {
		t.Setenv(key, "")
	}
	// Keep a stray ./.env from leaking into the test.
	t.Chdir(t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Timeout != defaultTimeout {
		t.Fatalf("Timeout = %v, want %v", cfg.API.Timeout, defaultTimeout)
	}
	if cfg.API.Endpoints != DefaultEndpoints() {
		t.Fatalf("Endpoints = %#v, want defaults", cfg.API.Endpoints)
	}
	if cfg.SMTP.Port != defaultSMTPPort {
		t.Fatalf("SMTP.Port = %d, want %d", cfg.SMTP.Port, defaultSMTPPort)
	}
	if cfg.SMTP.Enabled() {
		t.Fatalf("SMTP.Enabled() = true, want false without host")
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := writeConfig(t, `
[api]
base_url = "  http://10.0.0.5:9999  "
timeout_seconds = 3

[api.endpoints]
apply_leave = "/v2/leaves"
my_leaves = "  "

[smtp]
host = " smtp.example.com "
port = 465
username = "hr-bot@example.com"
password = "secret"
mail_to = "manager@example.com"

[log]
file = "~/logs/lms.log"
level = "DEBUG"
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://10.0.0.5:9999" {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, "http://10.0.0.5:9999")
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %v, want 3s", cfg.API.Timeout)
	}
	if cfg.API.Endpoints.ApplyLeave != "/v2/leaves" {
		t.Fatalf("ApplyLeave = %q, want /v2/leaves", cfg.API.Endpoints.ApplyLeave)
	}
	if cfg.API.Endpoints.MyLeaves != DefaultEndpoints().MyLeaves {
		t.Fatalf("MyLeaves = %q, want default", cfg.API.Endpoints.MyLeaves)
	}
	if cfg.SMTP.Host != "smtp.example.com" || cfg.SMTP.Port != 465 {
		t.Fatalf("SMTP = %#v, want host smtp.example.com port 465", cfg.SMTP)
	}
	if cfg.SMTP.Sender() != "hr-bot@example.com" {
		t.Fatalf("Sender() = %q, want username fallback", cfg.SMTP.Sender())
	}
	if !cfg.SMTP.Enabled() {
		t.Fatalf("SMTP.Enabled() = false, want true")
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := writeConfig(t, `
[smtp]
host = "smtp.example.com"
password = "from-file"
`)
	envFile := filepath.Join(t.TempDir(), "lms.env")
	if err := os.WriteFile(envFile, []byte("LMS_SMTP_PASSWORD=from-env\nLMS_SMTP_MAIL_TO=hr@example.com\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// godotenv never overrides variables that are already set.
	os.Unsetenv(envSMTPPassword)
	os.Unsetenv(envSMTPMailTo)

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SMTP.Password != "from-env" {
		t.Fatalf("SMTP.Password = %q, want from-env", cfg.SMTP.Password)
	}
	if cfg.SMTP.MailTo != "hr@example.com" {
		t.Fatalf("SMTP.MailTo = %q, want hr@example.com", cfg.SMTP.MailTo)
	}
}

func TestLoad_BaseURLWithoutSchemeDefaultsToHTTP(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	cfg, err := Load(writeConfig(t, "[api]\nbase_url = \"127.0.0.1:3000\"\n"), "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:3000" {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, "http://127.0.0.1:3000")
	}

	t.Setenv(envBaseURL, "leaves.internal:8080/api")
	cfg, err = Load(writeConfig(t, ""), "")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://leaves.internal:8080/api" {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, "http://leaves.internal:8080/api")
	}
}

func TestLoad_MissingEnvFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "none.toml"), filepath.Join(t.TempDir(), "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "load env file") {
		t.Fatalf("Load error = %v, want load env file error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `[api`)
	_, err := Load(path, "")
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_ValidationFails(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad url", "[api]\nbase_url = \"not a url\"\n", "BaseURL"},
		{"bad port", "[smtp]\nport = 70000\n", "Port"},
		{"bad mail_to", "[smtp]\nmail_to = \"nobody\"\n", "MailTo"},
		{"bad level", "[log]\nlevel = \"chatty\"\n", "Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), "")
			if err == nil {
				t.Fatalf("Load returned nil error, want validation error")
			}
			if !strings.Contains(err.Error(), "invalid config") || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want invalid config mentioning %s", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

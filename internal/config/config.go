package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is everything the client needs to reach the leave service and the
// mail relay.
type Config struct {
	API  API
	SMTP SMTP
	Log  Log
}

// API locates the leave-management REST service.
type API struct {
	BaseURL   string `validate:"required,url"`
	Timeout   time.Duration
	Endpoints Endpoints
}

// Endpoints are paths relative to BaseURL. A "{id}" segment is replaced with
// the relevant employee, manager or leave id.
type Endpoints struct {
	Employees             string `toml:"employees"`
	Managers              string `toml:"managers"`
	HRs                   string `toml:"hrs"`
	ApplyLeave            string `toml:"apply_leave"`
	LeaveHistory          string `toml:"leave_history"`
	MyLeaves              string `toml:"my_leaves"`
	MyLeavesInPeriod      string `toml:"my_leaves_in_period"`
	PendingForManager     string `toml:"pending_for_manager"`
	SubmitDecision        string `toml:"submit_decision"`
	ManagerRequests       string `toml:"manager_requests"`
	ManagerLeavesInPeriod string `toml:"manager_leaves_in_period"`
	ReportingEmployees    string `toml:"reporting_employees"`
	AllEmployees          string `toml:"all_employees"`
	AllLeavesInPeriod     string `toml:"all_leaves_in_period"`
}

// SMTP configures outgoing notifications. An empty Host disables email.
type SMTP struct {
	Host     string
	Port     int `validate:"min=1,max=65535"`
	Username string
	Password string
	From     string
	MailTo   string `validate:"omitempty,email"`
}

// Enabled reports whether notifications can be sent.
func (s SMTP) Enabled() bool {
	return strings.TrimSpace(s.Host) != "" && strings.TrimSpace(s.MailTo) != ""
}

// Sender returns the From address, defaulting to the login user.
func (s SMTP) Sender() string {
	if from := strings.TrimSpace(s.From); from != "" {
		return from
	}
	return s.Username
}

// Log configures the diagnostic log file.
type Log struct {
	File  string
	Level string `validate:"oneof=debug info warn error"`
}

const (
	defaultConfigPath = "~/.config/lms/config.toml"
	defaultLogFile    = "~/.local/share/lms/lms.log"
	defaultLogLevel   = "info"
	defaultBaseURL    = "http://127.0.0.1:3000"
	defaultTimeout    = 10 * time.Second
	defaultSMTPPort   = 587
)

// Environment overrides, read after any .env file has been loaded.
const (
	envBaseURL      = "LMS_API_BASE_URL"
	envSMTPHost     = "LMS_SMTP_HOST"
	envSMTPPort     = "LMS_SMTP_PORT"
	envSMTPUsername = "LMS_SMTP_USERNAME"
	envSMTPPassword = "LMS_SMTP_PASSWORD"
	envSMTPMailTo   = "LMS_SMTP_MAIL_TO"
)

// DefaultEndpoints mirrors the routes of the reference leave service.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Employees:             "/employees/getemployees",
		Managers:              "/managers/getmanagers",
		HRs:                   "/hrs/gethrs",
		ApplyLeave:            "/leaves",
		LeaveHistory:          "/leaves/history",
		MyLeaves:              "/leaves/employee/{id}",
		MyLeavesInPeriod:      "/leaves/period",
		PendingForManager:     "/leaves/pending/{id}",
		SubmitDecision:        "/leaves/decision/{id}",
		ManagerRequests:       "/leaves/manager/{id}",
		ManagerLeavesInPeriod: "/leaves/manager",
		ReportingEmployees:    "/managers/{id}/employees",
		AllEmployees:          "/hrs/employees",
		AllLeavesInPeriod:     "/leaves/all",
	}
}

type rawConfig struct {
	API struct {
		BaseURL        string    `toml:"base_url"`
		TimeoutSeconds int       `toml:"timeout_seconds"`
		Endpoints      Endpoints `toml:"endpoints"`
	} `toml:"api"`
	SMTP struct {
		Host     string `toml:"host"`
		Port     int    `toml:"port"`
		Username string `toml:"username"`
		Password string `toml:"password"`
		From     string `toml:"from"`
		MailTo   string `toml:"mail_to"`
	} `toml:"smtp"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Load locates and parses the client config, falling back to defaults when
// missing. envFile names an optional dotenv file; empty tries ./.env.
func Load(path, envFile string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if err := loadEnv(envFile); err != nil {
		return Config{}, err
	}

	var raw rawConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := fromRaw(raw)
	applyEnv(&cfg)
	cfg.API.BaseURL = withScheme(cfg.API.BaseURL)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromRaw(raw rawConfig) Config {
	cfg := Config{
		API: API{
			BaseURL:   orDefault(raw.API.BaseURL, defaultBaseURL),
			Timeout:   defaultTimeout,
			Endpoints: mergeEndpoints(raw.API.Endpoints, DefaultEndpoints()),
		},
		SMTP: SMTP{
			Host:     strings.TrimSpace(raw.SMTP.Host),
			Port:     raw.SMTP.Port,
			Username: strings.TrimSpace(raw.SMTP.Username),
			Password: raw.SMTP.Password,
			From:     strings.TrimSpace(raw.SMTP.From),
			MailTo:   strings.TrimSpace(raw.SMTP.MailTo),
		},
		Log: Log{
			File:  mustExpand(orDefault(raw.Log.File, defaultLogFile)),
			Level: strings.ToLower(orDefault(raw.Log.Level, defaultLogLevel)),
		},
	}
	if raw.API.TimeoutSeconds > 0 {
		cfg.API.Timeout = time.Duration(raw.API.TimeoutSeconds) * time.Second
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = defaultSMTPPort
	}
	return cfg
}

func mergeEndpoints(got, defaults Endpoints) Endpoints {
	return Endpoints{
		Employees:             orDefault(got.Employees, defaults.Employees),
		Managers:              orDefault(got.Managers, defaults.Managers),
		HRs:                   orDefault(got.HRs, defaults.HRs),
		ApplyLeave:            orDefault(got.ApplyLeave, defaults.ApplyLeave),
		LeaveHistory:          orDefault(got.LeaveHistory, defaults.LeaveHistory),
		MyLeaves:              orDefault(got.MyLeaves, defaults.MyLeaves),
		MyLeavesInPeriod:      orDefault(got.MyLeavesInPeriod, defaults.MyLeavesInPeriod),
		PendingForManager:     orDefault(got.PendingForManager, defaults.PendingForManager),
		SubmitDecision:        orDefault(got.SubmitDecision, defaults.SubmitDecision),
		ManagerRequests:       orDefault(got.ManagerRequests, defaults.ManagerRequests),
		ManagerLeavesInPeriod: orDefault(got.ManagerLeavesInPeriod, defaults.ManagerLeavesInPeriod),
		ReportingEmployees:    orDefault(got.ReportingEmployees, defaults.ReportingEmployees),
		AllEmployees:          orDefault(got.AllEmployees, defaults.AllEmployees),
		AllLeavesInPeriod:     orDefault(got.AllLeavesInPeriod, defaults.AllLeavesInPeriod),
	}
}

func loadEnv(envFile string) error {
	if strings.TrimSpace(envFile) == "" {
		// Missing ./.env is the common case.
		_ = godotenv.Load()
		return nil
	}
	resolved, err := expandPath(envFile)
	if err != nil {
		return err
	}
	if err := godotenv.Load(resolved); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envSMTPHost)); v != "" {
		cfg.SMTP.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(envSMTPPort)); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv(envSMTPUsername)); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv(envSMTPPassword); v != "" {
		cfg.SMTP.Password = v
	}
	if v := strings.TrimSpace(os.Getenv(envSMTPMailTo)); v != "" {
		cfg.SMTP.MailTo = v
	}
}

var validate = func() func(Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	return func(cfg Config) error {
		if err := v.Struct(cfg); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				e := verrs[0]
				return fmt.Errorf("invalid config: %s failed %q", e.Namespace(), e.Tag())
			}
			return fmt.Errorf("invalid config: %w", err)
		}
		return nil
	}
}()

// withScheme defaults a bare host:port base URL to http.
func withScheme(baseURL string) string {
	if baseURL == "" || strings.Contains(baseURL, "://") {
		return baseURL
	}
	return "http://" + baseURL
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

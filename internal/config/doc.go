// Package config loads the lms client configuration.
//
// # Overview
//
// The client needs three things from its configuration: where the
// leave-management REST service lives, how to reach the SMTP relay used for
// notifications, and where to write its diagnostic log. Load reads a TOML
// file, applies environment overrides and validates the result once at
// startup. The returned Config is a plain value passed to the components that
// need it; there is no package-level state.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lms/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. Empty or whitespace-only fields use defaults
//  5. A dotenv file (explicit, or ./.env when present) is loaded and
//     LMS_* variables override file values
//
// # TOML Format
//
//	[api]
//	base_url = "http://127.0.0.1:3000"
//	timeout_seconds = 10
//
//	[api.endpoints]
//	apply_leave = "/leaves"
//	my_leaves = "/leaves/employee/{id}"
//
//	[smtp]
//	host = "smtp.gmail.com"
//	port = 587
//	username = "leave-bot@example.com"
//	mail_to = "hr@example.com"
//
//	[log]
//	file = "~/.local/share/lms/lms.log"
//	level = "info"
//
// Every endpoint has a default (see DefaultEndpoints). "{id}" in an endpoint
// path is replaced with the employee, manager or leave id of the call.
//
// # Environment
//
//   - LMS_API_BASE_URL
//   - LMS_SMTP_HOST, LMS_SMTP_PORT
//   - LMS_SMTP_USERNAME, LMS_SMTP_PASSWORD
//   - LMS_SMTP_MAIL_TO
//
// Secrets belong in the environment or a dotenv file rather than config.toml.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
//   - An explicit dotenv file that cannot be read
//   - Validation failures ("invalid config: ...")
package config

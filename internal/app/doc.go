// Package app is the composition root of the lms console client.
//
// # Overview
//
// Run loads configuration, opens the diagnostic log, builds the REST client
// and the notification dispatcher, and hands a console session to the
// workflow package. It returns when the user chooses Exit, standard input
// ends, or the context is cancelled.
//
// # Startup
//
//  1. config.Load reads ~/.config/lms/config.toml, a dotenv file and LMS_*
//     variables
//  2. newLogger opens the JSON log file at the configured level
//  3. prefs.Open and Store.Load restore the theme and the last login e-mail
//  4. lms.NewClient and notify.NewDispatcher are built from the config
//  5. workflow.Runner drives the menus on stdin/stdout
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read config, env overrides
//	       ├─────> newLogger()            zap logger to file
//	       ├─────> lms.NewClient()        REST client
//	       ├─────> notify.NewDispatcher() Background email
//	       └─────> workflow.Run()         Menus (blocks on input)
//
// # Shutdown
//
// The workflow runs in its own goroutine so SIGINT or SIGTERM ends the session
// even while a prompt is waiting for input. Either way Run then waits up to
// 15 seconds for queued notifications before returning.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration that cannot be parsed or fails validation
//   - A log file that cannot be created
//   - An unusable API base URL
//
// Everything else (service failures, rejected logins, policy rejections,
// mail delivery) is reported on the console or in the log and the session
// continues.
package app

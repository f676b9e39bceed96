// Package config loads runtime configuration for the clientdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database
//	-i int      session expiry check interval (seconds)
//	-l string   log backend: slog or zap
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds. Keys that are absent keep their
// earlier value:
//
//	{
//	  "server_base_url": "https://pruebareactjs.test-class.com/Api/",
//	  "request_timeout": "15s",
//	  "database_path": "clientdesk.db",
//	  "expiry_check_interval": "30s",
//	  "log_backend": "slog"
//	}
package config

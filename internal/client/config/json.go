package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/flagx"
	"github.com/dmitrijs2005/clientdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration so they may be written as "15s" or as a number of seconds,
// matching the -t and -i flags. Zero means unset.
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	DatabasePath        string         `json:"database_path"`
	ExpiryCheckInterval timex.Duration `json:"expiry_check_interval"`
	LogBackend          string         `json:"log_backend"`
}

// parseJson overlays Config with the non-empty values of the JSON file named
// by -c/-config. Without the flag nothing happens. Read and decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.RequestTimeout.Duration < 0 || jc.ExpiryCheckInterval.Duration < 0 {
		panic(fmt.Errorf("%s: intervals must not be negative", jsonConfigFile))
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ExpiryCheckInterval.Duration > 0 {
		cfg.ExpiryCheckInterval = jc.ExpiryCheckInterval.Duration
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}

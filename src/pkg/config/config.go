// Package config loads the JSON configuration file shared by all
// fleet-command entrypoints and fans sections out to their packages.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	echomw "fleet-command/src/pkg/echo-middleware"
)

/*
FeedsConfig points at the published spreadsheet feeds.

TripLogURL is the primary trip-log sheet (one row per trip). FixedCostsURL
is the secondary fixed-costs sheet. Both are plain CSV exports fetched over
HTTPS once per load; there is no incremental sync.
*/
type FeedsConfig struct {
	TripLogURL     string `json:"trip_log_url,omitempty"`
	FixedCostsURL  string `json:"fixed_costs_url,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

/*
ReportConfig controls the monthly report generator defaults.
*/
type ReportConfig struct {
	Timezone string `json:"timezone,omitempty"`
	Title    string `json:"title,omitempty"`
	S3Bucket string `json:"s3_bucket,omitempty"`
	S3Prefix string `json:"s3_prefix,omitempty"`
}

/*
Config is the root configuration document (./cfg/config.json).

ReferenceYear is the year assumed for spreadsheet dates that carry no year
("01 dez", "05/11"). Zero means "use the current year at load time".
*/
type Config struct {
	Feeds         FeedsConfig    `json:"feeds,omitempty"`
	ReferenceYear int            `json:"reference_year,omitempty"`
	Report        ReportConfig   `json:"report,omitempty"`
	Middleware    *echomw.Config `json:"echo_middleware,omitempty"`
}

func DefaultValueConfig() Config {
	return Config{
		Feeds: FeedsConfig{
			TripLogURL:     "",
			FixedCostsURL:  "",
			TimeoutSeconds: 30,
		},
		ReferenceYear: 0,
		Report: ReportConfig{
			Timezone: "America/Sao_Paulo",
			Title:    "",
			S3Bucket: "",
			S3Prefix: "fleet-reports",
		},
		Middleware: nil,
	}
}

// create config with default values before config gets initialized
var Cfg Config = DefaultValueConfig() // this one we use to access config values from anywhere

/*
InitializeConfig reads the JSON config file at configPath and replaces Cfg.

A missing or unreadable file is not fatal: the defaults stay in place and a
warning is logged. Missing fields inside a present file are backfilled from
the defaults. The echo-middleware section is handed to its own package.
*/
func InitializeConfig(configPath string) {
	fileBytes, readErr := os.ReadFile(configPath)
	if readErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Unable to read config file '%s': %s. Keeping %s", configPath, readErr, "default configuration")
		echomw.InitializeConfig(nil)
		return
	}

	var parsed Config
	unmarshalErr := json.Unmarshal(fileBytes, &parsed)
	if unmarshalErr != nil {
		tl.Log(tl.Warning, palette.YellowBold, "Unable to parse config file '%s': %s. Keeping %s", configPath, unmarshalErr, "default configuration")
		echomw.InitializeConfig(nil)
		return
	}

	defaultConfig := DefaultValueConfig() // Default values to replace some values with during config initialization
	Cfg = parsed

	tl.ApplyDefaults(&Cfg.Feeds, defaultConfig.Feeds, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in feeds configuration. Using default value: %v",
			field, "missing", tl.PrettyForStderr(defVal),
		)
	})
	tl.ApplyDefaults(&Cfg.Report, defaultConfig.Report, func(field string, defVal any) {
		tl.Log(
			tl.Info, palette.Purple,
			"%s field is %s in report configuration. Using default value: %v",
			field, "missing", tl.PrettyForStderr(defVal),
		)
	})

	echomw.InitializeConfig(Cfg.Middleware)

	tl.Log(tl.Info, palette.Green, "Loaded configuration from '%s'", configPath)
	tl.LogJSON(tl.Verbose, palette.CyanDim, fmt.Sprintf("configuration from '%s'", configPath), Cfg)
}

/*
CheckIfEnvVarsPresent logs a warning for every environment variable in
names that is unset or blank. It never exits: an entrypoint may only need
a subset of the providers these credentials belong to.
*/
func CheckIfEnvVarsPresent(names ...string) {
	for _, name := range names {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			tl.Log(tl.Warning, palette.YellowDim, "Environment variable %s is %s", name, "not set")
		}
	}
}

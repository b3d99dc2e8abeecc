package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"fleet-command/src/pkg/config"
	"fleet-command/src/pkg/fleet"
	"fleet-command/src/pkg/sheet"
	"fleet-command/src/pkg/trips"
	"fleet-command/src/pkg/util"
)

/*
main fetches the trip-log feed once, normalizes it, and dumps the canonical
records plus their unfiltered summary as pretty JSON. Handy for checking
what the sheet actually contains before blaming the dashboard.
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	feedFlag := flag.String("url", "", "Trip-log CSV feed URL (overrides config).")
	outputFlag := flag.String("o", "./tmp/trip-snapshot.json", "Output JSON path.")

	flag.Parse()
	config.InitializeConfig(*configPath)

	feedURL := *feedFlag
	if feedURL == "" {
		feedURL = config.Cfg.Feeds.TripLogURL
	}
	util.RequiredFlag(&feedURL, "url")
	util.EnsureFlags()

	tl.Log(tl.Notice, palette.BlueBold, "%s trip snapshot from '%s'", "Taking", feedURL)

	rawRecords, fetchErr := sheet.FetchRecords(feedURL, sheet.DefaultFetchTimeout)
	fetchErr.QuitIf(xerr.ErrorTypeError)

	tripLog := trips.FromRecords(rawRecords)
	summary := fleet.Summarize(tripLog)

	snapshot := map[string]any{
		"records": tripLog,
		"summary": summary,
	}

	jsonBytes, marshalErr := json.MarshalIndent(snapshot, "", "  ")
	xerr.QuitIfError(marshalErr, "marshal trip snapshot to JSON")

	mkdirErr := os.MkdirAll(filepath.Dir(*outputFlag), 0o755)
	xerr.QuitIfError(mkdirErr, "create snapshot output directory")

	writeErr := os.WriteFile(*outputFlag, jsonBytes, 0o644)
	xerr.QuitIfError(writeErr, "write snapshot file")

	tl.Log(tl.Notice, palette.GreenBold, "Saved '%v' records to '%s' (net profit %s%.2f)", len(tripLog), *outputFlag, "R$ ", summary.TotalProfit)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"fleet-command/src/pkg/config"
	"fleet-command/src/pkg/email"
	"fleet-command/src/pkg/fleet"
	"fleet-command/src/pkg/sheet"
	"fleet-command/src/pkg/trips"
	"fleet-command/src/pkg/util"
)

/*
reportOptions controls which trips are included and where output goes.
*/
type reportOptions struct {
	FeedURL    string     `json:"feed_url"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	Timezone   string     `json:"timezone"`
	HTMLPath   string     `json:"html_path"`
	PDFPath    string     `json:"pdf_path"`
	Title      string     `json:"title"`
	SendEmails bool       `json:"send_emails"`
	Provider   string     `json:"provider"`
	Sender     string     `json:"sender"`
	Recipients string     `json:"recipients"`
	S3Bucket   string     `json:"s3_bucket"`
	S3Prefix   string     `json:"s3_prefix"`
}

/*
monthlyFleetReport is the computed summary the renderers consume.
*/
type monthlyFleetReport struct {
	Title       string                     `json:"title"`
	Year        int                        `json:"year"`
	Month       time.Month                 `json:"month"`
	Timezone    string                     `json:"timezone"`
	PeriodStart time.Time                  `json:"period_start"`
	PeriodEnd   time.Time                  `json:"period_end"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Summary     fleet.Summary              `json:"summary"`
	Drivers     []fleet.DriverBreakdown    `json:"drivers"`
	TopDrivers  []fleet.DriverBreakdown    `json:"top_drivers"`
	Plates      []fleet.PlateDistance      `json:"plates"`
	Maintenance []fleet.MaintenanceRecency `json:"maintenance"`
	Notes       []string                   `json:"notes"`
}

/*
main is the CLI entry point.

Example:

	go run ./src/cmd/report -year 2025 -month 12 -o ./tmp/fleet-2025-12.html -pdf ./tmp/fleet-2025-12.pdf
*/
func main() {
	config.CheckIfEnvVarsPresent(
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION", // amazon ses + s3
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", // mailgun
		"SENDGRID_API_KEY", // sendgrid
	)

	options := parseFlags()

	tl.Log(tl.Notice, palette.BlueBold, "Generating fleet report for %04d-%02d from '%s'", options.Year, int(options.Month), options.FeedURL)

	report, reportErr := buildMonthlyFleetReport(options)
	if reportErr != nil {
		reportErr.QuitIf(xerr.ErrorTypeError)
	}

	htmlText := renderHTML(report)
	writeErr := writeOutputFile(options.HTMLPath, []byte(htmlText))
	writeErr.QuitIf(xerr.ErrorTypeError)
	tl.Log(tl.Info1, palette.Green, "Saved HTML report to '%s'", options.HTMLPath)

	var pdfBytes []byte
	if options.PDFPath != "" {
		var pdfErr *xerr.Error
		pdfBytes, pdfErr = renderPDF(report)
		pdfErr.QuitIf(xerr.ErrorTypeError)

		writeErr = writeOutputFile(options.PDFPath, pdfBytes)
		writeErr.QuitIf(xerr.ErrorTypeError)
		tl.Log(tl.Info1, palette.Green, "Saved PDF report to '%s'", options.PDFPath)
	}

	if options.S3Bucket != "" {
		key := fmt.Sprintf("%s/%04d-%02d/%s", options.S3Prefix, options.Year, int(options.Month), filepath.Base(options.HTMLPath))
		uploadErr := uploadReportToS3(options.S3Bucket, key, "text/html; charset=utf-8", []byte(htmlText))
		uploadErr.QuitIf(xerr.ErrorTypeError)
	}

	if options.Recipients != "" {
		recipientAddresses := strings.Split(options.Recipients, ",")

		var attachments []email.Attachment
		if len(pdfBytes) > 0 {
			attachments = append(attachments, email.Attachment{
				Filename:    filepath.Base(options.PDFPath),
				ContentType: "application/pdf",
				Data:        pdfBytes,
			})
		}

		sendErr := email.SendMessage(
			email.Provider(options.Provider), &options.SendEmails,
			options.Sender, recipientAddresses,
			report.Title, renderText(report), htmlText, attachments,
		)
		sendErr.QuitIf(xerr.ErrorTypeError)
	}
}

/*
parseFlags parses CLI flags and returns validated reportOptions.

Defaults:
- current month/year in the configured timezone
- output path: ./tmp/fleet-report-YYYY-MM.html
*/
func parseFlags() reportOptions {
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	feedFlag := flag.String("url", "", "Trip-log CSV feed URL (overrides config)")
	yearFlag := flag.Int("year", 0, "Year to report (default: current year)")
	monthFlag := flag.Int("month", 0, "Month to report 1-12 (default: current month)")
	timezoneFlag := flag.String("tz", "", "IANA timezone (default: report.timezone from config)")
	htmlFlag := flag.String("o", "", "Output HTML path (default: ./tmp/fleet-report-YYYY-MM.html)")
	pdfFlag := flag.String("pdf", "", "Output PDF path (empty: skip PDF rendering)")
	titleFlag := flag.String("title", "", "Report title (default: Belisio Express — Month Year)")
	sendFlag := flag.Bool("send", false, "Actually send emails (default: dry run)")
	providerFlag := flag.String("provider", "mailgun", "Email provider: ses, sendgrid or mailgun")
	senderFlag := flag.String("sender", "", "Sender address for the report email")
	recipientFlag := flag.String("recipient", "", "Comma-separated recipient addresses (empty: no email)")
	s3BucketFlag := flag.String("s3-bucket", "", "S3 bucket for report archiving (overrides config; empty with no config: skip)")

	flag.Parse()
	config.InitializeConfig(*configPath)

	feedURL := *feedFlag
	if feedURL == "" {
		feedURL = config.Cfg.Feeds.TripLogURL
	}
	util.RequiredFlag(&feedURL, "url")
	util.EnsureFlags()

	timezoneName := *timezoneFlag
	if timezoneName == "" {
		timezoneName = config.Cfg.Report.Timezone
	}
	location, locationErr := time.LoadLocation(timezoneName)
	if locationErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Invalid timezone '%s'; falling back to UTC", timezoneName)
		location = time.UTC
		timezoneName = "UTC"
	}

	now := time.Now().In(location)

	yearValue := *yearFlag
	if yearValue == 0 {
		yearValue = now.Year()
	}

	monthValue := util.Clamp(*monthFlag, 0, 12)
	if monthValue == 0 {
		monthValue = int(now.Month())
	}

	htmlPath := *htmlFlag
	if htmlPath == "" {
		htmlPath = fmt.Sprintf("./tmp/fleet-report-%04d-%02d.html", yearValue, monthValue)
	}

	reportTitle := *titleFlag
	if reportTitle == "" {
		reportTitle = fmt.Sprintf("%s — %s %d", config.Cfg.Report.Title, time.Month(monthValue).String(), yearValue)
		if config.Cfg.Report.Title == "" {
			reportTitle = fmt.Sprintf("Belisio Express — %s %d", time.Month(monthValue).String(), yearValue)
		}
	}

	s3Bucket := *s3BucketFlag
	if s3Bucket == "" {
		s3Bucket = config.Cfg.Report.S3Bucket
	}

	return reportOptions{
		FeedURL:    feedURL,
		Year:       yearValue,
		Month:      time.Month(monthValue),
		Timezone:   timezoneName,
		HTMLPath:   htmlPath,
		PDFPath:    *pdfFlag,
		Title:      reportTitle,
		SendEmails: *sendFlag,
		Provider:   *providerFlag,
		Sender:     *senderFlag,
		Recipients: *recipientFlag,
		S3Bucket:   s3Bucket,
		S3Prefix:   config.Cfg.Report.S3Prefix,
	}
}

/*
buildMonthlyFleetReport fetches the feed, normalizes it, filters it down to
the selected month, and computes every aggregate the renderers use.

Trips whose date text does not resolve never match a bounded filter, so
they fall out of a monthly report; the notes call out how many did.
*/
func buildMonthlyFleetReport(options reportOptions) (report monthlyFleetReport, e *xerr.Error) {
	location, locationErr := time.LoadLocation(options.Timezone)
	if locationErr != nil {
		location = time.UTC
	}

	periodStart := time.Date(options.Year, options.Month, 1, 0, 0, 0, 0, time.Local)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	rawRecords, fetchErr := sheet.FetchRecords(options.FeedURL, sheet.DefaultFetchTimeout)
	if fetchErr != nil {
		return report, fetchErr
	}

	tripLog := trips.FromRecords(rawRecords)

	// Yearless tokens like "01 dez" should land inside the report year
	// unless the config pins a different reference year.
	referenceYear := config.Cfg.ReferenceYear
	if referenceYear == 0 {
		referenceYear = options.Year
	}
	resolver := trips.NewResolver(referenceYear)

	spec := fleet.FilterSpec{
		Driver: fleet.SelectAll,
		Plate:  fleet.SelectAll,
		Start:  &periodStart,
		End:    &periodEnd,
	}
	filtered := fleet.Filter(tripLog, spec, resolver)

	unresolvableCount := 0
	for _, trip := range tripLog {
		if _, ok := resolver.Resolve(trip.Date); !ok {
			unresolvableCount += 1
		}
	}

	driverBreakdowns := fleet.GroupByDriver(filtered)

	notes := make([]string, 0)
	notes = append(notes, fmt.Sprintf("Per-trip profit is freight minus diesel, commission and maintenance; %d trips included.", len(filtered)))
	if unresolvableCount > 0 {
		notes = append(notes, fmt.Sprintf("%d rows had an unparseable date and were excluded from the monthly window.", unresolvableCount))
	}
	notes = append(notes, "Maintenance recency is computed over the full trip log, not only this month.")

	report = monthlyFleetReport{
		Title:       options.Title,
		Year:        options.Year,
		Month:       options.Month,
		Timezone:    options.Timezone,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		GeneratedAt: time.Now().In(location),
		Summary:     fleet.Summarize(filtered),
		Drivers:     driverBreakdowns,
		TopDrivers:  fleet.TopDrivers(driverBreakdowns, 3),
		Plates:      fleet.GroupByPlate(filtered),
		Maintenance: fleet.MaintenanceByPlate(tripLog, resolver, time.Now()),
		Notes:       notes,
	}

	tl.Log(tl.Info1, palette.Green, "Included '%v' of '%v' trips for %04d-%02d", len(filtered), len(tripLog), options.Year, int(options.Month))

	return report, e
}

/*
writeOutputFile creates the parent directory if needed and writes the file.
*/
func writeOutputFile(destinationPath string, data []byte) (e *xerr.Error) {
	mkdirErr := os.MkdirAll(filepath.Dir(destinationPath), 0o755)
	if mkdirErr != nil {
		return xerr.NewError(mkdirErr, "create report output directory", filepath.Dir(destinationPath))
	}

	writeErr := os.WriteFile(destinationPath, data, 0o644)
	if writeErr != nil {
		return xerr.NewError(writeErr, "write report file", destinationPath)
	}

	return e
}

package main

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"fleet-command/src/pkg/util"
)

/*
renderHTML converts a monthlyFleetReport into a single email-safe HTML
string using inline CSS only.
*/
func renderHTML(report monthlyFleetReport) string {
	var buffer bytes.Buffer

	monthName := report.Month.String()
	summary := report.Summary

	buffer.WriteString("<!doctype html>")
	buffer.WriteString("<html>")
	buffer.WriteString("<head>")
	buffer.WriteString(`<meta charset="utf-8">`)
	buffer.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buffer.WriteString("</head>")

	bodyStyle := "margin:0;padding:0;background-color:#F3F4F6;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Inter,Arial,sans-serif;color:#111827;"
	buffer.WriteString(`<body style="` + bodyStyle + `">`)

	// Outer wrapper table (email-safe centering).
	buffer.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" border="0" width="100%" style="border-collapse:collapse;background-color:#F3F4F6;">`)
	buffer.WriteString(`<tr>`)
	buffer.WriteString(`<td align="center" style="padding:24px;">`)

	// Main container.
	buffer.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" border="0" width="680" style="border-collapse:separate;background-color:#F3F4F6;width:680px;max-width:680px;">`)
	buffer.WriteString(`<tr><td style="padding:0;">`)

	// Header.
	buffer.WriteString(`<div style="padding:8px 4px 18px 4px;">`)
	buffer.WriteString(`<div style="font-size:24px;font-weight:800;line-height:1.2;color:#111827;">` + html.EscapeString(report.Title) + `</div>`)
	buffer.WriteString(`<div style="margin-top:6px;font-size:13px;line-height:1.5;color:#6B7280;">`)
	buffer.WriteString(`Period: <span style="font-weight:700;color:#111827;">` + html.EscapeString(monthName) + ` ` + strconv.Itoa(report.Year) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Trips: <span style="font-weight:700;color:#111827;">` + strconv.Itoa(summary.TripCount) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Timezone: <span style="font-weight:700;color:#111827;">` + html.EscapeString(report.Timezone) + `</span>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(`</div>`)

	// KPI card.
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:18px 18px 6px 18px;">`)
	buffer.WriteString(`<div style="font-size:12px;letter-spacing:0.10em;text-transform:uppercase;color:#6B7280;">Net profit</div>`)
	buffer.WriteString(`<div style="margin-top:6px;font-size:34px;font-weight:900;line-height:1.1;color:#111827;">` + html.EscapeString(formatBRL(summary.TotalProfit)) + `</div>`)
	buffer.WriteString(`<div style="margin-top:8px;font-size:13px;line-height:1.5;color:#6B7280;">`)
	buffer.WriteString(`Revenue <span style="font-weight:700;color:#111827;">` + html.EscapeString(formatBRL(summary.TotalRevenue)) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Diesel <span style="font-weight:700;color:#111827;">` + html.EscapeString(formatBRL(summary.TotalFuel)) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Maintenance <span style="font-weight:700;color:#111827;">` + html.EscapeString(formatBRL(summary.TotalMaintenance)) + `</span>`)
	buffer.WriteString(` &nbsp;•&nbsp; Margin <span style="font-weight:700;color:` + marginColor(summary.OverallMargin) + `;">` + fmt.Sprintf("%.1f%%", summary.OverallMargin) + `</span>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(`</div>`)

	buffer.WriteString(`<div style="padding:0 18px 18px 18px;">`)
	buffer.WriteString(`<div style="height:1px;background-color:#E5E7EB;width:100%;"></div>`)
	buffer.WriteString(`<div style="margin-top:14px;font-size:14px;font-weight:800;color:#111827;">Driver breakdown</div>`)
	buffer.WriteString(`<div style="margin-top:4px;font-size:12px;line-height:1.5;color:#6B7280;">Share of total profit for the month.</div>`)
	buffer.WriteString(`</div>`)

	// Driver table.
	buffer.WriteString(`<div style="padding:0 18px 18px 18px;">`)
	if summary.TripCount == 0 || len(report.Drivers) == 0 {
		buffer.WriteString(`<div style="padding:14px;border:1px dashed #D1D5DB;border-radius:12px;background-color:#FAFAFA;color:#6B7280;font-size:13px;line-height:1.6;">`)
		buffer.WriteString(`No trips found for this month in the feed.`)
		buffer.WriteString(`</div>`)
	} else {
		buffer.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" border="0" width="100%" style="border-collapse:separate;border-spacing:0 10px;">`)
		for _, driver := range report.Drivers {
			barPercent := profitBarPercent(driver.Profit, summary.TotalProfit)

			buffer.WriteString(`<tr>`)
			buffer.WriteString(`<td style="padding:12px;background-color:#FFFFFF;border:1px solid #E5E7EB;border-radius:12px;">`)

			buffer.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" border="0" width="100%" style="border-collapse:collapse;">`)
			buffer.WriteString(`<tr>`)
			buffer.WriteString(`<td style="vertical-align:top;padding-right:10px;">`)
			buffer.WriteString(`<span style="font-size:14px;font-weight:800;color:#111827;">` + html.EscapeString(driver.Driver) + `</span>`)
			buffer.WriteString(`<div style="margin-top:2px;font-size:12px;color:#6B7280;">` + strconv.Itoa(driver.TripCount) + ` trips &nbsp;•&nbsp; diesel ` + html.EscapeString(formatBRL(driver.Fuel)) + ` &nbsp;•&nbsp; commission ` + html.EscapeString(formatBRL(driver.Commission)) + `</div>`)
			buffer.WriteString(`</td>`)
			buffer.WriteString(`<td align="right" style="vertical-align:top;">`)
			buffer.WriteString(`<div style="font-size:14px;font-weight:900;color:#111827;">` + html.EscapeString(formatBRL(driver.Profit)) + `</div>`)
			buffer.WriteString(`<div style="margin-top:2px;font-size:12px;font-weight:800;color:#6B7280;">` + html.EscapeString(formatBRL(driver.Revenue)) + ` revenue</div>`)
			buffer.WriteString(`</td>`)
			buffer.WriteString(`</tr>`)

			buffer.WriteString(`<tr><td colspan="2" style="padding-top:10px;">`)
			buffer.WriteString(`<div style="width:100%;height:10px;border-radius:999px;background-color:#EEF2FF;overflow:hidden;border:1px solid #E5E7EB;">`)
			buffer.WriteString(`<div style="height:10px;width:` + strconv.Itoa(barPercent) + `%;background-color:#2563EB;border-radius:999px;"></div>`)
			buffer.WriteString(`</div>`)
			buffer.WriteString(`</td></tr>`)

			buffer.WriteString(`</table>`)
			buffer.WriteString(`</td>`)
			buffer.WriteString(`</tr>`)
		}
		buffer.WriteString(`</table>`)
	}
	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())

	// Maintenance card.
	buffer.WriteString(`<div style="padding:18px 0 0 0;">`)
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:16px 18px 16px 18px;">`)
	buffer.WriteString(`<div style="font-size:13px;font-weight:900;color:#111827;">Maintenance recency</div>`)
	if len(report.Maintenance) == 0 {
		buffer.WriteString(`<div style="margin-top:10px;font-size:12px;line-height:1.7;color:#6B7280;">No maintenance events recorded.</div>`)
	} else {
		buffer.WriteString(`<div style="margin-top:10px;font-size:12px;line-height:1.7;color:#6B7280;">`)
		for _, recency := range report.Maintenance {
			daysColor := "#059669"
			if recency.DaysSince > 30 {
				daysColor = "#F43F5E"
			}
			buffer.WriteString(`<span style="font-weight:700;color:#111827;">` + html.EscapeString(strings.ToUpper(recency.Plate)) + `</span>`)
			buffer.WriteString(` — <span style="font-weight:700;color:` + daysColor + `;">` + strconv.Itoa(recency.DaysSince) + ` days</span> since last maintenance<br>`)
		}
		buffer.WriteString(`</div>`)
	}
	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())
	buffer.WriteString(`</div>`)

	// Notes card.
	buffer.WriteString(`<div style="padding:18px 0 18px 0;">`)
	buffer.WriteString(cardOpen())
	buffer.WriteString(`<div style="padding:16px 18px 16px 18px;">`)
	buffer.WriteString(`<div style="font-size:13px;font-weight:900;color:#111827;">Notes</div>`)
	buffer.WriteString(`<div style="margin-top:10px;font-size:12px;line-height:1.7;color:#6B7280;">`)
	for _, note := range report.Notes {
		buffer.WriteString(`• ` + html.EscapeString(note) + `<br>`)
	}
	buffer.WriteString(`</div>`)
	buffer.WriteString(`<div style="margin-top:12px;font-size:11px;color:#9CA3AF;">Generated ` + html.EscapeString(report.GeneratedAt.Format("2006-01-02 15:04:05")) + `</div>`)
	buffer.WriteString(`</div>`)
	buffer.WriteString(cardClose())
	buffer.WriteString(`</div>`)

	// Close main container and wrappers.
	buffer.WriteString(`</td></tr>`)
	buffer.WriteString(`</table>`)
	buffer.WriteString(`</td>`)
	buffer.WriteString(`</tr>`)
	buffer.WriteString(`</table>`)

	buffer.WriteString(`</body>`)
	buffer.WriteString(`</html>`)

	return buffer.String()
}

/*
renderText is the plain-text alternative body for the report email.
*/
func renderText(report monthlyFleetReport) string {
	var builder strings.Builder
	summary := report.Summary

	builder.WriteString(report.Title + "\n\n")
	builder.WriteString(fmt.Sprintf("Trips: %d\n", summary.TripCount))
	builder.WriteString(fmt.Sprintf("Revenue: %s\n", formatBRL(summary.TotalRevenue)))
	builder.WriteString(fmt.Sprintf("Diesel: %s\n", formatBRL(summary.TotalFuel)))
	builder.WriteString(fmt.Sprintf("Commission: %s\n", formatBRL(summary.TotalCommission)))
	builder.WriteString(fmt.Sprintf("Maintenance: %s\n", formatBRL(summary.TotalMaintenance)))
	builder.WriteString(fmt.Sprintf("Net profit: %s (%.1f%% margin)\n\n", formatBRL(summary.TotalProfit), summary.OverallMargin))

	if len(report.TopDrivers) > 0 {
		builder.WriteString("Top drivers by profit:\n")
		for position, driver := range report.TopDrivers {
			builder.WriteString(fmt.Sprintf("%d. %s — %s (%d trips)\n", position+1, driver.Driver, formatBRL(driver.Profit), driver.TripCount))
		}
		builder.WriteString("\n")
	}

	for _, note := range report.Notes {
		builder.WriteString("- " + note + "\n")
	}

	return builder.String()
}

/*
cardOpen returns the opening HTML for a card-like container (email-safe).
*/
func cardOpen() string {
	return `<div style="background-color:#FFFFFF;border:1px solid #E5E7EB;border-radius:16px;box-shadow:0 8px 24px rgba(17,24,39,0.06);overflow:hidden;">`
}

/*
cardClose returns the closing HTML for a card-like container.
*/
func cardClose() string {
	return `</div>`
}

// Margin color thresholds match the dashboard KPI card.
func marginColor(margin float64) string {
	if margin >= 15 {
		return "#059669"
	}
	return "#F43F5E"
}

/*
profitBarPercent sizes a driver's bar relative to total profit, clamped so
a positive share always shows at least a sliver.
*/
func profitBarPercent(driverProfit float64, totalProfit float64) int {
	if totalProfit <= 0 || driverProfit <= 0 {
		return 0
	}

	percent := int(math.Round(driverProfit / totalProfit * 100))
	if percent == 0 {
		percent = 1
	}
	return util.Clamp(percent, 0, 100)
}

/*
formatBRL formats an amount as Brazilian currency with period thousand
separators and a comma decimal.

Example:

	1234.5 -> "R$ 1.234,50"
*/
func formatBRL(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	fraction := cents % 100

	grouped := groupThousands(strconv.FormatInt(whole, 10), ".")
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped, fraction)
}

/*
groupThousands groups digits in a base-10 string using the provided separator.
*/
func groupThousands(raw string, sep string) string {
	if len(raw) <= 3 {
		return raw
	}

	var builder strings.Builder
	firstGroupLen := len(raw) % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}

	builder.WriteString(raw[:firstGroupLen])

	for index := firstGroupLen; index < len(raw); index += 3 {
		builder.WriteString(sep)
		builder.WriteString(raw[index : index+3])
	}

	return builder.String()
}

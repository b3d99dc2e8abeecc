package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/tuumbleweed/xerr"
)

/*
renderPDF renders the printable version of the report: KPI block, driver
table, plate distances, maintenance recency. Core fonts only, so text runs
through the cp1252 translator for the Portuguese names.
*/
func renderPDF(report monthlyFleetReport) (pdfBytes []byte, e *xerr.Error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	summary := report.Summary

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, translate(report.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %d  |  %d trips  |  generated %s", report.Month.String(), report.Year, summary.TripCount, report.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(17, 24, 39)

	// KPI block.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	kpiLines := []string{
		fmt.Sprintf("Revenue: %s", formatBRL(summary.TotalRevenue)),
		fmt.Sprintf("Diesel: %s", formatBRL(summary.TotalFuel)),
		fmt.Sprintf("Commission: %s", formatBRL(summary.TotalCommission)),
		fmt.Sprintf("Maintenance: %s", formatBRL(summary.TotalMaintenance)),
		fmt.Sprintf("Net profit: %s  (margin %.1f%%)", formatBRL(summary.TotalProfit), summary.OverallMargin),
	}
	for _, line := range kpiLines {
		pdf.CellFormat(0, 6, translate(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Driver table.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Drivers", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(238, 242, 255)
	pdf.CellFormat(55, 7, "Driver", "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, "Trips", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Revenue", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Diesel", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Commission", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Profit", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, driver := range report.Drivers {
		pdf.CellFormat(55, 7, translate(driver.Driver), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", driver.TripCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, translate(formatBRL(driver.Revenue)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, translate(formatBRL(driver.Fuel)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, translate(formatBRL(driver.Commission)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, translate(formatBRL(driver.Profit)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Plate distances.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Distance by plate", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, plate := range report.Plates {
		pdf.CellFormat(0, 6, translate(fmt.Sprintf("%s: %.0f km", strings.ToUpper(plate.Plate), plate.DistanceKm)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Maintenance recency.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Maintenance recency", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if len(report.Maintenance) == 0 {
		pdf.CellFormat(0, 6, "No maintenance events recorded.", "", 1, "L", false, 0, "")
	}
	for _, recency := range report.Maintenance {
		pdf.CellFormat(0, 6, translate(fmt.Sprintf("%s: %d days since last maintenance (%s)", strings.ToUpper(recency.Plate), recency.DaysSince, recency.LastDate.Format("2006-01-02"))), "", 1, "L", false, 0, "")
	}

	var buffer bytes.Buffer
	outputErr := pdf.Output(&buffer)
	if outputErr != nil {
		return pdfBytes, xerr.NewError(outputErr, "render PDF report", report.Title)
	}

	return buffer.Bytes(), e
}

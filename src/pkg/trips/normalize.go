// Package trips turns raw spreadsheet rows into canonical trip records and
// resolves the mixed date formats the trip-log sheet contains.
package trips

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"fleet-command/src/pkg/sheet"
)

/*
Trip is one canonical trip-log row.

Text fields keep whatever the sheet held (empty when the column was absent).
Numeric fields go through ParseDecimal exactly once, here, so a malformed or
missing cell is already zero by the time anything computes with it. Axles
zero means "not filled in"; the ANTT lookup treats that as the 3-axle
default. A Trip is never mutated after construction; reloads replace the
whole collection.
*/
type Trip struct {
	Date        string  `json:"data"`
	Driver      string  `json:"motorista"`
	Plate       string  `json:"placa"`
	Origin      string  `json:"origem"`
	Destination string  `json:"destino"`
	Freight     float64 `json:"frete"`
	Diesel      float64 `json:"diesel"`
	Maintenance float64 `json:"manutencao"`
	Commissions float64 `json:"comissoes"`
	DistanceKm  float64 `json:"km"`
	Axles       int     `json:"eixos"`
}

// NFD-decompose, then drop the combining marks. "Manutenção" and
// "MANUTENCAO" end up as the same canonical key.
var diacriticsStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

/*
CanonicalKey maps a free-form column label to its canonical form: trimmed,
lowercased, diacritics stripped. The result is plain lowercase ASCII for
every label the sheets actually use.
*/
func CanonicalKey(label string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))

	stripped, _, transformErr := transform.String(diacriticsStripper, lowered)
	if transformErr != nil {
		return lowered
	}

	return stripped
}

/*
CanonicalizeKeys rewrites a raw record under canonical keys. Values are
carried over untouched. When two source labels collapse to the same
canonical key the later one wins.
*/
func CanonicalizeKeys(raw sheet.RawRecord) map[string]string {
	canonical := make(map[string]string, len(raw))
	for label, value := range raw {
		canonical[CanonicalKey(label)] = value
	}
	return canonical
}

/*
FromRecord builds a Trip from one raw row.

Returns ok=false for rows that have neither a date nor a driver name, which
the sheet's trailing filler rows and section separators all lack; those rows
are dropped before they ever reach the metrics engine.
*/
func FromRecord(raw sheet.RawRecord) (trip Trip, ok bool) {
	fields := CanonicalizeKeys(raw)

	dateText := strings.TrimSpace(fields["data"])
	driverName := strings.TrimSpace(fields["motorista"])
	if dateText == "" && driverName == "" {
		return trip, false
	}

	trip = Trip{
		Date:        dateText,
		Driver:      driverName,
		Plate:       strings.TrimSpace(fields["placa"]),
		Origin:      strings.TrimSpace(fields["origem"]),
		Destination: strings.TrimSpace(fields["destino"]),
		Freight:     ParseDecimal(fields["frete"]),
		Diesel:      ParseDecimal(fields["diesel"]),
		Maintenance: ParseDecimal(fields["manutencao"]),
		Commissions: ParseDecimal(fields["comissoes"]),
		DistanceKm:  ParseDecimal(fields["km"]),
		Axles:       ParseAxles(fields["eixos"]),
	}

	return trip, true
}

/*
FromRecords converts a whole raw feed into trip records, dropping the rows
FromRecord rejects.
*/
func FromRecords(records []sheet.RawRecord) []Trip {
	result := make([]Trip, 0, len(records))
	droppedCount := 0

	for _, raw := range records {
		trip, ok := FromRecord(raw)
		if !ok {
			droppedCount += 1
			continue
		}
		result = append(result, trip)
	}

	if droppedCount > 0 {
		tl.Log(tl.Info1, palette.Cyan, "Dropped '%v' rows with neither date nor driver", droppedCount)
	}

	return result
}

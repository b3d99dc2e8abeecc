package trips

import (
	"strconv"
	"strings"
	"time"
)

/*
Resolver converts the date text found in trip rows into comparable calendar
values.

The trip-log sheet mixes three shapes: ISO "2025-12-01" from date-picker
inputs, slash dates "01/12/2025" (or "01/12" with the year left off), and
abbreviated Portuguese forms like "01 dez". Yearless shapes borrow
ReferenceYear. Anything else resolves to "unparseable": the resolver never
returns an error, and callers treat an unparseable date as one that can
never satisfy a bounded date filter.
*/
type Resolver struct {
	ReferenceYear int `json:"reference_year"`
}

/*
NewResolver builds a Resolver. A referenceYear of zero means "the current
year", which is what the dashboard wants outside of replaying old sheets.
*/
func NewResolver(referenceYear int) Resolver {
	if referenceYear == 0 {
		referenceYear = time.Now().Year()
	}
	return Resolver{ReferenceYear: referenceYear}
}

// Three-letter Portuguese month abbreviations as the sheet types them.
var monthAbbreviations = map[string]time.Month{
	"jan": time.January, "fev": time.February, "mar": time.March,
	"abr": time.April, "mai": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "set": time.September,
	"out": time.October, "nov": time.November, "dez": time.December,
}

/*
Resolve parses one date token. Shapes are tried in order and the first match
wins:

 1. "YYYY-MM-DD": hyphen-separated with a first segment of exactly 4 digits.
 2. "DD/MM/YYYY" or "DD/MM": slash-separated, day first, year defaulting
    to ReferenceYear when the third segment is absent.
 3. "DD mes": day then a 3-letter Portuguese month abbreviation, combined
    with ReferenceYear.

The result is midnight local time. ok=false means unparseable: empty input,
an unrecognized shape, a non-numeric segment, or a day/month combination
that is not a real calendar date.
*/
func (resolver Resolver) Resolve(raw string) (resolved time.Time, ok bool) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return resolved, false
	}

	if strings.Contains(token, "-") {
		segments := strings.Split(token, "-")
		if len(segments[0]) == 4 {
			if len(segments) != 3 {
				return resolved, false
			}
			year, yearOk := parseDateSegment(segments[0])
			month, monthOk := parseDateSegment(segments[1])
			day, dayOk := parseDateSegment(segments[2])
			if !yearOk || !monthOk || !dayOk {
				return resolved, false
			}
			return makeDate(year, month, day)
		}
	}

	if strings.Contains(token, "/") {
		segments := strings.Split(token, "/")
		if len(segments) < 2 {
			return resolved, false
		}
		day, dayOk := parseDateSegment(segments[0])
		month, monthOk := parseDateSegment(segments[1])
		if !dayOk || !monthOk {
			return resolved, false
		}
		year := resolver.ReferenceYear
		if len(segments) >= 3 && strings.TrimSpace(segments[2]) != "" {
			parsedYear, yearOk := parseDateSegment(segments[2])
			if !yearOk {
				return resolved, false
			}
			year = parsedYear
		}
		return makeDate(year, month, day)
	}

	fields := strings.Fields(token)
	if len(fields) >= 2 {
		day, dayOk := parseDateSegment(fields[0])
		if !dayOk {
			return resolved, false
		}
		monthToken := fields[1]
		if len(monthToken) > 3 {
			monthToken = monthToken[:3]
		}
		month, monthKnown := monthAbbreviations[monthToken]
		if !monthKnown {
			return resolved, false
		}
		return makeDate(resolver.ReferenceYear, int(month), day)
	}

	return resolved, false
}

func parseDateSegment(segment string) (value int, ok bool) {
	parsed, parseErr := strconv.Atoi(strings.TrimSpace(segment))
	if parseErr != nil {
		return 0, false
	}
	return parsed, true
}

/*
makeDate builds midnight local time and rejects values that would roll over
(month 13, February 30th and the like) instead of silently normalizing them.
*/
func makeDate(year int, month int, day int) (resolved time.Time, ok bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return resolved, false
	}

	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if candidate.Year() != year || candidate.Month() != time.Month(month) || candidate.Day() != day {
		return resolved, false
	}

	return candidate, true
}

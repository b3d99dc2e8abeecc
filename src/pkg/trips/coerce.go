package trips

import (
	"strconv"
	"strings"
)

/*
ParseDecimal is the single numeric-coercion rule of the whole pipeline:
parse the cell as a decimal number, default to 0 on anything that fails.

The sheets mix machine-filled cells ("1250.50") with hand-typed Brazilian
ones ("1.250,50", "1250,50"), so a comma is treated as the decimal separator
when it appears after any period. Currency symbols and stray whitespace are
ignored. Nothing here ever returns an error; a cell that can't be read as a
number is worth exactly zero to every aggregate.
*/
func ParseDecimal(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "R$")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	if value, parseErr := strconv.ParseFloat(cleaned, 64); parseErr == nil {
		return value
	}

	// Brazilian format: period groups thousands, comma marks decimals.
	if strings.Contains(cleaned, ",") {
		recombined := strings.ReplaceAll(cleaned, ".", "")
		recombined = strings.ReplaceAll(recombined, ",", ".")
		if value, parseErr := strconv.ParseFloat(recombined, 64); parseErr == nil {
			return value
		}
	}

	return 0
}

/*
ParseAxles reads the axle-count cell as a small integer, 0 when missing or
unreadable. The ANTT lookup maps 0 to the 3-axle default.
*/
func ParseAxles(raw string) int {
	value := ParseDecimal(raw)
	if value <= 0 {
		return 0
	}
	return int(value)
}

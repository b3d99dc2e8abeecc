// Package fixedcosts reads the secondary fixed-costs sheet: one row per
// recurring obligation with a category, description, amount, and due day.
package fixedcosts

import (
	"strings"

	"fleet-command/src/pkg/sheet"
	"fleet-command/src/pkg/trips"
)

/*
FixedCost is one row of the fixed-costs sheet. Missing text cells get the
placeholders the dashboard table shows; the amount goes through the same
decimal coercion as every trip field.
*/
type FixedCost struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDay      string  `json:"due_day"`
}

/*
FromRecords converts raw fixed-costs rows under canonical keys. Unlike the
trip log there is no retention rule here: every non-empty row renders.
*/
func FromRecords(records []sheet.RawRecord) []FixedCost {
	costs := make([]FixedCost, 0, len(records))

	for _, raw := range records {
		fields := trips.CanonicalizeKeys(raw)

		category := strings.TrimSpace(fields["categoria"])
		if category == "" {
			category = "N/A"
		}
		description := strings.TrimSpace(fields["descricao"])
		if description == "" {
			description = "-"
		}
		dueDay := strings.TrimSpace(fields["vencimento"])
		if dueDay == "" {
			dueDay = "-"
		}

		costs = append(costs, FixedCost{
			Category:    category,
			Description: description,
			Amount:      trips.ParseDecimal(fields["valor"]),
			DueDay:      dueDay,
		})
	}

	return costs
}

// Total sums the amounts of all fixed costs.
func Total(costs []FixedCost) float64 {
	total := 0.0
	for _, cost := range costs {
		total += cost.Amount
	}
	return total
}

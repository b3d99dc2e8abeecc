package fixedcosts

import (
	"testing"

	"fleet-command/src/pkg/sheet"
)

func TestFromRecordsCanonicalizesAndCoerces(t *testing.T) {
	records := []sheet.RawRecord{
		{"CATEGORIA": "Seguro", "Descrição": "Frota completa", "Valor": "R$ 2.500,00", "Vencimento": "10"},
	}

	costs := FromRecords(records)
	if len(costs) != 1 {
		t.Fatalf("expected 1 cost, got %d", len(costs))
	}
	cost := costs[0]
	if cost.Category != "Seguro" || cost.Description != "Frota completa" || cost.DueDay != "10" {
		t.Fatalf("unexpected cost: %+v", cost)
	}
	if cost.Amount != 2500 {
		t.Fatalf("expected amount 2500, got %v", cost.Amount)
	}
}

func TestFromRecordsPlaceholders(t *testing.T) {
	records := []sheet.RawRecord{
		{"categoria": "  ", "valor": "abc"},
	}

	costs := FromRecords(records)
	cost := costs[0]
	if cost.Category != "N/A" {
		t.Fatalf("expected category placeholder N/A, got %q", cost.Category)
	}
	if cost.Description != "-" || cost.DueDay != "-" {
		t.Fatalf("expected dash placeholders, got %+v", cost)
	}
	if cost.Amount != 0 {
		t.Fatalf("expected unparseable amount to default to 0, got %v", cost.Amount)
	}
}

func TestTotal(t *testing.T) {
	costs := []FixedCost{{Amount: 100.50}, {Amount: 200}, {Amount: 0}}
	if got := Total(costs); got != 300.50 {
		t.Fatalf("expected total 300.50, got %v", got)
	}
}

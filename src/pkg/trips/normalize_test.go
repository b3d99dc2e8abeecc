package trips

import (
	"testing"

	"fleet-command/src/pkg/sheet"
)

func TestCanonicalKey(t *testing.T) {
	cases := map[string]string{
		"DESCRIÇÃO":   "descricao",
		" Motorista ": "motorista",
		"Manutenção":  "manutencao",
		"PLACA":       "placa",
		"Comissões":   "comissoes",
		"km":          "km",
		"  FRETE  ":   "frete",
	}

	for input, want := range cases {
		got := CanonicalKey(input)
		if got != want {
			t.Fatalf("CanonicalKey(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCanonicalizeKeysCollapsesAccentVariants(t *testing.T) {
	raw := sheet.RawRecord{"Manutenção": "150"}
	fields := CanonicalizeKeys(raw)
	if fields["manutencao"] != "150" {
		t.Fatalf("expected manutencao=150, got %q", fields["manutencao"])
	}
}

func TestFromRecordMapsFields(t *testing.T) {
	raw := sheet.RawRecord{
		"DATA":       "01/12/2025",
		"MOTORISTA":  "Carlos",
		"Placa":      "abc1d23",
		"ORIGEM":     "Cuiabá",
		"DESTINO":    "Rondonópolis",
		"FRETE":      "1000",
		"DIESEL":     "200",
		"Manutenção": "50",
		"Comissões":  "30",
		"KM":         "450",
		"EIXOS":      "5",
	}

	trip, ok := FromRecord(raw)
	if !ok {
		t.Fatalf("expected record to be retained")
	}
	if trip.Driver != "Carlos" || trip.Plate != "abc1d23" {
		t.Fatalf("unexpected driver/plate: %q / %q", trip.Driver, trip.Plate)
	}
	if trip.Freight != 1000 || trip.Diesel != 200 || trip.Maintenance != 50 || trip.Commissions != 30 {
		t.Fatalf("unexpected money fields: %+v", trip)
	}
	if trip.DistanceKm != 450 || trip.Axles != 5 {
		t.Fatalf("unexpected distance/axles: %+v", trip)
	}
}

func TestFromRecordDropsRowsWithoutDateOrDriver(t *testing.T) {
	_, ok := FromRecord(sheet.RawRecord{"FRETE": "1000", "PLACA": "XYZ"})
	if ok {
		t.Fatalf("expected row with neither date nor driver to be dropped")
	}

	_, ok = FromRecord(sheet.RawRecord{"DATA": "  ", "MOTORISTA": ""})
	if ok {
		t.Fatalf("expected row with blank date and driver to be dropped")
	}

	if _, ok = FromRecord(sheet.RawRecord{"DATA": "01/12"}); !ok {
		t.Fatalf("expected row with only a date to be retained")
	}
	if _, ok = FromRecord(sheet.RawRecord{"MOTORISTA": "Ana"}); !ok {
		t.Fatalf("expected row with only a driver to be retained")
	}
}

func TestFromRecordsFiltersAndKeepsOrder(t *testing.T) {
	records := []sheet.RawRecord{
		{"MOTORISTA": "Ana"},
		{"FRETE": "10"},
		{"MOTORISTA": "Bruno"},
	}

	tripLog := FromRecords(records)
	if len(tripLog) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(tripLog))
	}
	if tripLog[0].Driver != "Ana" || tripLog[1].Driver != "Bruno" {
		t.Fatalf("expected encounter order preserved, got %+v", tripLog)
	}
}

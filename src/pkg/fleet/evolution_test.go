package fleet

import (
	"testing"

	"fleet-command/src/pkg/trips"
)

func TestEvolutionGroupsByDateLabel(t *testing.T) {
	tripLog := []trips.Trip{
		{Date: "01/08", Freight: 100, Diesel: 20, Maintenance: 5},
		{Date: "01/08", Freight: 50, Diesel: 10},
		{Date: "02/08", Freight: 200, Diesel: 40},
	}

	points := Evolution(tripLog, testResolver())
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].DateLabel != "01/08" || !almostEqual(points[0].Revenue, 150) || !almostEqual(points[0].Costs, 35) {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].DateLabel != "02/08" || !almostEqual(points[1].Revenue, 200) {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestEvolutionOrdersByResolvedDate(t *testing.T) {
	// Mixed formats resolving to the same timeline must interleave correctly.
	tripLog := []trips.Trip{
		{Date: "2025-08-10", Freight: 1},
		{Date: "01/08", Freight: 1},
		{Date: "05 ago", Freight: 1},
	}

	points := Evolution(tripLog, testResolver())
	wantOrder := []string{"01/08", "05 ago", "2025-08-10"}
	for index, want := range wantOrder {
		if points[index].DateLabel != want {
			t.Fatalf("expected %q at position %d, got %+v", want, index, points)
		}
	}
}

func TestEvolutionUnresolvedLabelsSortFirst(t *testing.T) {
	tripLog := []trips.Trip{
		{Date: "2025-08-10", Freight: 1},
		{Date: "sem data", Freight: 1},
		{Date: "", Freight: 1},
	}

	points := Evolution(tripLog, testResolver())
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].DateLabel != "sem data" || points[1].DateLabel != "00/00" {
		t.Fatalf("expected unresolved labels ahead of dated ones in encounter order, got %+v", points)
	}
	if points[2].DateLabel != "2025-08-10" {
		t.Fatalf("expected the dated point last, got %+v", points)
	}
}

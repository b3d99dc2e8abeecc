package fleet

import (
	"testing"
	"time"

	"fleet-command/src/pkg/trips"
)

func testResolver() trips.Resolver {
	return trips.Resolver{ReferenceYear: 2025}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	value := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &value
}

func TestFilterBySelectors(t *testing.T) {
	tripLog := []trips.Trip{
		{Date: "01/12/2025", Driver: "Ana", Plate: "AAA1111"},
		{Date: "02/12/2025", Driver: "Bruno", Plate: "BBB2222"},
	}

	filtered := Filter(tripLog, FilterSpec{Driver: "Ana", Plate: SelectAll}, testResolver())
	if len(filtered) != 1 || filtered[0].Driver != "Ana" {
		t.Fatalf("expected only Ana's trip, got %+v", filtered)
	}

	filtered = Filter(tripLog, FilterSpec{Driver: SelectAll, Plate: "BBB2222"}, testResolver())
	if len(filtered) != 1 || filtered[0].Plate != "BBB2222" {
		t.Fatalf("expected only plate BBB2222, got %+v", filtered)
	}

	// Driver comparison is case-sensitive.
	filtered = Filter(tripLog, FilterSpec{Driver: "ana", Plate: SelectAll}, testResolver())
	if len(filtered) != 0 {
		t.Fatalf("expected case-sensitive match to exclude 'ana', got %+v", filtered)
	}
}

func TestFilterDateBoundsAreInclusive(t *testing.T) {
	tripLog := []trips.Trip{
		{Date: "01/12/2025", Driver: "Ana"},
		{Date: "10/12/2025", Driver: "Ana"},
		{Date: "20/12/2025", Driver: "Ana"},
	}

	spec := FilterSpec{
		Driver: SelectAll,
		Plate:  SelectAll,
		Start:  datePtr(2025, time.December, 1),
		End:    datePtr(2025, time.December, 10),
	}

	filtered := Filter(tripLog, spec, testResolver())
	if len(filtered) != 2 {
		t.Fatalf("expected boundary dates to pass, got %d trips", len(filtered))
	}
}

func TestFilterExcludesUnparseableDatesOnlyWhenBounded(t *testing.T) {
	tripLog := []trips.Trip{
		{Date: "not a date", Driver: "Ana"},
		{Date: "05/12/2025", Driver: "Ana"},
	}

	// No bounds set: the unparseable date passes.
	unbounded := Filter(tripLog, FilterSpec{Driver: SelectAll, Plate: SelectAll}, testResolver())
	if len(unbounded) != 2 {
		t.Fatalf("expected both trips without bounds, got %d", len(unbounded))
	}

	// Either bound set: the unparseable date is excluded.
	bounded := Filter(tripLog, FilterSpec{
		Driver: SelectAll,
		Plate:  SelectAll,
		Start:  datePtr(2025, time.January, 1),
	}, testResolver())
	if len(bounded) != 1 || bounded[0].Date != "05/12/2025" {
		t.Fatalf("expected only the dated trip under a bound, got %+v", bounded)
	}

	endOnly := Filter(tripLog, FilterSpec{
		Driver: SelectAll,
		Plate:  SelectAll,
		End:    datePtr(2025, time.December, 31),
	}, testResolver())
	if len(endOnly) != 1 {
		t.Fatalf("expected end-only bound to exclude the unparseable date, got %d", len(endOnly))
	}
}

func TestFilterEmptySelectorsBehaveAsAll(t *testing.T) {
	tripLog := []trips.Trip{{Date: "01/12/2025", Driver: "Ana"}}

	filtered := Filter(tripLog, FilterSpec{}, testResolver())
	if len(filtered) != 1 {
		t.Fatalf("expected empty selectors to match everything, got %d", len(filtered))
	}
}

package fleet

import (
	"testing"
	"time"

	"fleet-command/src/pkg/trips"
)

func TestMaintenanceByPlateKeepsMostRecent(t *testing.T) {
	tripLog := []trips.Trip{
		{Plate: "ABC1234", Date: "2025-06-01", Maintenance: 300},
		{Plate: "ABC1234", Date: "2025-08-10", Maintenance: 150},
		{Plate: "ABC1234", Date: "2025-07-20", Maintenance: 500},
	}
	today := time.Date(2025, time.August, 15, 12, 0, 0, 0, time.Local)

	recencies := MaintenanceByPlate(tripLog, testResolver(), today)
	if len(recencies) != 1 {
		t.Fatalf("expected 1 plate, got %d", len(recencies))
	}
	want := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.Local)
	if !recencies[0].LastDate.Equal(want) {
		t.Fatalf("expected most recent date %v, got %v", want, recencies[0].LastDate)
	}
	if recencies[0].DaysSince != 5 {
		t.Fatalf("expected 5 whole days since, got %d", recencies[0].DaysSince)
	}
}

func TestMaintenanceByPlateUsesFullSet(t *testing.T) {
	// The recency list scans every row, so filtering the dashboard to one
	// driver must not change what it reports for another driver's plate.
	tripLog := []trips.Trip{
		{Driver: "Ana", Plate: "AAA0001", Date: "2025-08-01", Maintenance: 100},
		{Driver: "Bruno", Plate: "BBB0002", Date: "2025-08-05", Maintenance: 200},
	}
	today := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.Local)

	filtered := Filter(tripLog, FilterSpec{Driver: "Ana"}, testResolver())
	if len(filtered) != 1 {
		t.Fatalf("expected filter to narrow to 1 trip, got %d", len(filtered))
	}

	recencies := MaintenanceByPlate(tripLog, testResolver(), today)
	if len(recencies) != 2 {
		t.Fatalf("expected both plates despite the active filter, got %+v", recencies)
	}
}

func TestMaintenanceByPlateSkipsNonQualifyingRows(t *testing.T) {
	tripLog := []trips.Trip{
		{Plate: "AAA0001", Date: "2025-08-01", Maintenance: 0},
		{Plate: "BBB0002", Date: "not a date", Maintenance: 100},
		{Plate: "CCC0003", Date: "2025-08-02", Maintenance: 50},
	}
	today := time.Date(2025, time.August, 10, 0, 0, 0, 0, time.Local)

	recencies := MaintenanceByPlate(tripLog, testResolver(), today)
	if len(recencies) != 1 {
		t.Fatalf("expected only the qualifying plate, got %+v", recencies)
	}
	if recencies[0].Plate != "CCC0003" {
		t.Fatalf("expected CCC0003, got %q", recencies[0].Plate)
	}
}

func TestMaintenanceByPlateDaysSinceFloors(t *testing.T) {
	tripLog := []trips.Trip{
		{Plate: "AAA0001", Date: "2025-08-09", Maintenance: 100},
	}
	// 23 hours after midnight of the event day is still zero whole days.
	today := time.Date(2025, time.August, 9, 23, 0, 0, 0, time.Local)

	recencies := MaintenanceByPlate(tripLog, testResolver(), today)
	if recencies[0].DaysSince != 0 {
		t.Fatalf("expected 0 days since, got %d", recencies[0].DaysSince)
	}
}

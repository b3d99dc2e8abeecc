package dashboard

import (
	"sort"
	"time"

	"fleet-command/src/pkg/fixedcosts"
	"fleet-command/src/pkg/fleet"
)

// The rankings card shows the three most profitable drivers.
const topDriverLimit = 3

/*
View is everything one filter application produces, as plain data for the
rendering layer: the filtered records with their derived financials, the
KPI summary, both breakdowns, the profit ranking, and the chart series.
It is recomputed in full on every request and never cached.
*/
type View struct {
	Filter     fleet.FilterSpec        `json:"filter"`
	Records    []fleet.TripFinancials  `json:"records"`
	Summary    fleet.Summary           `json:"summary"`
	Drivers    []fleet.DriverBreakdown `json:"drivers"`
	Plates     []fleet.PlateDistance   `json:"plates"`
	TopDrivers []fleet.DriverBreakdown `json:"top_drivers"`
	Evolution  []fleet.EvolutionPoint  `json:"evolution"`
}

/*
BuildView applies the filter spec and derives every aggregate from the
filtered subset.
*/
func (d *Dashboard) BuildView(spec fleet.FilterSpec) View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	filtered := fleet.Filter(d.tripLog, spec, d.resolver)
	driverBreakdowns := fleet.GroupByDriver(filtered)

	return View{
		Filter:     spec,
		Records:    fleet.FinancialsForAll(filtered),
		Summary:    fleet.Summarize(filtered),
		Drivers:    driverBreakdowns,
		Plates:     fleet.GroupByPlate(filtered),
		TopDrivers: fleet.TopDrivers(driverBreakdowns, topDriverLimit),
		Evolution:  fleet.Evolution(filtered, d.resolver),
	}
}

/*
FilterOptions returns the distinct non-empty driver names and plates of the
full collection, sorted, for populating the selector controls.
*/
func (d *Dashboard) FilterOptions() (drivers []string, plates []string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	driverSet := make(map[string]bool)
	plateSet := make(map[string]bool)
	for _, trip := range d.tripLog {
		if trip.Driver != "" {
			driverSet[trip.Driver] = true
		}
		if trip.Plate != "" {
			plateSet[trip.Plate] = true
		}
	}

	drivers = make([]string, 0, len(driverSet))
	for driver := range driverSet {
		drivers = append(drivers, driver)
	}
	plates = make([]string, 0, len(plateSet))
	for plate := range plateSet {
		plates = append(plates, plate)
	}

	sort.Strings(drivers)
	sort.Strings(plates)

	return drivers, plates
}

/*
MaintenanceList computes maintenance recency over the full unfiltered
collection, whatever filters any client currently has applied.
*/
func (d *Dashboard) MaintenanceList() []fleet.MaintenanceRecency {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return fleet.MaintenanceByPlate(d.tripLog, d.resolver, time.Now())
}

// FixedCosts returns the fixed-cost rows and their grand total.
func (d *Dashboard) FixedCosts() (costs []fixedcosts.FixedCost, total float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.fixedCosts, fixedcosts.Total(d.fixedCosts)
}

/*
Status describes the loaded state for the health endpoint.
*/
type Status struct {
	TripCount      int       `json:"trip_count"`
	FixedCostCount int       `json:"fixed_cost_count"`
	LoadedAt       time.Time `json:"loaded_at"`
	HealthStatus   string    `json:"health_status"`
}

func (d *Dashboard) CurrentStatus() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Status{
		TripCount:      len(d.tripLog),
		FixedCostCount: len(d.fixedCosts),
		LoadedAt:       d.loadedAt,
		HealthStatus:   fleet.Summarize(d.tripLog).HealthStatus,
	}
}

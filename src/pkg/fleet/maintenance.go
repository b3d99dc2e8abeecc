package fleet

import (
	"time"

	"fleet-command/src/pkg/trips"
)

/*
MaintenanceRecency is the most recent maintenance event known for one
plate and how many whole days ago it happened.
*/
type MaintenanceRecency struct {
	Plate     string    `json:"plate"`
	LastDate  time.Time `json:"last_date"`
	DaysSince int       `json:"days_since"`
}

/*
MaintenanceByPlate scans the full trip collection, never the filtered view,
so narrowing the dashboard to one driver cannot change another plate's
recency. It returns, per plate, the most recent resolvable date among rows
with maintenance spend. Rows whose date does not resolve are skipped, and
plates with no qualifying row at all are omitted. DaysSince is the floor of
the elapsed time in days as of today.
*/
func MaintenanceByPlate(all []trips.Trip, resolver trips.Resolver, today time.Time) []MaintenanceRecency {
	indexByPlate := make(map[string]int)
	recencies := make([]MaintenanceRecency, 0)

	for _, trip := range all {
		if trip.Maintenance <= 0 {
			continue
		}

		eventDate, resolvable := resolver.Resolve(trip.Date)
		if !resolvable {
			continue
		}

		position, seen := indexByPlate[trip.Plate]
		if !seen {
			indexByPlate[trip.Plate] = len(recencies)
			recencies = append(recencies, MaintenanceRecency{Plate: trip.Plate, LastDate: eventDate})
			continue
		}

		if eventDate.After(recencies[position].LastDate) {
			recencies[position].LastDate = eventDate
		}
	}

	for index := range recencies {
		recencies[index].DaysSince = int(today.Sub(recencies[index].LastDate).Hours() / 24)
	}

	return recencies
}

package fleet

import (
	"time"

	"fleet-command/src/pkg/trips"
)

// Selector value meaning "no restriction", as the UI dropdowns send it.
const SelectAll = "all"

/*
FilterSpec is the current UI selection: driver and plate selectors ("all"
or an exact value) and optional inclusive date bounds. It is rebuilt from
the controls on every filter application and never stored.
*/
type FilterSpec struct {
	Driver string     `json:"driver"`
	Plate  string     `json:"plate"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
}

/*
Matches reports whether one trip passes the spec.

Driver and plate compare case-sensitively against the record's own fields.
The date predicate is conservative: with no bounds set it always passes,
but once either bound is set a trip whose date text does not resolve is
excluded rather than guessed at.
*/
func (spec FilterSpec) Matches(trip trips.Trip, resolver trips.Resolver) bool {
	if spec.Driver != "" && spec.Driver != SelectAll && trip.Driver != spec.Driver {
		return false
	}
	if spec.Plate != "" && spec.Plate != SelectAll && trip.Plate != spec.Plate {
		return false
	}

	if spec.Start == nil && spec.End == nil {
		return true
	}

	tripDate, resolvable := resolver.Resolve(trip.Date)
	if !resolvable {
		return false
	}
	if spec.Start != nil && tripDate.Before(*spec.Start) {
		return false
	}
	if spec.End != nil && tripDate.After(*spec.End) {
		return false
	}

	return true
}

/*
Filter returns the subset of all trips matching the spec, in their original
order. Re-running it is side-effect free and safe on every control change.
*/
func Filter(all []trips.Trip, spec FilterSpec, resolver trips.Resolver) []trips.Trip {
	filtered := make([]trips.Trip, 0, len(all))
	for _, trip := range all {
		if spec.Matches(trip, resolver) {
			filtered = append(filtered, trip)
		}
	}
	return filtered
}

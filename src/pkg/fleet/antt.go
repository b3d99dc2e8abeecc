// Package fleet is the filter and metrics engine: it applies the dashboard
// filters to the trip collection and derives every aggregate the rendering
// layer consumes.
package fleet

import "fleet-command/src/pkg/trips"

// ANTT minimum freight rates in R$ per km, keyed by axle count. Axle counts
// outside the table fall back to DefaultRatePerKm.
var anttRatePerKm = map[int]float64{
	2: 4.85,
	3: 5.92,
	5: 7.40,
	6: 8.65,
	7: 9.20,
	9: 11.50,
}

const (
	DefaultRatePerKm = 6.00
	DefaultAxleCount = 3
)

/*
RatePerKm returns the ANTT minimum rate for an axle count. A count of zero
or less means the cell was empty, which the table reads as a 3-axle truck.
*/
func RatePerKm(axleCount int) float64 {
	if axleCount <= 0 {
		axleCount = DefaultAxleCount
	}

	rate, listed := anttRatePerKm[axleCount]
	if !listed {
		return DefaultRatePerKm
	}
	return rate
}

/*
MinimumFreight computes the regulatory floor for one trip: distance times
the per-km rate for the truck's axle count. A trip is compliant when the
charged freight is at least this value.
*/
func MinimumFreight(trip trips.Trip) float64 {
	return trip.DistanceKm * RatePerKm(trip.Axles)
}

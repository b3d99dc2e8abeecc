package fleet

import (
	"sort"
	"strings"

	"fleet-command/src/pkg/trips"
)

// Bucket names for rows missing a driver or a plate, as the dashboard
// displays them.
const (
	UnidentifiedDriver = "Não Identificado"
	UnidentifiedPlate  = "S/P"
)

// Fuel spend above this share of revenue flags a trip as critical.
const CriticalFuelRatio = 45.0

// Overall margin thresholds for the fleet health banner.
const (
	HealthExcellent = "excellent"
	HealthStable    = "stable"
	HealthCritical  = "critical"

	excellentMarginFloor = 20.0
	stableMarginFloor    = 12.0
)

/*
TripFinancials is one trip with its derived quantities: profit (freight
minus fuel, commission and maintenance), margin and fuel ratio as percent
of revenue (zero when there is no revenue), the unhealthy-cost-structure
flag, and the ANTT minimum-freight audit.
*/
type TripFinancials struct {
	Trip           trips.Trip `json:"trip"`
	Profit         float64    `json:"profit"`
	Margin         float64    `json:"margin"`
	FuelRatio      float64    `json:"fuel_ratio"`
	IsCritical     bool       `json:"is_critical"`
	MinimumFreight float64    `json:"minimum_freight"`
	ANTTCompliant  bool       `json:"antt_compliant"`
}

/*
Summary holds the KPI totals over a filtered set, the overall margin, and
the health status derived from it.
*/
type Summary struct {
	TripCount        int     `json:"trip_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalFuel        float64 `json:"total_fuel"`
	TotalCommission  float64 `json:"total_commission"`
	TotalMaintenance float64 `json:"total_maintenance"`
	TotalProfit      float64 `json:"total_profit"`
	OverallMargin    float64 `json:"overall_margin"`
	HealthStatus     string  `json:"health_status"`
}

/*
DriverBreakdown aggregates one driver's filtered trips: how many, and the
summed revenue, fuel, commission and profit.
*/
type DriverBreakdown struct {
	Driver     string  `json:"driver"`
	TripCount  int     `json:"trip_count"`
	Revenue    float64 `json:"revenue"`
	Fuel       float64 `json:"fuel"`
	Commission float64 `json:"commission"`
	Profit     float64 `json:"profit"`
}

/*
PlateDistance is the summed distance for one plate (uppercased for display
grouping).
*/
type PlateDistance struct {
	Plate      string  `json:"plate"`
	DistanceKm float64 `json:"distance_km"`
}

/*
Financials derives the per-trip quantities for one trip.
*/
func Financials(trip trips.Trip) TripFinancials {
	profit := trip.Freight - trip.Diesel - trip.Commissions - trip.Maintenance

	margin := 0.0
	fuelRatio := 0.0
	if trip.Freight > 0 {
		margin = profit / trip.Freight * 100
		fuelRatio = trip.Diesel / trip.Freight * 100
	}

	minimum := MinimumFreight(trip)

	return TripFinancials{
		Trip:           trip,
		Profit:         profit,
		Margin:         margin,
		FuelRatio:      fuelRatio,
		IsCritical:     fuelRatio > CriticalFuelRatio || trip.Maintenance > profit,
		MinimumFreight: minimum,
		ANTTCompliant:  trip.Freight >= minimum,
	}
}

/*
FinancialsForAll derives per-trip financials for a whole filtered set,
preserving order.
*/
func FinancialsForAll(filtered []trips.Trip) []TripFinancials {
	result := make([]TripFinancials, 0, len(filtered))
	for _, trip := range filtered {
		result = append(result, Financials(trip))
	}
	return result
}

/*
Summarize computes the KPI totals over a filtered set. The overall margin
divides total profit by total revenue (zero revenue gives zero margin, not
a division error), and the health status comes from the same thresholds the
dashboard banner uses.
*/
func Summarize(filtered []trips.Trip) Summary {
	summary := Summary{TripCount: len(filtered)}

	for _, trip := range filtered {
		summary.TotalRevenue += trip.Freight
		summary.TotalFuel += trip.Diesel
		summary.TotalCommission += trip.Commissions
		summary.TotalMaintenance += trip.Maintenance
		summary.TotalProfit += Financials(trip).Profit
	}

	if summary.TotalRevenue > 0 {
		summary.OverallMargin = summary.TotalProfit / summary.TotalRevenue * 100
	}
	summary.HealthStatus = healthStatus(summary.OverallMargin)

	return summary
}

func healthStatus(overallMargin float64) string {
	switch {
	case overallMargin >= excellentMarginFloor:
		return HealthExcellent
	case overallMargin >= stableMarginFloor:
		return HealthStable
	default:
		return HealthCritical
	}
}

/*
GroupByDriver aggregates the filtered set per driver name, in first-seen
order. Rows without a driver land in the "Não Identificado" bucket.
*/
func GroupByDriver(filtered []trips.Trip) []DriverBreakdown {
	indexByDriver := make(map[string]int)
	breakdowns := make([]DriverBreakdown, 0)

	for _, trip := range filtered {
		driverName := trip.Driver
		if driverName == "" {
			driverName = UnidentifiedDriver
		}

		position, seen := indexByDriver[driverName]
		if !seen {
			position = len(breakdowns)
			indexByDriver[driverName] = position
			breakdowns = append(breakdowns, DriverBreakdown{Driver: driverName})
		}

		breakdowns[position].TripCount += 1
		breakdowns[position].Revenue += trip.Freight
		breakdowns[position].Fuel += trip.Diesel
		breakdowns[position].Commission += trip.Commissions
		breakdowns[position].Profit += Financials(trip).Profit
	}

	return breakdowns
}

/*
GroupByPlate sums distance per plate over the filtered set, grouping under
the uppercased plate and keeping first-seen order. Rows without a plate
land under "S/P".
*/
func GroupByPlate(filtered []trips.Trip) []PlateDistance {
	indexByPlate := make(map[string]int)
	distances := make([]PlateDistance, 0)

	for _, trip := range filtered {
		plate := strings.ToUpper(trip.Plate)
		if plate == "" {
			plate = UnidentifiedPlate
		}

		position, seen := indexByPlate[plate]
		if !seen {
			position = len(distances)
			indexByPlate[plate] = position
			distances = append(distances, PlateDistance{Plate: plate})
		}

		distances[position].DistanceKm += trip.DistanceKm
	}

	return distances
}

/*
TopDrivers ranks driver breakdowns by summed profit, highest first, and
truncates to limit. The sort is stable so drivers with equal profit keep
their encounter order.
*/
func TopDrivers(breakdowns []DriverBreakdown, limit int) []DriverBreakdown {
	ranked := make([]DriverBreakdown, len(breakdowns))
	copy(ranked, breakdowns)

	sort.SliceStable(ranked, func(firstIndex int, secondIndex int) bool {
		return ranked[firstIndex].Profit > ranked[secondIndex].Profit
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

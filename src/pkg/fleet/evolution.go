package fleet

import (
	"sort"

	"fleet-command/src/pkg/trips"
)

// Label for rows with no date text at all, kept as its own series point.
const undatedLabel = "00/00"

/*
EvolutionPoint is one point of the revenue-versus-costs line series: all
filtered trips sharing the same date text, with their summed freight and
summed diesel plus maintenance.
*/
type EvolutionPoint struct {
	DateLabel string  `json:"date_label"`
	Revenue   float64 `json:"revenue"`
	Costs     float64 `json:"costs"`
}

/*
Evolution groups the filtered set by its raw date text and orders the
groups chronologically by resolved date. Labels that don't resolve sort
ahead of the dated ones, keeping their first-seen order, so garbage never
interleaves with the real timeline.
*/
func Evolution(filtered []trips.Trip, resolver trips.Resolver) []EvolutionPoint {
	indexByLabel := make(map[string]int)
	points := make([]EvolutionPoint, 0)

	for _, trip := range filtered {
		label := trip.Date
		if label == "" {
			label = undatedLabel
		}

		position, seen := indexByLabel[label]
		if !seen {
			position = len(points)
			indexByLabel[label] = position
			points = append(points, EvolutionPoint{DateLabel: label})
		}

		points[position].Revenue += trip.Freight
		points[position].Costs += trip.Diesel + trip.Maintenance
	}

	sort.SliceStable(points, func(firstIndex int, secondIndex int) bool {
		firstDate, firstOk := resolver.Resolve(points[firstIndex].DateLabel)
		secondDate, secondOk := resolver.Resolve(points[secondIndex].DateLabel)
		if firstOk != secondOk {
			return !firstOk // unresolved labels first
		}
		if !firstOk {
			return false // both unresolved: keep encounter order
		}
		return firstDate.Before(secondDate)
	})

	return points
}

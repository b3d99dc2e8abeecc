// Package dashboard owns the in-memory application state and the HTTP
// handlers that hand filtered records and metric summaries to the
// rendering layer.
package dashboard

import (
	"sync"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"fleet-command/src/pkg/fixedcosts"
	"fleet-command/src/pkg/sheet"
	"fleet-command/src/pkg/trips"
)

/*
Dashboard is the single owner of the loaded record set. There is exactly
one writer (Load, which replaces both collections wholesale) and any number
of HTTP readers; the RWMutex keeps a refresh from swapping the data under a
request that is mid-aggregation. The collections are never patched in
place.
*/
type Dashboard struct {
	mu sync.RWMutex

	tripLog    []trips.Trip
	fixedCosts []fixedcosts.FixedCost
	loadedAt   time.Time

	resolver      trips.Resolver
	tripFeedURL   string
	fixedCostsURL string
	fetchTimeout  time.Duration
}

func NewDashboard(resolver trips.Resolver, tripFeedURL string, fixedCostsURL string, fetchTimeout time.Duration) *Dashboard {
	return &Dashboard{
		tripLog:       make([]trips.Trip, 0),
		fixedCosts:    make([]fixedcosts.FixedCost, 0),
		resolver:      resolver,
		tripFeedURL:   tripFeedURL,
		fixedCostsURL: fixedCostsURL,
		fetchTimeout:  fetchTimeout,
	}
}

/*
Load fetches both feeds and replaces the in-memory collections.

Each feed fails independently: a failed fetch leaves that collection as it
was (possibly empty on first load) and the dashboard keeps serving the
previous data. The trip-log failure is the one worth returning since the
whole dashboard renders from it; a fixed-costs failure is only logged.
*/
func (d *Dashboard) Load() (e *xerr.Error) {
	rawTrips, tripFeedErr := sheet.FetchRecords(d.tripFeedURL, d.fetchTimeout)
	if tripFeedErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Trip feed load failed, keeping previous data: %s", tripFeedErr)
		e = tripFeedErr
	} else {
		loaded := trips.FromRecords(rawTrips)

		d.mu.Lock()
		d.tripLog = loaded
		d.loadedAt = time.Now()
		d.mu.Unlock()

		tl.Log(tl.Notice, palette.GreenBold, "Loaded '%v' trip records", len(loaded))
	}

	if d.fixedCostsURL == "" {
		return e
	}

	rawCosts, costsFeedErr := sheet.FetchRecords(d.fixedCostsURL, d.fetchTimeout)
	if costsFeedErr != nil {
		tl.Log(tl.Warning, palette.PurpleBright, "Fixed-costs feed load failed, keeping previous data: %s", costsFeedErr)
		return e
	}

	loadedCosts := fixedcosts.FromRecords(rawCosts)

	d.mu.Lock()
	d.fixedCosts = loadedCosts
	d.mu.Unlock()

	tl.Log(tl.Info1, palette.Green, "Loaded '%v' fixed-cost rows", len(loadedCosts))

	return e
}

// Resolver returns the date resolver the dashboard was built with.
func (d *Dashboard) Resolver() trips.Resolver {
	return d.resolver
}

package dashboard

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	echomw "fleet-command/src/pkg/echo-middleware"
	"fleet-command/src/pkg/fleet"
)

/*
RegisterRoutes mounts the dashboard API under /api/v1.

All read routes are open; POST /refresh gets the bearer-token middleware
only when FLEET_REFRESH_BEARER_TOKEN is configured, since a single-operator
deployment usually runs without it.
*/
func RegisterRoutes(echoServer *echo.Echo, d *Dashboard) {
	api := echoServer.Group("/api/v1")

	api.GET("/trips", d.handleTrips)
	api.GET("/filters", d.handleFilters)
	api.GET("/maintenance", d.handleMaintenance)
	api.GET("/fixed-costs", d.handleFixedCosts)
	api.GET("/health", d.handleHealth)

	if os.Getenv(echomw.EnvRefreshBearerToken) != "" {
		api.POST("/refresh", d.handleRefresh, echomw.RequireBearerToken)
		tl.Log(tl.Info, palette.Cyan, "Refresh endpoint requires %s", "a bearer token")
	} else {
		api.POST("/refresh", d.handleRefresh)
	}
}

/*
parseFilterSpec reads the filter controls from the query string. Selectors
default to "all"; a start/end value the resolver cannot parse behaves like
an unset bound, the same way the date inputs do.
*/
func (d *Dashboard) parseFilterSpec(c echo.Context) fleet.FilterSpec {
	spec := fleet.FilterSpec{
		Driver: c.QueryParam("driver"),
		Plate:  c.QueryParam("plate"),
	}
	if spec.Driver == "" {
		spec.Driver = fleet.SelectAll
	}
	if spec.Plate == "" {
		spec.Plate = fleet.SelectAll
	}

	if start, ok := d.resolver.Resolve(c.QueryParam("start")); ok {
		spec.Start = &start
	}
	if end, ok := d.resolver.Resolve(c.QueryParam("end")); ok {
		spec.End = &end
	}

	return spec
}

func (d *Dashboard) handleTrips(c echo.Context) error {
	spec := d.parseFilterSpec(c)
	return c.JSON(http.StatusOK, d.BuildView(spec))
}

func (d *Dashboard) handleFilters(c echo.Context) error {
	drivers, plates := d.FilterOptions()
	return c.JSON(http.StatusOK, map[string]any{
		"drivers": drivers,
		"plates":  plates,
	})
}

func (d *Dashboard) handleMaintenance(c echo.Context) error {
	return c.JSON(http.StatusOK, d.MaintenanceList())
}

func (d *Dashboard) handleFixedCosts(c echo.Context) error {
	costs, total := d.FixedCosts()
	return c.JSON(http.StatusOK, map[string]any{
		"costs": costs,
		"total": total,
	})
}

func (d *Dashboard) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, d.CurrentStatus())
}

/*
handleRefresh re-fetches both feeds. On failure the previous data stays in
place and the response says so; the dashboard never serves an error page
over a bad fetch.
*/
func (d *Dashboard) handleRefresh(c echo.Context) error {
	loadErr := d.Load()
	if loadErr != nil {
		return c.JSON(http.StatusBadGateway, map[string]any{
			"refreshed": false,
			"error":     loadErr.ErrStr,
			"status":    d.CurrentStatus(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"refreshed": true,
		"status":    d.CurrentStatus(),
	})
}

package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"fleet-command/src/pkg/config"
	"fleet-command/src/pkg/dashboard"
	echomw "fleet-command/src/pkg/echo-middleware"
	"fleet-command/src/pkg/trips"
	"fleet-command/src/pkg/util"
)

/*
main runs the fleet dashboard API server.

It loads both spreadsheet feeds once at startup and then serves the filter
and metrics endpoints from memory; POST /api/v1/refresh re-fetches on
demand. A failed startup fetch is logged and the server comes up empty
rather than refusing to start.
*/
func main() {
	config.CheckIfEnvVarsPresent(echomw.EnvRefreshBearerToken)

	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	tripFeedURL := flag.String("trip-url", "", "Trip-log CSV feed URL (overrides config).")
	fixedCostsURL := flag.String("fixed-costs-url", "", "Fixed-costs CSV feed URL (overrides config).")

	flag.Parse()
	config.InitializeConfig(*configPath)

	feedURL := *tripFeedURL
	if feedURL == "" {
		feedURL = config.Cfg.Feeds.TripLogURL
	}
	costsURL := *fixedCostsURL
	if costsURL == "" {
		costsURL = config.Cfg.Feeds.FixedCostsURL
	}
	util.RequiredFlag(&feedURL, "trip-url")
	util.EnsureFlags()

	resolver := trips.NewResolver(config.Cfg.ReferenceYear)
	fetchTimeout := time.Duration(config.Cfg.Feeds.TimeoutSeconds) * time.Second

	board := dashboard.NewDashboard(resolver, feedURL, costsURL, fetchTimeout)

	tl.Log(tl.Notice, palette.BlueBold, "%s initial feed load from '%s'", "Starting", feedURL)
	if loadErr := board.Load(); loadErr != nil {
		// Dashboard stays empty until a refresh succeeds; that is the
		// degraded mode, not a startup failure.
		tl.Log(tl.Warning, palette.PurpleBold, "Initial load failed, serving empty dashboard: %s", loadErr)
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echomw.UpdateRateLimits(echomw.Cfg.MiddlewareRateLimit, echomw.Cfg.MiddlewareBurst)
	echoServer.Use(echomw.RouteAccessLoggerMiddleware)
	echoServer.Use(echomw.RateLimiterMiddleware)

	dashboard.RegisterRoutes(echoServer, board)

	listenAddress := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(tl.Notice, palette.GreenBold, "Fleet dashboard API listening on '%s'", listenAddress)

	startErr := echoServer.Start(listenAddress)
	if startErr != nil {
		tl.Log(tl.Error, palette.RedBold, "Server stopped: %s", startErr)
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "stargaze-api/docs"
	"stargaze-api/internal/services/skywatch"
	"stargaze-api/pkg/logger"
	"stargaze-api/pkg/observe"
)

type routes struct {
	service *skywatch.SkyService
	metrics *observe.Collector
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	skyService *skywatch.SkyService,
	metrics *observe.Collector,
	l *logger.Logger,
) {
	r := &routes{
		service: skyService,
		metrics: metrics,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	if gatherer := metrics.Gatherer(); gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// API routes
	app.Get("/moon-phase", r.handleMoonPhase)
	app.Get("/sun-times", r.handleSunTimes)
	app.Get("/viewing", r.handleViewingReport)
	app.Post("/viewing/assess", r.handleViewingAssess)
	app.Get("/star-visibility", r.handleStarVisibility)
	app.Get("/constellations", r.handleConstellations)
	app.Get("/constellations/:name", r.handleConstellation)
	app.Get("/iss-passes", r.handleISSPasses)
	app.Get("/apod", r.handlePictureOfTheDay)
}

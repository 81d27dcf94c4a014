package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"stargaze-api/internal/astronomy"
	"stargaze-api/internal/models"
)

const dateLayout = "2006-01-02"

// MoonPhaseResponse represents the moon phase at an instant
type MoonPhaseResponse struct {
	Date    time.Time           `json:"date"`
	Phase   astronomy.MoonPhase `json:"phase" example:"Full Moon"`
	AgeDays float64             `json:"age_days" example:"14.8"`
}

// SunTimesResponse represents sunrise and sunset for a location and day
type SunTimesResponse struct {
	Coordinate models.Coordinate  `json:"coordinate"`
	Date       string             `json:"date" example:"2025-06-21"`
	SunTimes   astronomy.SunTimes `json:"sun_times"`
}

// StarVisibilityResponse represents limiting magnitudes for a light pollution level
type StarVisibilityResponse struct {
	LightPollution float64 `json:"light_pollution" example:"4"`
	astronomy.StarVisibility
}

// GetMoonPhase godoc
// @Summary Get moon phase
// @Description Estimates the moon phase from the mean synodic month
// @Tags Astronomy
// @Produce json
// @Param date query string false "Instant in RFC3339 format, defaults to now" example(2024-01-11T11:57:00Z)
// @Success 200 {object} MoonPhaseResponse
// @Failure 400 {object} ErrorResponse
// @Router /moon-phase [get]
func (r *routes) handleMoonPhase(c *fiber.Ctx) error {
	date := r.service.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return sendBadRequest(c, badRequest("Invalid date format, expected RFC3339"))
		}
		date = parsed
	}

	return c.JSON(MoonPhaseResponse{
		Date:    date,
		Phase:   astronomy.ComputeMoonPhase(date),
		AgeDays: astronomy.MoonAge(date),
	})
}

// GetSunTimes godoc
// @Summary Get sunrise and sunset
// @Description Estimates sunrise and sunset for a day. The approximate model depends only on the day of year; the precise model uses the location and sets polar during polar day or night.
// @Tags Astronomy
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-74.006)
// @Param date query string false "Day in YYYY-MM-DD format, defaults to today (UTC)" example(2025-06-21)
// @Param model query string false "approximate (default) or precise" Enums(approximate, precise)
// @Success 200 {object} SunTimesResponse
// @Failure 400 {object} ErrorResponse
// @Router /sun-times [get]
func (r *routes) handleSunTimes(c *fiber.Ctx) error {
	coord, err := parseCoordinate(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	date := r.service.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		date, err = time.Parse(dateLayout, raw)
		if err != nil {
			return sendBadRequest(c, badRequest("Invalid date format, expected YYYY-MM-DD"))
		}
	}

	var times astronomy.SunTimes
	switch astronomy.SunModel(c.Query("model", string(astronomy.SunModelApproximate))) {
	case astronomy.SunModelApproximate:
		times = astronomy.ComputeSunTimes(coord, date)
	case astronomy.SunModelPrecise:
		times = astronomy.PreciseSunTimes(coord, date)
	default:
		return sendBadRequest(c, badRequest("Model must be approximate or precise"))
	}

	return c.JSON(SunTimesResponse{
		Coordinate: coord,
		Date:       date.Format(dateLayout),
		SunTimes:   times,
	})
}

// GetStarVisibility godoc
// @Summary Get limiting star magnitudes
// @Description Derives naked eye, binocular and telescope limiting magnitudes from a light pollution level
// @Tags Astronomy
// @Produce json
// @Param light_pollution query number true "Light pollution level, every two units cost one magnitude" example(4)
// @Success 200 {object} StarVisibilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /star-visibility [get]
func (r *routes) handleStarVisibility(c *fiber.Ctx) error {
	raw := c.Query("light_pollution")
	if raw == "" {
		return sendBadRequest(c, badRequest("Missing required parameter: light_pollution"))
	}

	level, err := parseFinite(raw)
	if err != nil {
		return sendBadRequest(c, badRequest("Invalid light_pollution format"))
	}

	return c.JSON(StarVisibilityResponse{
		LightPollution: level,
		StarVisibility: astronomy.ComputeStarVisibility(level),
	})
}

// GetConstellations godoc
// @Summary List constellations
// @Description Returns the beginner constellation catalog
// @Tags Astronomy
// @Produce json
// @Success 200 {array} astronomy.Constellation
// @Router /constellations [get]
func (r *routes) handleConstellations(c *fiber.Ctx) error {
	return c.JSON(astronomy.Constellations())
}

// GetConstellation godoc
// @Summary Look up a constellation
// @Description Finds a constellation by name or common name, ignoring case
// @Tags Astronomy
// @Produce json
// @Param name path string true "Constellation name" example(Orion)
// @Success 200 {object} astronomy.Constellation
// @Failure 404 {object} ErrorResponse
// @Router /constellations/{name} [get]
func (r *routes) handleConstellation(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	constellation, ok := astronomy.LookupConstellation(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Constellation not found: " + name,
		})
	}

	return c.JSON(constellation)
}

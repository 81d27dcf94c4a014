package http

import (
	"github.com/gofiber/fiber/v2"

	"stargaze-api/internal/astronomy"
	"stargaze-api/internal/models"
)

// AssessResponse represents a viewing assessment for caller-supplied conditions
type AssessResponse struct {
	Observation models.WeatherObservation `json:"observation"`
	astronomy.ViewingAssessment
	ClearSky bool `json:"clear_sky"`
}

// AssessViewing godoc
// @Summary Assess viewing conditions
// @Description Scores caller-supplied weather measurements for stargazing (0-100) and rates them. Omitted measurements count as zero.
// @Tags Viewing
// @Accept json
// @Produce json
// @Param request body models.WeatherObservation true "Weather measurements"
// @Success 200 {object} AssessResponse
// @Failure 400 {object} ErrorResponse
// @Router /viewing/assess [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/viewing/assess" -H "Content-Type: application/json" \
//	  -d '{"cloud_cover_percent":20,"visibility_meters":10000,"humidity_percent":55,"wind_speed_mps":3.1}'
func (r *routes) handleViewingAssess(c *fiber.Ctx) error {
	var obs models.WeatherObservation
	if err := c.BodyParser(&obs); err != nil {
		return sendBadRequest(c, badRequest("Invalid request body"))
	}

	return c.JSON(AssessResponse{
		Observation:       obs,
		ViewingAssessment: r.service.Assess(obs),
		ClearSky:          astronomy.IsClearSky(obs),
	})
}

// GetViewingReport godoc
// @Summary Get tonight's sky report
// @Description Fetches current conditions from every configured weather provider, scores each one and adds the moon phase and sun times
// @Tags Viewing
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {object} skywatch.SkyReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /viewing [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/viewing?lat=40.7128&lon=-74.006"
func (r *routes) handleViewingReport(c *fiber.Ctx) error {
	coord, err := parseCoordinate(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	report, err := r.service.Report(c.UserContext(), coord)
	if err != nil {
		return r.sendInternalError(c, err, "Failed to fetch weather data", map[string]any{
			"lat": coord.Latitude,
			"lon": coord.Longitude,
		})
	}

	return c.JSON(report)
}

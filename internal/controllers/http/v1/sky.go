package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetISSPasses godoc
// @Summary Get ISS passes
// @Description Lists upcoming International Space Station passes. When the upstream service fails, demo passes are returned with fallback set.
// @Tags Sky
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {object} models.PassList
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /iss-passes [get]
func (r *routes) handleISSPasses(c *fiber.Ctx) error {
	coord, err := parseCoordinate(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	passes, err := r.service.ISSPasses(c.UserContext(), coord)
	if err != nil {
		return r.sendInternalError(c, err, "Failed to fetch ISS passes", map[string]any{
			"lat": coord.Latitude,
			"lon": coord.Longitude,
		})
	}

	return c.JSON(passes)
}

// GetPictureOfTheDay godoc
// @Summary Get NASA's astronomy picture of the day
// @Tags Sky
// @Produce json
// @Param date query string false "Day in YYYY-MM-DD format, defaults to today" example(2025-07-25)
// @Success 200 {object} models.Picture
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apod [get]
func (r *routes) handlePictureOfTheDay(c *fiber.Ctx) error {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return sendBadRequest(c, badRequest("Invalid date format, expected YYYY-MM-DD"))
		}
	}

	picture, err := r.service.PictureOfTheDay(c.UserContext(), date)
	if err != nil {
		return r.sendInternalError(c, err, "Failed to fetch picture of the day", map[string]any{"date": date})
	}

	return c.JSON(picture)
}

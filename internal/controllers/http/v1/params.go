package http

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stargaze-api/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

type badRequest string

func (e badRequest) Error() string { return string(e) }

// parseCoordinate reads and validates the lat and lon query parameters.
func parseCoordinate(c *fiber.Ctx) (models.Coordinate, error) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	if lat == "" {
		return models.Coordinate{}, badRequest("Missing required parameter: lat")
	}
	if lon == "" {
		return models.Coordinate{}, badRequest("Missing required parameter: lon")
	}

	latFloat, err := parseFinite(lat)
	if err != nil {
		return models.Coordinate{}, badRequest("Invalid latitude format")
	}
	if latFloat < -90 || latFloat > 90 {
		return models.Coordinate{}, badRequest("Latitude must be between -90 and 90")
	}

	lonFloat, err := parseFinite(lon)
	if err != nil {
		return models.Coordinate{}, badRequest("Invalid longitude format")
	}
	if lonFloat < -180 || lonFloat > 180 {
		return models.Coordinate{}, badRequest("Longitude must be between -180 and 180")
	}

	return models.Coordinate{Latitude: latFloat, Longitude: lonFloat}, nil
}

// parseFinite rejects NaN and infinities, which ParseFloat accepts.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func sendBadRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
}

func (r *routes) sendInternalError(c *fiber.Ctx, err error, msg string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["path"] = c.Path()
	fields["requestId"] = c.GetRespHeader(fiber.HeaderXRequestID)
	r.l.Error(err, fields)

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msg})
}

package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hko-district-weather/internal/store"
	"hko-district-weather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		snapshot, err := service.GetLatest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather snapshot available yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather snapshot")
		}

		return c.JSON(fiber.Map{
			"snapshot": snapshot,
			"iconUrl":  weather.IconURL(snapshot.WeatherIcon),
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		days, err := service.FetchForecastDays(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "forecast feed unavailable")
		}

		return c.JSON(fiber.Map{
			"days": days,
		})
	})

	v1.Get("/districts", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"districts": service.Districts(),
		})
	})

	v1.Get("/districts/nearest", func(c *fiber.Ctx) error {
		q, err := parseCoordinateQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		region, distanceKm, ok := service.FindNearest(q.Lat, q.Lon)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no districts configured")
		}

		return c.JSON(fiber.Map{
			"district":   region,
			"distanceKm": distanceKm,
		})
	})
}

// coordinateQuery holds query parameters for the nearest-district endpoint.
type coordinateQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func parseCoordinateQuery(c *fiber.Ctx) (coordinateQuery, error) {
	var q coordinateQuery

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return q, errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}

	q.Lat = lat
	q.Lon = lon

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

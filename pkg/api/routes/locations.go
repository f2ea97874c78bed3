package routes

import (
	"strconv"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/conditional"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locations"
	"github.com/gofiber/fiber/v2"
)

// Fleet-wide listings tolerate slight staleness; a single vehicle's
// displayed position must always be revalidated.
const listCacheControl = "max-age=300"
const singleCacheControl = "no-cache"

func LocationsRouter(router fiber.Router, service *locations.Service) {
	router.Get("/", listLocations(service))
	router.Get("/:vehicleId", getLocation(service))
	router.Post("/", createLocation(service))
}

func listLocations(service *locations.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := service.GetFleetLatest(c.Context())
		if err != nil {
			return respondError(c, err)
		}

		if vehicleIDQuery := c.Query("vehicleId"); vehicleIDQuery != "" {
			vehicleID, err := strconv.Atoi(vehicleIDQuery)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Parameter vehicleId should be an integer",
				})
			}

			filtered := []fleet.PositionRecord{}
			for _, entry := range entries {
				if entry.VehicleID == vehicleID {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}

		body, err := renderJSON(entries)
		if err != nil {
			return respondError(c, err)
		}

		var lastModified time.Time
		for _, entry := range entries {
			if entry.RecordedAt.After(lastModified) {
				lastModified = entry.RecordedAt
			}
		}

		validator := conditional.NewValidator(body, lastModified)

		c.Set(fiber.HeaderETag, validator.ETag)
		c.Set(fiber.HeaderLastModified, validator.LastModified)
		c.Set(fiber.HeaderCacheControl, listCacheControl)

		if validator.NotModified(c.Get(fiber.HeaderIfNoneMatch), c.Get(fiber.HeaderIfModifiedSince)) {
			return c.SendStatus(fiber.StatusNotModified)
		}

		c.Type("json")
		return c.Send(body)
	}
}

func getLocation(service *locations.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter vehicleId should be an integer",
			})
		}

		record, err := service.GetLatest(c.Context(), vehicleID)
		if err != nil {
			return respondError(c, err)
		}

		body, err := renderJSON(record)
		if err != nil {
			return respondError(c, err)
		}

		validator := conditional.NewValidator(body, record.RecordedAt)

		c.Set(fiber.HeaderETag, validator.ETag)
		c.Set(fiber.HeaderCacheControl, singleCacheControl)

		if validator.NotModified(c.Get(fiber.HeaderIfNoneMatch), "") {
			return c.SendStatus(fiber.StatusNotModified)
		}

		c.Type("json")
		return c.Send(body)
	}
}

func createLocation(service *locations.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var requestBody struct {
			VehicleID int     `json:"vehicleId"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}

		if err := c.BodyParser(&requestBody); err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		principal, ok := c.Locals("principal").(fleet.Principal)
		if !ok {
			c.SendStatus(fiber.StatusUnauthorized)
			return c.JSON(fiber.Map{
				"error": "No authenticated principal",
			})
		}

		record, err := service.RecordPosition(c.Context(), principal, requestBody.VehicleID, requestBody.Latitude, requestBody.Longitude)
		if err != nil {
			return respondError(c, err)
		}

		body, err := renderJSON(record)
		if err != nil {
			return respondError(c, err)
		}

		c.Status(fiber.StatusCreated)
		c.Type("json")
		return c.Send(body)
	}
}

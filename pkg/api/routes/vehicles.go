package routes

import (
	"strconv"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/registry"
	"github.com/gofiber/fiber/v2"
)

func VehiclesRouter(router fiber.Router, reg registry.Registry) {
	router.Get("/", listVehicles(reg))
	router.Get("/:vehicleId", getVehicle(reg))
}

func listVehicles(reg registry.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicles, err := reg.Vehicles(c.Context())
		if err != nil {
			return respondError(c, err)
		}

		body, err := renderJSON(vehicles)
		if err != nil {
			return respondError(c, err)
		}

		c.Type("json")
		return c.Send(body)
	}
}

func getVehicle(reg registry.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Parameter vehicleId should be an integer",
			})
		}

		vehicle, err := reg.Vehicle(c.Context(), vehicleID)
		if err != nil {
			return respondError(c, err)
		}

		body, err := renderJSON(vehicle)
		if err != nil {
			return respondError(c, err)
		}

		c.Type("json")
		return c.Send(body)
	}
}

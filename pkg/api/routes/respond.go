package routes

import (
	"encoding/json"
	"errors"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
)

// renderJSON reduces a response body to its "basic" marshal group and
// serializes it. The same bytes are sent on the wire and fed to the cache
// validator so the fingerprint always matches the body. Map re-encoding
// keeps field order stable across calls.
func renderJSON(v interface{}) ([]byte, error) {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(reduced)
}

func statusForError(err error) int {
	var forbidden *fleet.ForbiddenError

	switch {
	case errors.Is(err, fleet.ErrInvalidCoordinate):
		return fiber.StatusBadRequest
	case errors.As(err, &forbidden):
		return fiber.StatusForbidden
	case errors.Is(err, fleet.ErrVehicleNotFound), errors.Is(err, fleet.ErrRecordNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	c.SendStatus(statusForError(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

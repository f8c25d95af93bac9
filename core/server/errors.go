package server

import (
	"storage-template/core/storage"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a storage error to the HTTP status reported to clients.
func StatusFor(err error) int {
	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return fiber.StatusNotFound
	case storage.KindBucketNotEmpty:
		return fiber.StatusConflict
	case storage.KindAccessDenied:
		return fiber.StatusForbidden
	case storage.KindInvalidArgument:
		return fiber.StatusBadRequest
	case storage.KindTransport:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// SendError writes err as a JSON body with the matching status.
func SendError(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  storage.KindOf(err),
	})
}

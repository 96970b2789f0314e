package http

import (
	"errors"
	"log"

	"merowoda-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostInformation fans a category broadcast out to every subscribed user.
// The response reports success once all sends have been initiated; delivery
// is best effort and individual failures are only logged.
func (h *Handler) PostInformation(c *fiber.Ctx) error {
	var req struct {
		TypeOf string `json:"typeOf"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	initiated, err := h.broadcasts.Broadcast(c.Context(), req.TypeOf)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("❌ PostInformation failed for %q: %v", req.TypeOf, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "An error occurred"})
	}
	log.Printf("📣 Broadcast %q accepted, %d emails initiated", req.TypeOf, initiated)
	return c.JSON(fiber.Map{"message": "Emails sent successfully"})
}

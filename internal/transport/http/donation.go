package http

import (
	"errors"
	"log"

	"merowoda-service/internal/service"
	"merowoda-service/pkg/models"

	"github.com/gofiber/fiber/v2"
)

// Donate records one donation for the email in the query, creating the user
// when unknown. Responds with a generic acknowledgment; totals are not
// echoed.
func (h *Handler) Donate(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter is required"})
	}
	var req models.DonateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.donations.Donate(c.Context(), email, &req); err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("❌ Donate failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Donation recorded. Thank you!"})
}

// DonationHistory returns the ordered amounts and total for one user.
func (h *Handler) DonationHistory(c *fiber.Ctx) error {
	email := c.Params("email")

	history, err := h.donations.History(c.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, service.ErrDonationListNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No donations found for this user"})
		}
		log.Printf("❌ DonationHistory failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(history)
}

// AllDonations returns the site-wide aggregate, one row per donor. Staff
// only.
func (h *Handler) AllDonations(c *fiber.Ctx) error {
	summaries, err := h.donations.All(c.Context())
	if err != nil {
		log.Printf("❌ AllDonations failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(summaries)
}

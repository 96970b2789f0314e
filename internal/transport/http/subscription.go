package http

import (
	"errors"
	"log"

	"merowoda-service/internal/service"
	"merowoda-service/pkg/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserMessages returns the user matching (email, phone) together with
// their notice preference.
func (h *Handler) GetUserMessages(c *fiber.Ctx) error {
	email, phone := c.Query("email"), c.Query("phone")
	if email == "" || phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and phone query parameters are required"})
	}

	user, news, err := h.subscriptions.Preferences(c.Context(), email, phone)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		log.Printf("❌ GetUserMessages failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"user": user, "news": news})
}

// Subscribe creates a new user and preference record. An existing
// (email, phone) pair is reported with 207 and the caller is directed to
// the edit endpoint.
func (h *Handler) Subscribe(c *fiber.Ctx) error {
	email, phone := c.Query("email"), c.Query("phone")
	if email == "" || phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and phone query parameters are required"})
	}
	var req models.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, news, err := h.subscriptions.Subscribe(c.Context(), email, phone, &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
				"message": "User already subscribed; use the update endpoint to change preferences",
			})
		}
		log.Printf("❌ Subscribe failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "news": news})
}

// EditSubscription overwrites the name fields and all four category flags.
func (h *Handler) EditSubscription(c *fiber.Ctx) error {
	email, phone := c.Query("email"), c.Query("phone")
	if email == "" || phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and phone query parameters are required"})
	}
	var req models.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, news, err := h.subscriptions.Edit(c.Context(), email, phone, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		log.Printf("❌ EditSubscription failed for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"user": user, "news": news})
}

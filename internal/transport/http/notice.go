package http

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"merowoda-service/internal/service"
	"merowoda-service/pkg/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateNotice publishes a new event announcement. Staff only.
func (h *Handler) CreateNotice(c *fiber.Ctx) error {
	var req models.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	notice, err := h.notices.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("❌ CreateNotice failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"notice": notice})
}

// ListNotices returns announcements for the public page, optionally
// filtered by ?type=.
func (h *Handler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.notices.List(c.Context(), c.Query("type"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("❌ ListNotices failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"notices": notices})
}

// DeleteNotice removes an announcement. Staff only.
func (h *Handler) DeleteNotice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notice id"})
	}
	if err := h.notices.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNoticeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notice not found"})
		}
		log.Printf("❌ DeleteNotice failed for %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Notice deleted"})
}

// UploadNoticeAttachment stores a notice image in R2 and returns its public
// URL. Staff only; images only.
func (h *Handler) UploadNoticeAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowedExts := map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	}
	if !allowedExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unsupported image extension: " + ext + " (allowed: .jpg, .png, .gif, .webp)",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ [UPLOAD] Failed to open %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to read uploaded file"})
	}
	defer file.Close()

	log.Printf("[UPLOAD] Uploading %s (%d bytes) to R2", fileHeader.Filename, fileHeader.Size)
	url, err := h.notices.UploadAttachment(c.Context(), file, fileHeader.Filename)
	if err != nil {
		log.Printf("❌ [UPLOAD] %s failed: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed: " + err.Error()})
	}

	log.Printf("[UPLOAD] ✅ Uploaded %s → %s", fileHeader.Filename, url)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

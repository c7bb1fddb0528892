package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rafif143/basket/internal/interfaces"
	"github.com/rafif143/basket/pkg/utils"
)

const ktmFolder = "basket/ktm"

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	uploader interfaces.Uploader
}

func NewUploadHandler(uploader interfaces.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) SetupRoutes(app *fiber.App) {
	app.Post("/api/uploads/ktm", h.UploadKtm)
}

// POST /api/uploads/ktm
// form-data: file=<image>
func (h *UploadHandler) UploadKtm(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "file is required"})
	}

	// validate extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if !allowed[ext] {
		return c.Status(400).JSON(fiber.Map{"error": "only jpg/jpeg/png/webp allowed"})
	}

	// validate size
	const maxSize = 5 * 1024 * 1024 //5MB
	if file.Size > maxSize {
		return c.Status(400).JSON(fiber.Map{"error": "file too large (max 5MB)"})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "cannot open uploaded file"})
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, maxSize)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "file too large (max 5MB)"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	url, err := h.uploader.UploadBytes(ctx, ktmFolder, storagePath(file.Filename), b)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": fmt.Sprintf("upload failed: %v", err)})
	}

	return c.JSON(UploadResponse{URL: url})
}

// storagePath derives a collision-resistant object name: timestamp plus a
// random token, keeping the original extension.
func storagePath(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	token := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), token, ext)
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/services"
)

type PredictHandler struct {
	screener    services.ScreenerService
	maxFileSize int64
}

func NewPredictHandler(screener services.ScreenerService, maxFileSize int64) *PredictHandler {
	return &PredictHandler{
		screener:    screener,
		maxFileSize: maxFileSize,
	}
}

// HandlePredict handles POST /predict: runs the whole resume-to-decision
// pipeline synchronously over the uploaded PDF and returns the prediction.
// Nothing is persisted on this path.
func (h *PredictHandler) HandlePredict(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume PDF file is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files are supported",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer src.Close()

	pdfBytes, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	result, err := h.screener.ScreenResume(c.Context(), pdfBytes)
	if err != nil {
		if errors.Is(err, services.ErrUnreadablePDF) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Error reading PDF: %v", err),
			})
		}
		if errors.Is(err, services.ErrNoTextContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Could not extract sufficient text from PDF",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Error processing resume: %v", err),
		})
	}

	return c.JSON(result)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type ScreenHandler struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	worker        services.Worker
}

func NewScreenHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *ScreenHandler {
	return &ScreenHandler{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		worker:        worker,
	}
}

// HandleScreen handles POST /screenings: queues an uploaded resume for
// asynchronous screening.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	screening := &models.Screening{
		ID:         uuid.New(),
		DocumentID: docID,
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.screeningRepo.Create(screening); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening job",
		})
	}

	h.worker.EnqueueJob(screening.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:     screening.ID.String(),
		Status: string(models.StatusQueued),
	})
}

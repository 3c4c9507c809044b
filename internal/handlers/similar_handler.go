package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type SimilarHandler struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	screener      services.ScreenerService
	vectorIndex   services.VectorIndexService
}

func NewSimilarHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	screener services.ScreenerService,
	vectorIndex services.VectorIndexService,
) *SimilarHandler {
	return &SimilarHandler{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		screener:      screener,
		vectorIndex:   vectorIndex,
	}
}

// HandleFindSimilar handles GET /screenings/:id/similar: returns previously
// screened candidates whose feature vectors are closest to this one. The
// vector is recomputed from the stored resume; extraction and encoding are
// deterministic, so it matches the vector the screening was scored with.
func (h *SimilarHandler) HandleFindSimilar(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	if screening.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Screening has not completed yet",
		})
	}

	doc, err := h.docRepo.FindByID(screening.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	vector, _, err := h.screener.FeatureVectorForDocument(doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to rebuild feature vector: %v", err),
		})
	}

	similar, err := h.vectorIndex.FindSimilar(c.Context(), vector, screeningID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to search similar candidates: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"screening_id": screeningID.String(),
		"similar":      similar,
	})
}

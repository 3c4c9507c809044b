package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewResultHandler(screeningRepo repositories.ScreeningRepository) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetResult handles GET /screenings/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	response := models.ResultResponse{
		ID:     screening.ID.String(),
		Status: string(screening.Status),
	}

	if screening.Status == models.StatusCompleted {
		response.Result = buildResult(screening)
	}

	if screening.Status == models.StatusFailed && screening.ErrorMessage != "" {
		response.ErrorMessage = &screening.ErrorMessage
	}

	return c.JSON(response)
}

func buildResult(screening *models.Screening) *models.PredictionResponse {
	result := &models.PredictionResponse{}

	if screening.CandidateName != nil {
		result.CandidateName = *screening.CandidateName
	}
	if screening.Email != nil {
		result.Email = *screening.Email
	}
	if screening.Phone != nil {
		result.Phone = *screening.Phone
	}
	if screening.Education != nil {
		result.Education = *screening.Education
	}
	if screening.ExperienceYears != nil {
		result.ExperienceYears = *screening.ExperienceYears
	}
	if screening.Skills != nil {
		result.Skills = *screening.Skills
	}
	if screening.IsSuitable != nil {
		result.IsSuitable = *screening.IsSuitable
	}
	if screening.SuitabilityConfidence != nil {
		result.SuitabilityConfidence = *screening.SuitabilityConfidence
	}
	if screening.RecommendedRole != nil {
		result.RecommendedRole = *screening.RecommendedRole
	}
	if screening.RoleConfidence != nil {
		result.RoleConfidence = *screening.RoleConfidence
	}
	if screening.Recommendation != nil {
		result.Recommendation = *screening.Recommendation
	}
	if screening.TopRoles != nil {
		// Stored as a JSON column; a decode failure just leaves the
		// ranking empty rather than failing the read
		json.Unmarshal([]byte(*screening.TopRoles), &result.TopRoles)
	}

	return result
}

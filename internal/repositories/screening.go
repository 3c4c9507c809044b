package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-screener/internal/models"
)

type ScreeningRepository interface {
	Create(screening *models.Screening) error
	FindByID(id uuid.UUID) (*models.Screening, error)
	UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error
	UpdateResult(id uuid.UUID, result *ScreeningUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Screening, error)
}

type ScreeningUpdateData struct {
	CandidateName         *string
	Email                 *string
	Phone                 *string
	Education             *string
	ExperienceYears       *int
	Skills                *string
	IsSuitable            *bool
	SuitabilityConfidence *float64
	RecommendedRole       *string
	RoleConfidence        *float64
	TopRoles              *string
	Recommendation        *string
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) Create(screening *models.Screening) error {
	if err := r.db.Create(screening).Error; err != nil {
		return fmt.Errorf("failed to create screening: %w", err)
	}
	return nil
}

func (r *screeningRepository) FindByID(id uuid.UUID) (*models.Screening, error) {
	var screening models.Screening
	if err := r.db.Where("id = ?", id).First(&screening).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("screening not found")
		}
		return nil, fmt.Errorf("failed to find screening: %w", err)
	}
	return &screening, nil
}

func (r *screeningRepository) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) UpdateResult(id uuid.UUID, data *ScreeningUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.CandidateName != nil {
		updates["candidate_name"] = *data.CandidateName
	}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.Phone != nil {
		updates["phone"] = *data.Phone
	}
	if data.Education != nil {
		updates["education"] = *data.Education
	}
	if data.ExperienceYears != nil {
		updates["experience_years"] = *data.ExperienceYears
	}
	if data.Skills != nil {
		updates["skills"] = *data.Skills
	}
	if data.IsSuitable != nil {
		updates["is_suitable"] = *data.IsSuitable
	}
	if data.SuitabilityConfidence != nil {
		updates["suitability_confidence"] = *data.SuitabilityConfidence
	}
	if data.RecommendedRole != nil {
		updates["recommended_role"] = *data.RecommendedRole
	}
	if data.RoleConfidence != nil {
		updates["role_confidence"] = *data.RoleConfidence
	}
	if data.TopRoles != nil {
		updates["top_roles"] = *data.TopRoles
	}
	if data.Recommendation != nil {
		updates["recommendation"] = *data.Recommendation
	}

	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) FindPendingJobs(limit int) ([]models.Screening, error) {
	var screenings []models.Screening
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&screenings).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending screenings: %w", err)
	}

	return screenings, nil
}

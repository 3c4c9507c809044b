package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

type Screening struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID uuid.UUID       `gorm:"type:uuid;not null" json:"document_id"`
	Status     ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`

	CandidateName   *string `gorm:"type:text" json:"candidate_name,omitempty"`
	Email           *string `gorm:"type:text" json:"email,omitempty"`
	Phone           *string `gorm:"type:text" json:"phone,omitempty"`
	Education       *string `gorm:"type:text" json:"education,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Skills          *string `gorm:"type:text" json:"skills,omitempty"`

	IsSuitable            *bool    `json:"is_suitable,omitempty"`
	SuitabilityConfidence *float64 `gorm:"type:decimal(5,2)" json:"suitability_confidence,omitempty"`
	RecommendedRole       *string  `gorm:"type:text" json:"recommended_role,omitempty"`
	RoleConfidence        *float64 `gorm:"type:decimal(5,2)" json:"role_confidence,omitempty"`
	TopRoles              *string  `gorm:"type:text" json:"top_3_roles,omitempty"`
	Recommendation        *string  `gorm:"type:text" json:"recommendation,omitempty"`

	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}

package models

type RoleMatch struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

type PredictionResponse struct {
	CandidateName         string      `json:"candidate_name"`
	Email                 string      `json:"email"`
	Phone                 string      `json:"phone"`
	Education             string      `json:"education"`
	ExperienceYears       int         `json:"experience_years"`
	Skills                string      `json:"skills"`
	IsSuitable            bool        `json:"is_suitable"`
	SuitabilityConfidence float64     `json:"suitability_confidence"`
	RecommendedRole       string      `json:"recommended_role"`
	RoleConfidence        float64     `json:"role_confidence"`
	TopRoles              []RoleMatch `json:"top_3_roles"`
	Recommendation        string      `json:"recommendation"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}

type ScreenRequest struct {
	DocumentID string `json:"document_id" validate:"required,uuid"`
}

type ScreenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Result       *PredictionResponse `json:"result,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
}

type SimilarCandidate struct {
	ScreeningID     string  `json:"screening_id"`
	CandidateName   string  `json:"candidate_name"`
	RecommendedRole string  `json:"recommended_role"`
	Score           float32 `json:"score"`
}

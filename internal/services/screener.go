package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/artifacts"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

// ErrRoleModelMissing marks a recommended role with no role-specific
// suitability model. This is an artifact consistency bug between the role
// classifier's class set and the deployed role models, not a transient
// condition, so it fails the request.
var ErrRoleModelMissing = errors.New("no suitability model for recommended role")

type ScreenerService interface {
	// ScreenResume runs the whole pipeline synchronously over raw PDF bytes.
	ScreenResume(ctx context.Context, pdfBytes []byte) (*models.PredictionResponse, error)
	// ScreenCandidate processes a queued screening job end to end.
	ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error
	// FeatureVectorForDocument re-derives the feature vector for a stored
	// resume. Extraction and encoding are deterministic, so this always
	// reproduces the vector the screening was scored with.
	FeatureVectorForDocument(doc *models.Document) ([]float64, *ResumeProfile, error)
}

type screenerService struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	pdfParser     PDFParserService
	encoder       *FeatureEncoder
	bundle        *artifacts.Bundle
	vectorIndex   VectorIndexService
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	pdfParser PDFParserService,
	bundle *artifacts.Bundle,
	vectorIndex VectorIndexService,
) ScreenerService {
	return &screenerService{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		pdfParser:     pdfParser,
		encoder:       NewFeatureEncoder(bundle),
		bundle:        bundle,
		vectorIndex:   vectorIndex,
	}
}

// ScreenResume implements ScreenerService.
func (s *screenerService) ScreenResume(ctx context.Context, pdfBytes []byte) (*models.PredictionResponse, error) {
	text, err := s.pdfParser.ExtractText(pdfBytes)
	if err != nil {
		return nil, err
	}

	profile := ExtractResumeInfo(text)
	vector := s.encoder.Encode(profile)

	response, _, err := s.predict(profile, vector)
	return response, err
}

func (s *screenerService) predict(profile *ResumeProfile, vector []float64) (*models.PredictionResponse, *RolePrediction, error) {
	rolePrediction, err := PredictRole(s.bundle.RoleClassifier, vector)
	if err != nil {
		return nil, nil, err
	}

	roleModel, ok := s.bundle.SuitabilityModel(rolePrediction.Role)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrRoleModelMissing, rolePrediction.Role)
	}

	suitability, err := PredictSuitability(roleModel, vector)
	if err != nil {
		return nil, nil, err
	}

	education := profile.Education
	if len(education) > 200 {
		education = education[:200]
	}

	response := &models.PredictionResponse{
		CandidateName:         profile.Name,
		Email:                 profile.Email,
		Phone:                 profile.Phone,
		Education:             education,
		ExperienceYears:       profile.ExperienceYears,
		Skills:                profile.Skills,
		IsSuitable:            suitability.IsSuitable,
		SuitabilityConfidence: RoundPercent(suitability.Confidence),
		RecommendedRole:       rolePrediction.Role,
		RoleConfidence:        RoundPercent(rolePrediction.Confidence),
		TopRoles:              rolePrediction.TopRoles,
		Recommendation:        BuildRecommendation(suitability.IsSuitable, suitability.Confidence),
	}

	return response, rolePrediction, nil
}

// FeatureVectorForDocument implements ScreenerService.
func (s *screenerService) FeatureVectorForDocument(doc *models.Document) ([]float64, *ResumeProfile, error) {
	text, err := s.pdfParser.ExtractTextFromFile(doc.FilePath)
	if err != nil {
		return nil, nil, err
	}

	profile := ExtractResumeInfo(text)
	return s.encoder.Encode(profile), profile, nil
}

// ScreenCandidate implements ScreenerService.
func (s *screenerService) ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error {
	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening for job ID: %s\n", screeningID)

	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to get screening: %w", err)
	}

	doc, err := s.docRepo.FindByID(screening.DocumentID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	log.Println("📄 Parsing resume...")
	text, err := s.pdfParser.ExtractTextFromFile(doc.FilePath)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to parse resume: %v", err))
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	profile := ExtractResumeInfo(text)
	vector := s.encoder.Encode(profile)

	log.Println("🤖 Scoring candidate...")
	response, rolePrediction, err := s.predict(profile, vector)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	topRolesJSON, err := json.Marshal(response.TopRoles)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to encode role ranking: %w", err)
	}

	log.Println("💾 Saving screening results...")
	topRoles := string(topRolesJSON)
	updateData := &repositories.ScreeningUpdateData{
		CandidateName:         &response.CandidateName,
		Email:                 &response.Email,
		Phone:                 &response.Phone,
		Education:             &response.Education,
		ExperienceYears:       &response.ExperienceYears,
		Skills:                &response.Skills,
		IsSuitable:            &response.IsSuitable,
		SuitabilityConfidence: &response.SuitabilityConfidence,
		RecommendedRole:       &response.RecommendedRole,
		RoleConfidence:        &response.RoleConfidence,
		TopRoles:              &topRoles,
		Recommendation:        &response.Recommendation,
	}

	if err := s.screeningRepo.UpdateResult(screeningID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Index the candidate vector for similarity search. Best-effort: a
	// vector store failure never fails the screening.
	if err := s.vectorIndex.IndexCandidate(ctx, screeningID, response.CandidateName, rolePrediction.Role, vector); err != nil {
		log.Printf("⚠️  Warning: failed to index candidate vector: %v\n", err)
	}

	log.Printf("✅ Screening completed successfully for job ID: %s\n", screeningID)
	return nil
}

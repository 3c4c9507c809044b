package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"alfredoptarigan/resume-screener/internal/models"
)

// VectorIndexService stores completed screenings' feature vectors so HR can
// pull up previously screened candidates with a similar profile.
type VectorIndexService interface {
	InitCollection() error
	IndexCandidate(ctx context.Context, screeningID uuid.UUID, candidateName, role string, vector []float64) error
	FindSimilar(ctx context.Context, vector []float64, excludeScreeningID uuid.UUID, limit int) ([]models.SimilarCandidate, error)
	RemoveCandidate(ctx context.Context, screeningID uuid.UUID) error
}

type vectorIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

// NewVectorIndexService connects to Qdrant. vectorSize must be the feature
// width fixed by the artifact bundle.
func NewVectorIndexService(urlStr, apiKey, collectionName string, vectorSize int) (VectorIndexService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &vectorIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     uint64(vectorSize),
	}, nil
}

// InitCollection implements VectorIndexService.
func (q *vectorIndexService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexCandidate implements VectorIndexService.
func (q *vectorIndexService) IndexCandidate(ctx context.Context, screeningID uuid.UUID, candidateName, role string, vector []float64) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(screeningID.ID())),
		Vectors: qdrant.NewVectors(toFloat32(vector)...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"screening_id":     screeningID.String(),
			"candidate_name":   candidateName,
			"recommended_role": role,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// FindSimilar implements VectorIndexService.
func (q *vectorIndexService) FindSimilar(ctx context.Context, vector []float64, excludeScreeningID uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	filter := &qdrant.Filter{
		MustNot: []*qdrant.Condition{
			qdrant.NewMatch("screening_id", excludeScreeningID.String()),
		},
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(toFloat32(vector)...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []models.SimilarCandidate
	for _, point := range searchResult {
		payload := point.Payload

		result := models.SimilarCandidate{
			Score: point.Score,
		}

		if id, ok := payload["screening_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				result.ScreeningID = val.StringValue
			}
		}

		if name, ok := payload["candidate_name"]; ok {
			if val, ok := name.GetKind().(*qdrant.Value_StringValue); ok {
				result.CandidateName = val.StringValue
			}
		}

		if role, ok := payload["recommended_role"]; ok {
			if val, ok := role.GetKind().(*qdrant.Value_StringValue); ok {
				result.RecommendedRole = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}

// RemoveCandidate implements VectorIndexService.
func (q *vectorIndexService) RemoveCandidate(ctx context.Context, screeningID uuid.UUID) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("screening_id", screeningID.String()),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to remove candidate: %w", err)
	}

	return nil
}

func toFloat32(vector []float64) []float32 {
	out := make([]float32, len(vector))
	for i, v := range vector {
		out[i] = float32(v)
	}
	return out
}

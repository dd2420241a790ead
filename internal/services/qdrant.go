package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/qdrant/go-client/qdrant"
	log "github.com/sirupsen/logrus"
)

// QdrantService maintains the vacancy vector index used for semantic matching.
type QdrantService interface {
	InitCollection() error
	UpsertVacancy(ctx context.Context, vacancyID uint, position, text string, embedding []float32) error
	SearchVacancies(ctx context.Context, queryEmbedding []float32, limit int) ([]VacancyHit, error)
	DeleteVacancy(ctx context.Context, vacancyID uint) error
}

type VacancyHit struct {
	VacancyID uint
	Score     float32
	Position  string
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantService(urlStr, apiKey, collectionName string) (QdrantService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, errors.Wrap(err, "invalid qdrant URL")
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port unless the URL says otherwise.
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
		return nil, errors.Wrap(err, "failed to create qdrant client")
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return errors.Wrap(err, "failed to check collection")
	}
	if exists {
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
		return errors.Wrap(err, "failed to create collection")
	}

	log.WithField("collection", q.collectionName).Info("qdrant collection created")
	return nil
}

// UpsertVacancy implements QdrantService. The vacancy id doubles as the point
// id, so re-indexing an updated vacancy replaces its vector.
func (q *qdrantService) UpsertVacancy(ctx context.Context, vacancyID uint, position, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(uint64(vacancyID)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"vacancy_id": int64(vacancyID),
			"position":   position,
			"text":       text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert vacancy point")
	}
	return nil
}

// SearchVacancies implements QdrantService.
func (q *qdrantService) SearchVacancies(ctx context.Context, queryEmbedding []float32, limit int) ([]VacancyHit, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search vacancies")
	}

	var hits []VacancyHit
	for _, point := range searchResult {
		hit := VacancyHit{Score: point.Score}

		if id, ok := point.Payload["vacancy_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_IntegerValue); ok {
				hit.VacancyID = uint(val.IntegerValue)
			}
		}
		if position, ok := point.Payload["position"]; ok {
			if val, ok := position.GetKind().(*qdrant.Value_StringValue); ok {
				hit.Position = val.StringValue
			}
		}

		hits = append(hits, hit)
	}
	return hits, nil
}

// DeleteVacancy implements QdrantService.
func (q *qdrantService) DeleteVacancy(ctx context.Context, vacancyID uint) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points:         qdrant.NewPointsSelector(qdrant.NewIDNum(uint64(vacancyID))),
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete vacancy point")
	}
	return nil
}

package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
)

// MatcherService ranks vacancies against a candidate profile via embeddings.
type MatcherService interface {
	IndexVacancy(ctx context.Context, vacancy *models.Vacancy)
	RemoveVacancy(ctx context.Context, vacancyID uint)
	MatchForCandidate(ctx context.Context, candidateID uint, limit int) ([]models.VacancyMatch, error)
}

type matcherService struct {
	candidateRepo repositories.CandidateRepository
	gemini        GeminiService
	qdrant        QdrantService
}

func NewMatcherService(
	candidateRepo repositories.CandidateRepository,
	gemini GeminiService,
	qdrant QdrantService,
) MatcherService {
	return &matcherService{
		candidateRepo: candidateRepo,
		gemini:        gemini,
		qdrant:        qdrant,
	}
}

// IndexVacancy embeds the vacancy description and upserts it into the vector
// index. Indexing is best effort: a provider failure must not fail the CRUD
// request that triggered it.
func (m *matcherService) IndexVacancy(ctx context.Context, vacancy *models.Vacancy) {
	text := vacancy.DescriptionText()
	embedding, err := m.gemini.GenerateEmbedding(ctx, text)
	if err != nil {
		log.WithError(err).WithField("vacancy_id", vacancy.ID).Warn("failed to embed vacancy")
		return
	}
	if err := m.qdrant.UpsertVacancy(ctx, vacancy.ID, vacancy.Position, text, embedding); err != nil {
		log.WithError(err).WithField("vacancy_id", vacancy.ID).Warn("failed to index vacancy")
	}
}

func (m *matcherService) RemoveVacancy(ctx context.Context, vacancyID uint) {
	if err := m.qdrant.DeleteVacancy(ctx, vacancyID); err != nil {
		log.WithError(err).WithField("vacancy_id", vacancyID).Warn("failed to remove vacancy from index")
	}
}

func (m *matcherService) MatchForCandidate(ctx context.Context, candidateID uint, limit int) ([]models.VacancyMatch, error) {
	candidate, err := m.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}

	query := candidateProfileText(candidate)
	embedding, err := m.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	hits, err := m.qdrant.SearchVacancies(ctx, embedding, limit)
	if err != nil {
		return nil, err
	}

	matches := make([]models.VacancyMatch, 0, len(hits))
	for _, hit := range hits {
		matches = append(matches, models.VacancyMatch{
			VacancyID: hit.VacancyID,
			Score:     hit.Score,
			Position:  hit.Position,
		})
	}
	return matches, nil
}

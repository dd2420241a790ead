package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type InterviewRepository interface {
	Create(session *models.InterviewSession) error
	FindByID(id uuid.UUID) (*models.InterviewSession, error)
	UpdateStatus(id uuid.UUID, status models.InterviewStatus) error
	SubmitTranscript(id uuid.UUID, transcript string) error
	UpdateResult(id uuid.UUID, score float64, feedback string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingScoring(limit int) ([]models.InterviewSession, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(session *models.InterviewSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return errors.Wrap(err, "failed to create interview session")
	}
	return nil
}

func (r *interviewRepository) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("interview session")
		}
		return nil, errors.Wrap(err, "failed to find interview session")
	}
	return &session, nil
}

func (r *interviewRepository) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session status")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview session")
	}
	return nil
}

func (r *interviewRepository) SubmitTranscript(id uuid.UUID, transcript string) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"transcript": transcript,
			"status":     models.InterviewScoring,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to submit transcript")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview session")
	}
	return nil
}

func (r *interviewRepository) UpdateResult(id uuid.UUID, score float64, feedback string) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.InterviewCompleted,
			"score":      score,
			"feedback":   feedback,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session result")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview session")
	}
	return nil
}

func (r *interviewRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.InterviewFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session error")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("interview session")
	}
	return nil
}

// FindPendingScoring returns sessions with a submitted transcript that the
// worker has not finished yet, oldest first.
func (r *interviewRepository) FindPendingScoring(limit int) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Where("status = ?", models.InterviewScoring).
		Order("created_at ASC").
		Limit(limit).
		Find(&sessions).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending scoring sessions")
	}
	return sessions, nil
}

package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByCandidateID(candidateID uint) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return errors.Wrap(err, "failed to create resume record")
	}
	return nil
}

func (r *resumeRepository) FindByCandidateID(candidateID uint) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Where("candidate_id = ?", candidateID).Order("created_at DESC").Find(&resumes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find resumes")
	}
	if len(resumes) == 0 {
		return nil, apperrors.NotFound("resume")
	}
	return resumes, nil
}

package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uint) (*models.Candidate, error)
	FindByEmail(email string) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	Update(id uint, fields map[string]interface{}) error
	ExistsByEmail(email string) (bool, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Candidate{}).Where("email = ?", candidate.Email).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check candidate email")
		}
		if count > 0 {
			return apperrors.Duplicate("candidate", "email")
		}

		if err := tx.Create(candidate).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Duplicate("candidate", "email")
			}
			return errors.Wrap(err, "failed to create candidate")
		}
		return nil
	})
}

func (r *candidateRepository) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("candidate")
		}
		return nil, errors.Wrap(err, "failed to find candidate")
	}
	return &candidate, nil
}

func (r *candidateRepository) FindByEmail(email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("email = ?", email).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("candidate")
		}
		return nil, errors.Wrap(err, "failed to find candidate by email")
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}
	return candidates, nil
}

// Update writes profile enrichment fields (resume text, skills, interview
// score). Not exposed as a public update route.
func (r *candidateRepository) Update(id uint, fields map[string]interface{}) error {
	for key := range fields {
		if !models.CandidateUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	result := r.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update candidate")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("candidate")
	}
	return nil
}

func (r *candidateRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Candidate{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check candidate email")
	}
	return count > 0, nil
}

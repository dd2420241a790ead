package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type VacancyRepository interface {
	Create(vacancy *models.Vacancy) error
	FindByID(id uint) (*models.Vacancy, error)
	FindAll() ([]models.Vacancy, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type vacancyRepository struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &vacancyRepository{db: db}
}

// Create verifies the company reference inside the same transaction, so a
// vacancy is never committed against a company that vanished mid-request.
func (r *vacancyRepository) Create(vacancy *models.Vacancy) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Company{}).Where("id = ?", vacancy.CompanyID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check company reference")
		}
		if count == 0 {
			return apperrors.Validation("company %d does not exist", vacancy.CompanyID)
		}

		if err := tx.Create(vacancy).Error; err != nil {
			return errors.Wrap(err, "failed to create vacancy")
		}
		return nil
	})
}

func (r *vacancyRepository) FindByID(id uint) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	if err := r.db.Where("id = ?", id).First(&vacancy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vacancy")
		}
		return nil, errors.Wrap(err, "failed to find vacancy")
	}
	return &vacancy, nil
}

func (r *vacancyRepository) FindAll() ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	if err := r.db.Order("id ASC").Find(&vacancies).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vacancies")
	}
	return vacancies, nil
}

func (r *vacancyRepository) Update(id uint, fields map[string]interface{}) error {
	for key := range fields {
		if !models.VacancyUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	result := r.db.Model(&models.Vacancy{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vacancy")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("vacancy")
	}
	return nil
}

func (r *vacancyRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Vacancy{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vacancy")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("vacancy")
	}
	return nil
}

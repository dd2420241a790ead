package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id uint) (*models.Company, error)
	FindByEmail(email string) (*models.Company, error)
	FindAll() ([]models.Company, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	ExistsByEmail(email string) (bool, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// Create inserts a company after checking email and inn uniqueness. The
// pre-check yields the clean error message; the unique indexes remain the
// final arbiter, so a concurrent insert still fails as DuplicateEntity.
func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Company{}).Where("email = ?", company.Email).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check company email")
		}
		if count > 0 {
			return apperrors.Duplicate("company", "email")
		}

		if err := tx.Model(&models.Company{}).Where("inn = ?", company.INN).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check company inn")
		}
		if count > 0 {
			return apperrors.Duplicate("company", "inn")
		}

		if err := tx.Create(company).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Duplicate("company", "email or inn")
			}
			return errors.Wrap(err, "failed to create company")
		}
		return nil
	})
}

func (r *companyRepository) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company")
		}
		return nil, errors.Wrap(err, "failed to find company")
	}
	return &company, nil
}

func (r *companyRepository) FindByEmail(email string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Where("email = ?", email).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company")
		}
		return nil, errors.Wrap(err, "failed to find company by email")
	}
	return &company, nil
}

func (r *companyRepository) FindAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Order("id ASC").Find(&companies).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}
	return companies, nil
}

// Update applies a partial field map. Keys outside the allow-list are rejected
// before the store is touched.
func (r *companyRepository) Update(id uint, fields map[string]interface{}) error {
	for key := range fields {
		if !models.CompanyUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	result := r.db.Model(&models.Company{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update company")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("company")
	}
	return nil
}

func (r *companyRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Company{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete company")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("company")
	}
	return nil
}

func (r *companyRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Company{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check company email")
	}
	return count > 0, nil
}

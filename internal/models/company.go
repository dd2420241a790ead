package models

import "time"

type Company struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	INN          string    `gorm:"column:inn;type:varchar(20);uniqueIndex;not null" json:"inn"`
	Description  string    `gorm:"type:text" json:"description"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Vacancies []Vacancy `gorm:"foreignKey:CompanyID" json:"-"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyUpdatableFields is the allow-list for partial updates; submitted keys
// outside this set are rejected before the store is touched.
var CompanyUpdatableFields = map[string]bool{
	"name":        true,
	"description": true,
}

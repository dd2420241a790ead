package models

import "time"

type Vacancy struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	CompanyID            uint      `gorm:"not null;index" json:"company_id"`
	Position             string    `gorm:"type:varchar(100);not null" json:"position"`
	Grade                string    `gorm:"type:varchar(50)" json:"grade"`
	Tasks                string    `gorm:"type:text" json:"tasks"`
	Tools                string    `gorm:"type:text" json:"tools"`
	Skills               string    `gorm:"type:text" json:"skills"`
	TheoreticalKnowledge string    `gorm:"type:text" json:"theoretical_knowledge"`
	SalaryRange          string    `gorm:"type:varchar(50)" json:"salary_range"`
	WorkFormat           string    `gorm:"type:varchar(50)" json:"work_format"`
	ClientIndustry       string    `gorm:"type:text" json:"client_industry"`
	City                 string    `gorm:"type:varchar(50)" json:"city"`
	WorkTime             string    `gorm:"type:varchar(50)" json:"work_time"`
	Benefits             string    `gorm:"type:text" json:"benefits"`
	AdditionalInfo       string    `gorm:"type:text" json:"additional_info"`
	CreatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Vacancy) TableName() string {
	return "vacancies"
}

var VacancyUpdatableFields = map[string]bool{
	"position":              true,
	"grade":                 true,
	"tasks":                 true,
	"tools":                 true,
	"skills":                true,
	"theoretical_knowledge": true,
	"salary_range":          true,
	"work_format":           true,
	"client_industry":       true,
	"city":                  true,
	"work_time":             true,
	"benefits":              true,
	"additional_info":       true,
}

// DescriptionText flattens the descriptive fields into a single block used for
// prompt building and embedding.
func (v *Vacancy) DescriptionText() string {
	return "Position: " + v.Position +
		"\nGrade: " + v.Grade +
		"\nTasks: " + v.Tasks +
		"\nTools: " + v.Tools +
		"\nSkills: " + v.Skills +
		"\nTheoretical knowledge: " + v.TheoreticalKnowledge +
		"\nWork format: " + v.WorkFormat +
		"\nClient industry: " + v.ClientIndustry +
		"\nCity: " + v.City
}

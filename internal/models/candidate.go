package models

import "time"

type Candidate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:text;not null" json:"-"`
	City           string    `gorm:"type:varchar(50)" json:"city"`
	Position       string    `gorm:"type:varchar(100)" json:"position"`
	Skills         string    `gorm:"type:text" json:"skills"`
	Experience     string    `gorm:"type:text" json:"experience"`
	ResumeText     string    `gorm:"type:text" json:"-"`
	InterviewScore float64   `gorm:"not null;default:0" json:"interview_score"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateUpdatableFields covers the profile enrichment columns written by the
// resume upload and interview scoring flows. There is no public candidate
// update route.
var CandidateUpdatableFields = map[string]bool{
	"city":            true,
	"position":        true,
	"skills":          true,
	"experience":      true,
	"resume_text":     true,
	"interview_score": true,
}

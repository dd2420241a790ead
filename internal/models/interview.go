package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewCreated    InterviewStatus = "created"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewScoring    InterviewStatus = "scoring"
	InterviewCompleted  InterviewStatus = "completed"
	InterviewFailed     InterviewStatus = "failed"
)

type InterviewSession struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID  uint            `gorm:"not null;index" json:"candidate_id"`
	VacancyID    uint            `gorm:"not null;index" json:"vacancy_id"`
	Status       InterviewStatus `gorm:"not null;default:'created'" json:"status"`
	RoomURL      string          `gorm:"type:text" json:"room_url"`
	Questions    string          `gorm:"type:text" json:"questions"`
	Transcript   string          `gorm:"type:text" json:"-"`
	Score        *float64        `gorm:"type:decimal(4,2)" json:"score,omitempty"`
	Feedback     *string         `gorm:"type:text" json:"feedback,omitempty"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
	Vacancy   Vacancy   `gorm:"foreignKey:VacancyID" json:"-"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

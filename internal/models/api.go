package models

type RegisterCompanyRequest struct {
	Name        string `json:"name"`
	INN         string `json:"inn"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
}

type RegisterCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	City     string `json:"city"`
	Position string `json:"position"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateVacancyRequest struct {
	CompanyID            uint   `json:"company_id"`
	Position             string `json:"position"`
	Grade                string `json:"grade"`
	Tasks                string `json:"tasks"`
	Tools                string `json:"tools"`
	Skills               string `json:"skills"`
	TheoreticalKnowledge string `json:"theoretical_knowledge"`
	SalaryRange          string `json:"salary_range"`
	WorkFormat           string `json:"work_format"`
	ClientIndustry       string `json:"client_industry"`
	City                 string `json:"city"`
	WorkTime             string `json:"work_time"`
	Benefits             string `json:"benefits"`
	AdditionalInfo       string `json:"additional_info"`
}

type SpeechRequest struct {
	Text string `json:"text"`
}

type GenerateQuestionRequest struct {
	VacancyID   uint `json:"vacancy_id"`
	CandidateID uint `json:"candidate_id"`
}

type StartInterviewRequest struct {
	VacancyID   uint `json:"vacancy_id"`
	CandidateID uint `json:"candidate_id"`
}

type StartInterviewResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	RoomURL   string `json:"room_url"`
	Questions string `json:"questions"`
}

type FinishInterviewRequest struct {
	Transcript string `json:"transcript"`
}

type InterviewResultResponse struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	Score        *float64 `json:"score,omitempty"`
	Feedback     *string  `json:"feedback,omitempty"`
	ErrorMessage *string  `json:"error_message,omitempty"`
}

type MatchVacanciesRequest struct {
	CandidateID uint `json:"candidate_id"`
	Limit       int  `json:"limit"`
}

type VacancyMatch struct {
	VacancyID uint    `json:"vacancy_id"`
	Score     float32 `json:"score"`
	Position  string  `json:"position"`
}

type UploadResumeResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}

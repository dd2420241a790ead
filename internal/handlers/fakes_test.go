package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

// In-memory repository and service stand-ins for route tests.

type memCompanyRepo struct {
	companies map[uint]*models.Company
	nextID    uint
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[uint]*models.Company), nextID: 1}
}

func (r *memCompanyRepo) Create(company *models.Company) error {
	for _, existing := range r.companies {
		if existing.Email == company.Email {
			return apperrors.Duplicate("company", "email")
		}
		if existing.INN == company.INN {
			return apperrors.Duplicate("company", "inn")
		}
	}
	company.ID = r.nextID
	r.nextID++
	r.companies[company.ID] = company
	return nil
}

func (r *memCompanyRepo) FindByID(id uint) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, apperrors.NotFound("company")
	}
	return company, nil
}

func (r *memCompanyRepo) FindByEmail(email string) (*models.Company, error) {
	for _, company := range r.companies {
		if company.Email == email {
			return company, nil
		}
	}
	return nil, apperrors.NotFound("company")
}

func (r *memCompanyRepo) FindAll() ([]models.Company, error) {
	var out []models.Company
	for _, company := range r.companies {
		out = append(out, *company)
	}
	return out, nil
}

func (r *memCompanyRepo) Update(id uint, fields map[string]interface{}) error {
	if _, ok := r.companies[id]; !ok {
		return apperrors.NotFound("company")
	}
	for key := range fields {
		if !models.CompanyUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	return nil
}

func (r *memCompanyRepo) Delete(id uint) error {
	if _, ok := r.companies[id]; !ok {
		return apperrors.NotFound("company")
	}
	delete(r.companies, id)
	return nil
}

func (r *memCompanyRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	return err == nil, nil
}

type memCandidateRepo struct {
	candidates map[uint]*models.Candidate
	nextID     uint
}

func newMemCandidateRepo() *memCandidateRepo {
	return &memCandidateRepo{candidates: make(map[uint]*models.Candidate), nextID: 1}
}

func (r *memCandidateRepo) Create(candidate *models.Candidate) error {
	for _, existing := range r.candidates {
		if existing.Email == candidate.Email {
			return apperrors.Duplicate("candidate", "email")
		}
	}
	candidate.ID = r.nextID
	r.nextID++
	r.candidates[candidate.ID] = candidate
	return nil
}

func (r *memCandidateRepo) FindByID(id uint) (*models.Candidate, error) {
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, apperrors.NotFound("candidate")
	}
	return candidate, nil
}

func (r *memCandidateRepo) FindByEmail(email string) (*models.Candidate, error) {
	for _, candidate := range r.candidates {
		if candidate.Email == email {
			return candidate, nil
		}
	}
	return nil, apperrors.NotFound("candidate")
}

func (r *memCandidateRepo) FindAll() ([]models.Candidate, error) {
	var out []models.Candidate
	for _, candidate := range r.candidates {
		out = append(out, *candidate)
	}
	return out, nil
}

func (r *memCandidateRepo) Update(id uint, fields map[string]interface{}) error {
	if _, ok := r.candidates[id]; !ok {
		return apperrors.NotFound("candidate")
	}
	for key := range fields {
		if !models.CandidateUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	return nil
}

func (r *memCandidateRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindByEmail(email)
	return err == nil, nil
}

type memVacancyRepo struct {
	vacancies map[uint]*models.Vacancy
	nextID    uint
}

func newMemVacancyRepo() *memVacancyRepo {
	return &memVacancyRepo{vacancies: make(map[uint]*models.Vacancy), nextID: 1}
}

func (r *memVacancyRepo) Create(vacancy *models.Vacancy) error {
	vacancy.ID = r.nextID
	r.nextID++
	r.vacancies[vacancy.ID] = vacancy
	return nil
}

func (r *memVacancyRepo) FindByID(id uint) (*models.Vacancy, error) {
	vacancy, ok := r.vacancies[id]
	if !ok {
		return nil, apperrors.NotFound("vacancy")
	}
	return vacancy, nil
}

func (r *memVacancyRepo) FindAll() ([]models.Vacancy, error) {
	var out []models.Vacancy
	for _, vacancy := range r.vacancies {
		out = append(out, *vacancy)
	}
	return out, nil
}

func (r *memVacancyRepo) Update(id uint, fields map[string]interface{}) error {
	if _, ok := r.vacancies[id]; !ok {
		return apperrors.NotFound("vacancy")
	}
	for key := range fields {
		if !models.VacancyUpdatableFields[key] {
			return apperrors.Validation("unknown field %q", key)
		}
	}
	return nil
}

func (r *memVacancyRepo) Delete(id uint) error {
	if _, ok := r.vacancies[id]; !ok {
		return apperrors.NotFound("vacancy")
	}
	delete(r.vacancies, id)
	return nil
}

type memInterviewRepo struct {
	sessions map[uuid.UUID]*models.InterviewSession
}

func newMemInterviewRepo() *memInterviewRepo {
	return &memInterviewRepo{sessions: make(map[uuid.UUID]*models.InterviewSession)}
}

func (r *memInterviewRepo) Create(session *models.InterviewSession) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *memInterviewRepo) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("interview session")
	}
	return session, nil
}

func (r *memInterviewRepo) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	session, ok := r.sessions[id]
	if !ok {
		return apperrors.NotFound("interview session")
	}
	session.Status = status
	return nil
}

func (r *memInterviewRepo) SubmitTranscript(id uuid.UUID, transcript string) error {
	session, ok := r.sessions[id]
	if !ok {
		return apperrors.NotFound("interview session")
	}
	session.Transcript = transcript
	session.Status = models.InterviewScoring
	return nil
}

func (r *memInterviewRepo) UpdateResult(id uuid.UUID, score float64, feedback string) error {
	session, ok := r.sessions[id]
	if !ok {
		return apperrors.NotFound("interview session")
	}
	session.Score = &score
	session.Feedback = &feedback
	session.Status = models.InterviewCompleted
	return nil
}

func (r *memInterviewRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	session, ok := r.sessions[id]
	if !ok {
		return apperrors.NotFound("interview session")
	}
	session.ErrorMessage = &errorMsg
	session.Status = models.InterviewFailed
	return nil
}

func (r *memInterviewRepo) FindPendingScoring(limit int) ([]models.InterviewSession, error) {
	var out []models.InterviewSession
	for _, session := range r.sessions {
		if session.Status == models.InterviewScoring {
			out = append(out, *session)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

type memResumeRepo struct {
	resumes []*models.Resume
	err     error
}

func (r *memResumeRepo) Create(resume *models.Resume) error {
	if r.err != nil {
		return r.err
	}
	r.resumes = append(r.resumes, resume)
	return nil
}

func (r *memResumeRepo) FindByCandidateID(candidateID uint) ([]models.Resume, error) {
	var out []models.Resume
	for _, resume := range r.resumes {
		if resume.CandidateID == candidateID {
			out = append(out, *resume)
		}
	}
	return out, nil
}

type stubStorage struct {
	saveErr error
	deleted []string
}

func (s *stubStorage) SaveResume(file *multipart.FileHeader, candidateID uint) (string, string, error) {
	if s.saveErr != nil {
		return "", "", s.saveErr
	}
	filename := fmt.Sprintf("resume_%d_test.pdf", candidateID)
	return filename, "/uploads/" + filename, nil
}

func (s *stubStorage) GetFilePath(filename string) string { return "/uploads/" + filename }

func (s *stubStorage) DeleteFile(filename string) error {
	s.deleted = append(s.deleted, filename)
	return nil
}

func (s *stubStorage) EnsureUploadDir() error { return nil }

type stubParser struct {
	content *services.ResumeContent
	err     error
}

func (p *stubParser) Extract(filePath string) (*services.ResumeContent, error) {
	return p.content, p.err
}

type stubMatcher struct {
	indexed []uint
	removed []uint
	matches []models.VacancyMatch
	err     error
}

func (m *stubMatcher) IndexVacancy(ctx context.Context, vacancy *models.Vacancy) {
	m.indexed = append(m.indexed, vacancy.ID)
}

func (m *stubMatcher) RemoveVacancy(ctx context.Context, vacancyID uint) {
	m.removed = append(m.removed, vacancyID)
}

func (m *stubMatcher) MatchForCandidate(ctx context.Context, candidateID uint, limit int) ([]models.VacancyMatch, error) {
	return m.matches, m.err
}

type stubSpeech struct {
	audio       []byte
	contentType string
	transcript  []byte
	err         error
}

func (s *stubSpeech) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	return s.audio, s.contentType, s.err
}

func (s *stubSpeech) Transcribe(ctx context.Context, audio io.Reader, filename string) ([]byte, error) {
	return s.transcript, s.err
}

type stubInterviewer struct {
	session  *models.InterviewSession
	question string
	err      error
	scored   []uuid.UUID
}

func (s *stubInterviewer) StartInterview(ctx context.Context, candidateID, vacancyID uint) (*models.InterviewSession, error) {
	return s.session, s.err
}

func (s *stubInterviewer) GenerateQuestion(ctx context.Context, candidateID, vacancyID uint, history string) (string, error) {
	return s.question, s.err
}

func (s *stubInterviewer) ScoreInterview(ctx context.Context, sessionID uuid.UUID) error {
	s.scored = append(s.scored, sessionID)
	return s.err
}

type stubWorker struct {
	enqueued []uuid.UUID
}

func (w *stubWorker) Start(ctx context.Context) {}

func (w *stubWorker) Stop() {}

func (w *stubWorker) EnqueueJob(sessionID uuid.UUID) {
	w.enqueued = append(w.enqueued, sessionID)
}

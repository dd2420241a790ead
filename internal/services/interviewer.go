package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
)

// InterviewerService stages the AI HR interview flow: it opens a video room,
// prepares the question set, generates follow-up turns, and scores submitted
// transcripts (the scoring runs on the worker pool).
type InterviewerService interface {
	StartInterview(ctx context.Context, candidateID, vacancyID uint) (*models.InterviewSession, error)
	GenerateQuestion(ctx context.Context, candidateID, vacancyID uint, history string) (string, error)
	ScoreInterview(ctx context.Context, sessionID uuid.UUID) error
}

type interviewerService struct {
	interviewRepo repositories.InterviewRepository
	candidateRepo repositories.CandidateRepository
	vacancyRepo   repositories.VacancyRepository
	gemini        GeminiService
	rooms         RoomService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewInterviewerService(
	interviewRepo repositories.InterviewRepository,
	candidateRepo repositories.CandidateRepository,
	vacancyRepo repositories.VacancyRepository,
	gemini GeminiService,
	rooms RoomService,
	maxRetries int,
) InterviewerService {
	return &interviewerService{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		vacancyRepo:   vacancyRepo,
		gemini:        gemini,
		rooms:         rooms,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

type interviewScoreResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

func (s *interviewerService) StartInterview(ctx context.Context, candidateID, vacancyID uint) (*models.InterviewSession, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	vacancy, err := s.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		return nil, err
	}

	roomURL, err := s.rooms.CreateRoom(ctx, fmt.Sprintf("interview-%d-%d", candidateID, vacancyID))
	if err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildInterviewQuestionsPrompt(vacancy, candidate)
	questions, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, s.maxRetries)
	if err != nil {
		return nil, err
	}

	session := &models.InterviewSession{
		ID:          uuid.New(),
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Status:      models.InterviewCreated,
		RoomURL:     roomURL,
		Questions:   strings.TrimSpace(questions),
	}
	if err := s.interviewRepo.Create(session); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"session_id":   session.ID,
		"candidate_id": candidateID,
		"vacancy_id":   vacancyID,
	}).Info("interview session created")
	return session, nil
}

func (s *interviewerService) GenerateQuestion(ctx context.Context, candidateID, vacancyID uint, history string) (string, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return "", err
	}
	vacancy, err := s.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		return "", err
	}

	var prompt string
	if strings.TrimSpace(history) == "" {
		prompt = s.promptBuilder.BuildInterviewQuestionsPrompt(vacancy, candidate)
	} else {
		prompt = s.promptBuilder.BuildInterviewTurnPrompt(vacancy, candidate, history)
	}

	text, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, s.maxRetries)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ScoreInterview is the worker entry point. Any failure is recorded on the
// session so the client sees a terminal status instead of a stuck job.
func (s *interviewerService) ScoreInterview(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.interviewRepo.FindByID(sessionID)
	if err != nil {
		return err
	}
	if session.Transcript == "" {
		s.interviewRepo.UpdateError(sessionID, "no transcript submitted")
		return errors.New("no transcript submitted")
	}

	candidate, err := s.candidateRepo.FindByID(session.CandidateID)
	if err != nil {
		s.interviewRepo.UpdateError(sessionID, err.Error())
		return err
	}
	vacancy, err := s.vacancyRepo.FindByID(session.VacancyID)
	if err != nil {
		s.interviewRepo.UpdateError(sessionID, err.Error())
		return err
	}

	prompt := s.promptBuilder.BuildScoringPrompt(vacancy, candidate, session.Transcript)
	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, s.maxRetries)
	if err != nil {
		s.interviewRepo.UpdateError(sessionID, "scoring failed")
		return err
	}

	var result interviewScoreResult
	if err := parseJSONResponse(response, &result); err != nil {
		s.interviewRepo.UpdateError(sessionID, "could not parse scoring response")
		return err
	}

	if err := s.interviewRepo.UpdateResult(sessionID, result.Score, result.Feedback); err != nil {
		return err
	}

	// Mirror the latest score onto the candidate profile.
	if err := s.candidateRepo.Update(session.CandidateID, map[string]interface{}{
		"interview_score": result.Score,
	}); err != nil {
		log.WithError(err).WithField("candidate_id", session.CandidateID).
			Warn("failed to update candidate interview score")
	}

	log.WithFields(log.Fields{"session_id": sessionID, "score": result.Score}).
		Info("interview scored")
	return nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return errors.Wrap(err, "failed to unmarshal JSON")
	}
	return nil
}

// extractJSON strips markdown fencing the LLM may wrap around its JSON answer.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

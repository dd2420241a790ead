package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

type InterviewHandler struct {
	interviewRepo repositories.InterviewRepository
	interviewer   services.InterviewerService
	worker        services.Worker
}

func NewInterviewHandler(
	interviewRepo repositories.InterviewRepository,
	interviewer services.InterviewerService,
	worker services.Worker,
) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo: interviewRepo,
		interviewer:   interviewer,
		worker:        worker,
	}
}

// HandleStart handles POST /ai_hr_interview
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if req.CandidateID == 0 || req.VacancyID == 0 {
		return apperrors.Validation("candidate_id and vacancy_id are required")
	}

	session, err := h.interviewer.StartInterview(c.Context(), req.CandidateID, req.VacancyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.StartInterviewResponse{
		ID:        session.ID.String(),
		Status:    string(session.Status),
		RoomURL:   session.RoomURL,
		Questions: session.Questions,
	})
}

// HandleGenerateQuestion handles POST /generate_question
func (h *InterviewHandler) HandleGenerateQuestion(c *fiber.Ctx) error {
	var req struct {
		CandidateID uint   `json:"candidate_id"`
		VacancyID   uint   `json:"vacancy_id"`
		History     string `json:"history"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if req.CandidateID == 0 || req.VacancyID == 0 {
		return apperrors.Validation("candidate_id and vacancy_id are required")
	}

	text, err := h.interviewer.GenerateQuestion(c.Context(), req.CandidateID, req.VacancyID, req.History)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"text": text})
}

// HandleFinish handles POST /finish_interview/:id. The transcript is stored
// and scoring runs on the worker pool; the client polls the result route.
func (h *InterviewHandler) HandleFinish(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Validation("invalid session id")
	}

	var req models.FinishInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if req.Transcript == "" {
		return apperrors.Validation("transcript is required")
	}

	if err := h.interviewRepo.SubmitTranscript(sessionID, req.Transcript); err != nil {
		return err
	}

	h.worker.EnqueueJob(sessionID)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"id":     sessionID.String(),
		"status": string(models.InterviewScoring),
	})
}

// HandleGetResult handles GET /interview_result/:id
func (h *InterviewHandler) HandleGetResult(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Validation("invalid session id")
	}

	session, err := h.interviewRepo.FindByID(sessionID)
	if err != nil {
		return err
	}

	response := models.InterviewResultResponse{
		ID:     session.ID.String(),
		Status: string(session.Status),
	}
	if session.Status == models.InterviewCompleted {
		response.Score = session.Score
		response.Feedback = session.Feedback
	}
	if session.Status == models.InterviewFailed {
		response.ErrorMessage = session.ErrorMessage
	}

	return c.JSON(response)
}

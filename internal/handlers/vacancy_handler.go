package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

type VacancyHandler struct {
	vacancyRepo repositories.VacancyRepository
	matcher     services.MatcherService
}

func NewVacancyHandler(vacancyRepo repositories.VacancyRepository, matcher services.MatcherService) *VacancyHandler {
	return &VacancyHandler{
		vacancyRepo: vacancyRepo,
		matcher:     matcher,
	}
}

// HandleCreate handles POST /create_vacancy
func (h *VacancyHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateVacancyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	if req.CompanyID == 0 || req.Position == "" || req.Grade == "" ||
		req.Tasks == "" || req.Tools == "" || req.Skills == "" {
		return apperrors.Validation("company_id, position, grade, tasks, tools and skills are required")
	}

	vacancy := &models.Vacancy{
		CompanyID:            req.CompanyID,
		Position:             req.Position,
		Grade:                req.Grade,
		Tasks:                req.Tasks,
		Tools:                req.Tools,
		Skills:               req.Skills,
		TheoreticalKnowledge: req.TheoreticalKnowledge,
		SalaryRange:          req.SalaryRange,
		WorkFormat:           req.WorkFormat,
		ClientIndustry:       req.ClientIndustry,
		City:                 req.City,
		WorkTime:             req.WorkTime,
		Benefits:             req.Benefits,
		AdditionalInfo:       req.AdditionalInfo,
	}

	if err := h.vacancyRepo.Create(vacancy); err != nil {
		return err
	}

	h.matcher.IndexVacancy(c.Context(), vacancy)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "vacancy created",
		"vacancy_id": vacancy.ID,
	})
}

// HandleList handles GET /vacancies
func (h *VacancyHandler) HandleList(c *fiber.Ctx) error {
	vacancies, err := h.vacancyRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"vacancies": vacancies})
}

// HandleGet handles GET /vacancy/:id
func (h *VacancyHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid vacancy id")
	}

	vacancy, err := h.vacancyRepo.FindByID(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(vacancy)
}

// HandleUpdate handles PUT /update_vacancy/:id
func (h *VacancyHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid vacancy id")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	if err := h.vacancyRepo.Update(uint(id), fields); err != nil {
		return err
	}

	if vacancy, err := h.vacancyRepo.FindByID(uint(id)); err == nil {
		h.matcher.IndexVacancy(c.Context(), vacancy)
	}

	return c.JSON(fiber.Map{"message": "vacancy updated"})
}

// HandleDelete handles DELETE /delete_vacancy/:id
func (h *VacancyHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid vacancy id")
	}

	if err := h.vacancyRepo.Delete(uint(id)); err != nil {
		return err
	}

	h.matcher.RemoveVacancy(c.Context(), uint(id))

	return c.JSON(fiber.Map{"message": "vacancy deleted"})
}

// HandleMatch handles POST /match_vacancies
func (h *VacancyHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchVacanciesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if req.CandidateID == 0 {
		return apperrors.Validation("candidate_id is required")
	}

	matches, err := h.matcher.MatchForCandidate(c.Context(), req.CandidateID, req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"matches": matches})
}

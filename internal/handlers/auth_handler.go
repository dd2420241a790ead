package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/middleware"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// HandleRegisterCompany handles POST /register_company
func (h *AuthHandler) HandleRegisterCompany(c *fiber.Ctx) error {
	var req models.RegisterCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	company, err := h.authService.RegisterCompany(req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "company registered",
		"company_id": company.ID,
	})
}

// HandleRegisterCandidate handles POST /register_candidate
func (h *AuthHandler) HandleRegisterCandidate(c *fiber.Ctx) error {
	var req models.RegisterCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	candidate, err := h.authService.RegisterCandidate(req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "candidate registered",
		"candidate_id": candidate.ID,
	})
}

// HandleLogin handles POST /login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(models.LoginResponse{Token: token})
}

// HandleProtected handles GET /protected
func (h *AuthHandler) HandleProtected(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return apperrors.ErrInvalidToken
	}
	return c.JSON(identity)
}

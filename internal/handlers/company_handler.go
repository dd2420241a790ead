package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
)

type CompanyHandler struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyHandler(companyRepo repositories.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo}
}

// HandleList handles GET /companies
func (h *CompanyHandler) HandleList(c *fiber.Ctx) error {
	companies, err := h.companyRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"companies": companies})
}

// HandleGet handles GET /company/:id
func (h *CompanyHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid company id")
	}

	company, err := h.companyRepo.FindByID(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(company)
}

// HandleUpdate handles PUT /update_company/:id
func (h *CompanyHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid company id")
	}

	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return apperrors.Validation("invalid request payload")
	}

	if err := h.companyRepo.Update(uint(id), fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "company updated"})
}

// HandleDelete handles DELETE /delete_company/:id
func (h *CompanyHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid company id")
	}

	if err := h.companyRepo.Delete(uint(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "company deleted"})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

type CandidateHandler struct {
	candidateRepo repositories.CandidateRepository
	resumeRepo    repositories.ResumeRepository
	storage       services.StorageService
	parser        services.ResumeParserService
	maxFileSize   int64
}

func NewCandidateHandler(
	candidateRepo repositories.CandidateRepository,
	resumeRepo repositories.ResumeRepository,
	storage services.StorageService,
	parser services.ResumeParserService,
	maxFileSize int64,
) *CandidateHandler {
	return &CandidateHandler{
		candidateRepo: candidateRepo,
		resumeRepo:    resumeRepo,
		storage:       storage,
		parser:        parser,
		maxFileSize:   maxFileSize,
	}
}

// HandleList handles GET /candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateRepo.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"candidates": candidates})
}

// HandleGet handles GET /candidate/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid candidate id")
	}

	candidate, err := h.candidateRepo.FindByID(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(candidate)
}

// HandleUploadResume handles POST /upload_resume/:id. The PDF is stored on
// disk, its text extracted onto the candidate profile, and a resume record
// kept for the audit trail. If any step after saving fails, the stored file
// is removed again.
func (h *CandidateHandler) HandleUploadResume(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.Validation("invalid candidate id")
	}
	candidateID := uint(id)

	if _, err := h.candidateRepo.FindByID(candidateID); err != nil {
		return err
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return apperrors.Validation("resume file is required")
	}
	if file.Size > h.maxFileSize {
		return apperrors.Validation("resume file too large, max size: %d bytes", h.maxFileSize)
	}

	filename, filePath, err := h.storage.SaveResume(file, candidateID)
	if err != nil {
		return err
	}

	content, err := h.parser.Extract(filePath)
	if err != nil {
		h.storage.DeleteFile(filename)
		return apperrors.Validation("could not extract text from resume: %v", err)
	}

	resume := &models.Resume{
		ID:               uuid.New(),
		CandidateID:      candidateID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		PageCount:        content.PageCount,
	}
	if err := h.resumeRepo.Create(resume); err != nil {
		h.storage.DeleteFile(filename)
		return err
	}

	if err := h.candidateRepo.Update(candidateID, map[string]interface{}{
		"resume_text": content.Text,
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResumeResponse{
		ID:           resume.ID.String(),
		Filename:     resume.Filename,
		OriginalName: resume.OriginalFileName,
		PageCount:    resume.PageCount,
	})
}

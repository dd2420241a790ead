package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

type SpeechHandler struct {
	speech services.SpeechService
}

func NewSpeechHandler(speech services.SpeechService) *SpeechHandler {
	return &SpeechHandler{speech: speech}
}

// HandleGenerateSpeech handles POST /generate_speech. The provider's audio
// bytes pass through unmodified.
func (h *SpeechHandler) HandleGenerateSpeech(c *fiber.Ctx) error {
	var req models.SpeechRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if req.Text == "" {
		return apperrors.Validation("text is required")
	}

	audio, contentType, err := h.speech.Synthesize(c.Context(), req.Text)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(audio)
}

// HandleTranscribeAudio handles POST /transcribe_audio. The provider's JSON
// response passes through unmodified.
func (h *SpeechHandler) HandleTranscribeAudio(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return apperrors.Validation("audio file is required")
	}

	src, err := file.Open()
	if err != nil {
		return apperrors.Validation("could not read audio file")
	}
	defer src.Close()

	transcript, err := h.speech.Transcribe(c.Context(), src, file.Filename)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(transcript)
}

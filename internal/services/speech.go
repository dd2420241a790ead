package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/config"
)

// SpeechService forwards text-to-speech and speech-to-text calls to the
// configured provider. Responses pass through unmodified; failures surface
// as UpstreamFailure.
type SpeechService interface {
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) ([]byte, error)
}

type speechService struct {
	synthesizeURL string
	transcribeURL string
	apiKey        string
	client        *http.Client
}

func NewSpeechService(cfg config.SpeechConfig) SpeechService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &speechService{
		synthesizeURL: cfg.SynthesizeURL,
		transcribeURL: cfg.TranscribeURL,
		apiKey:        cfg.APIKey,
		client:        &http.Client{Timeout: timeout},
	}
}

func (s *speechService) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to serialize synthesis request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.synthesizeURL, bytes.NewReader(payload))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create synthesis request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", apperrors.Upstream("speech", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.Upstream("speech", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", apperrors.Upstream("speech", errors.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return body, contentType, nil
}

func (s *speechService) Transcribe(ctx context.Context, audio io.Reader, filename string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create multipart form")
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, errors.Wrap(err, "failed to copy audio into form")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.transcribeURL, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transcription request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.Upstream("speech", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Upstream("speech", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Upstream("speech", errors.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}
	return body, nil
}

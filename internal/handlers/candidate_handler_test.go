package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/gradeup-ai/gradeup-mvp/internal/models"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

func newCandidateTestApp(t *testing.T, parser *stubParser) (*fiber.App, *memCandidateRepo, *memResumeRepo, *stubStorage) {
	t.Helper()

	candidateRepo := newMemCandidateRepo()
	resumeRepo := &memResumeRepo{}
	storage := &stubStorage{}
	handler := NewCandidateHandler(candidateRepo, resumeRepo, storage, parser, 10*1024*1024)

	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(false)})
	app.Get("/candidates", handler.HandleList)
	app.Get("/candidate/:id", handler.HandleGet)
	app.Post("/upload_resume/:id", handler.HandleUploadResume)
	return app, candidateRepo, resumeRepo, storage
}

func TestCandidateRoutes(t *testing.T) {
	t.Run(`get returns the candidate or 404`, func(t *testing.T) {
		app, candidateRepo, _, _ := newCandidateTestApp(t, &stubParser{})
		require.NoError(t, candidateRepo.Create(&models.Candidate{Name: "Ivan", Email: "ivan@mail.com"}))

		req := httptest.NewRequest(http.MethodGet, "/candidate/1", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, "Ivan", body["name"])

		req = httptest.NewRequest(http.MethodGet, "/candidate/99", nil)
		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`upload resume stores the file and records the extraction`, func(t *testing.T) {
		parser := &stubParser{content: &services.ResumeContent{
			Text:      "Go developer, 3 years at a fintech.",
			PageCount: 2,
		}}
		app, candidateRepo, resumeRepo, _ := newCandidateTestApp(t, parser)
		require.NoError(t, candidateRepo.Create(&models.Candidate{Name: "Ivan", Email: "ivan@mail.com"}))

		buf, contentType := newAudioUpload(t, "resume", "cv.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest(http.MethodPost, "/upload_resume/1", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, "cv.pdf", body["original_name"])
		require.EqualValues(t, 2, body["page_count"])
		require.Len(t, resumeRepo.resumes, 1)
		require.Equal(t, uint(1), resumeRepo.resumes[0].CandidateID)
	})

	t.Run(`upload resume rejects an unknown candidate`, func(t *testing.T) {
		app, _, _, _ := newCandidateTestApp(t, &stubParser{})

		buf, contentType := newAudioUpload(t, "resume", "cv.pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/upload_resume/42", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`upload resume requires the file field`, func(t *testing.T) {
		app, candidateRepo, _, _ := newCandidateTestApp(t, &stubParser{})
		require.NoError(t, candidateRepo.Create(&models.Candidate{Name: "Ivan", Email: "ivan@mail.com"}))

		buf, contentType := newAudioUpload(t, "wrong_field", "cv.pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/upload_resume/1", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run(`upload resume cleans up the file when extraction fails`, func(t *testing.T) {
		parser := &stubParser{err: errors.New("failed to open PDF")}
		app, candidateRepo, resumeRepo, storage := newCandidateTestApp(t, parser)
		require.NoError(t, candidateRepo.Create(&models.Candidate{Name: "Ivan", Email: "ivan@mail.com"}))

		buf, contentType := newAudioUpload(t, "resume", "cv.pdf", []byte("not a pdf"))
		req := httptest.NewRequest(http.MethodPost, "/upload_resume/1", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		require.Empty(t, resumeRepo.resumes)
		require.Equal(t, []string{"resume_1_test.pdf"}, storage.deleted)
	})
}

package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
)

// StorageService keeps uploaded resume files on local disk.
type StorageService interface {
	SaveResume(file *multipart.FileHeader, candidateID uint) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return errors.Wrap(err, "failed to create upload directory")
	}
	return nil
}

// SaveResume stores the uploaded PDF under a unique name and returns the
// stored filename and full path.
func (s *storageService) SaveResume(file *multipart.FileHeader, candidateID uint) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", "", apperrors.Validation("invalid file extension %q, only .pdf is accepted", ext)
	}

	uniqueFilename := fmt.Sprintf("resume_%d_%s%s", candidateID, uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", errors.Wrap(err, "failed to save file")
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return errors.Wrap(err, "failed to delete file")
	}
	return nil
}

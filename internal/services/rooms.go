package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/gradeup-ai/gradeup-mvp/internal/apperrors"
	"github.com/gradeup-ai/gradeup-mvp/internal/config"
)

// RoomService creates real-time video rooms via the configured provider.
type RoomService interface {
	CreateRoom(ctx context.Context, name string) (string, error)
}

type roomService struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewRoomService(cfg config.RoomsConfig) RoomService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &roomService{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

type createRoomResponse struct {
	URL string `json:"url"`
}

func (r *roomService) CreateRoom(ctx context.Context, name string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"name": name,
		"properties": map[string]interface{}{
			"enable_chat": true,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize room request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create room request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", apperrors.Upstream("rooms", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Upstream("rooms", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Upstream("rooms", errors.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var room createRoomResponse
	if err := json.Unmarshal(body, &room); err != nil {
		return "", apperrors.Upstream("rooms", errors.Wrap(err, "failed to decode room response"))
	}
	if room.URL == "" {
		return "", apperrors.Upstream("rooms", errors.New("provider returned no room url"))
	}
	return room.URL, nil
}

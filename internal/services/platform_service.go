package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type displayTextRequest struct {
	Text       string            `json:"text"`
	StyleHints map[string]string `json:"style_hints,omitempty"`
}

type notificationRequest struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// PlatformService is the host platform's flair and messaging surface.
// Callers treat it as fire-and-forget: failures are logged, never allowed to
// roll back vote or consensus state.
type PlatformService interface {
	SetDisplayText(postID, text string, styleHints map[string]string) error
	SendNotification(userID, subject, body string) error
}

type platformService struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewPlatformService(baseURL, token string) PlatformService {
	return &platformService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		token:   token,
	}
}

func (s *platformService) SetDisplayText(postID, text string, styleHints map[string]string) error {
	return s.post(fmt.Sprintf("%s/posts/%s/flair", s.baseURL, postID), displayTextRequest{
		Text:       text,
		StyleHints: styleHints,
	})
}

func (s *platformService) SendNotification(userID, subject, body string) error {
	return s.post(fmt.Sprintf("%s/notifications", s.baseURL), notificationRequest{
		UserID:  userID,
		Subject: subject,
		Body:    body,
	})
}

func (s *platformService) post(url string, payload any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	request, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	request.Header.Add("Content-Type", "application/json; charset=utf-8")
	if s.token != "" {
		request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.token))
	}

	response, err := s.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("platform api returned status %d", response.StatusCode)
	}

	return nil
}

package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// EmailService delivers alerts through an emailjs-compatible HTTP API: a
// single POST with service/template identifiers and the template fields.
type EmailService struct {
	endpoint   string
	serviceID  string
	templateID string
	userID     string
	client     *http.Client
}

// EmailConfig holds the email collaborator settings
type EmailConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	UserID     string
	Timeout    time.Duration
}

// NewEmailService creates the HTTP email sender
func NewEmailService(cfg EmailConfig) *EmailService {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &EmailService{
		endpoint:   cfg.Endpoint,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		userID:     cfg.UserID,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Send posts the alert to the email service
func (s *EmailService) Send(ctx context.Context, fields TemplateFields) error {
	payload := map[string]any{
		"service_id":      s.serviceID,
		"template_id":     s.templateID,
		"user_id":         s.userID,
		"template_params": fields,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}
	return nil
}

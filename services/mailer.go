package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	appConfig "github.com/pawscare/vet-clinic-site/config"
)

// EmailMessage is a single outbound HTML email
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// HTTPMailer sends mail through a SendGrid v3 compatible JSON API
type HTTPMailer struct {
	apiURL     string
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// NewHTTPMailer creates a mailer from the mail settings in cfg
func NewHTTPMailer(cfg *appConfig.Config) (*HTTPMailer, error) {
	if cfg.MailAPIKey == "" || cfg.MailFromAddress == "" {
		return nil, fmt.Errorf("MAIL_API_KEY and MAIL_FROM_ADDRESS must be set")
	}

	return &HTTPMailer{
		apiURL:    cfg.MailAPIURL,
		apiKey:    cfg.MailAPIKey,
		fromEmail: cfg.MailFromAddress,
		fromName:  cfg.MailFromName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailPersonalization struct {
	To []mailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []mailPersonalization `json:"personalizations"`
	From             mailAddress           `json:"from"`
	Subject          string                `json:"subject"`
	Content          []mailContent         `json:"content"`
}

// Send posts msg to the mail API; any non-2xx status is an error
func (m *HTTPMailer) Send(ctx context.Context, msg EmailMessage) error {
	content := make([]mailContent, 0, 2)
	if msg.Text != "" {
		content = append(content, mailContent{Type: "text/plain", Value: msg.Text})
	}
	content = append(content, mailContent{Type: "text/html", Value: msg.HTML})

	payload := mailRequest{
		Personalizations: []mailPersonalization{{To: []mailAddress{{Email: msg.To, Name: msg.ToName}}}},
		From:             mailAddress{Email: m.fromEmail, Name: m.fromName},
		Subject:          msg.Subject,
		Content:          content,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail API error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// DisabledMailer logs instead of sending; used when no mail API key is configured
type DisabledMailer struct{}

func (DisabledMailer) Send(_ context.Context, msg EmailMessage) error {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Mail disabled, message not sent")
	return nil
}

// MockMailer records sent messages for tests
type MockMailer struct {
	mu   sync.Mutex
	sent []EmailMessage

	// Err, when set, is returned from every Send
	Err error
}

// NewMockMailer creates a mailer that records instead of sending
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// NewFailingMailer creates a mailer whose every Send fails
func NewFailingMailer() *MockMailer {
	return &MockMailer{Err: errors.New("mock: mail API unavailable")}
}

func (m *MockMailer) Send(_ context.Context, msg EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.Err
}

// Sent returns every message passed to Send, including failed attempts
func (m *MockMailer) Sent() []EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmailMessage(nil), m.sent...)
}

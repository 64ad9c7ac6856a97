// Package sms delivers text messages through an HTTP SMS gateway.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"booking/internal/core/ports"
)

// Sender implements ports.SMSSender against a JSON-over-HTTP gateway.
type Sender struct {
	client   *http.Client
	endpoint string
	apiKey   string
	from     string
}

// NewSender creates an SMS sender for the given gateway endpoint. The
// per-attempt timeout comes from the request context; the client timeout is
// only a backstop.
func NewSender(endpoint, apiKey, from string) *Sender {
	return &Sender{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
	}
}

type smsPayload struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

// SendSMS delivers one text message to the notification's phone number.
func (s *Sender) SendSMS(ctx context.Context, notification ports.Notification) error {
	payload := smsPayload{
		To:      notification.Phone,
		From:    s.from,
		Message: notification.Body,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sms marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms send: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sms gateway responded with status %d", resp.StatusCode)
	}

	return nil
}

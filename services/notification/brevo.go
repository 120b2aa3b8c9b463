package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tourmate/config"
	"tourmate/utils"

	"go.uber.org/zap"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer sends transactional email.
type Mailer interface {
	SendOTPEmail(ctx context.Context, email, otpCode string) error
}

// BrevoMailer implements Mailer against the Brevo transactional email API.
type BrevoMailer struct {
	APIKey      string
	SenderName  string
	SenderEmail string
	HTTPClient  *http.Client
}

// NewBrevoMailer creates a BrevoMailer from the loaded configuration.
func NewBrevoMailer() *BrevoMailer {
	return &BrevoMailer{
		APIKey:      config.AppConfig.BrevoAPIKey,
		SenderName:  config.AppConfig.BrevoSenderName,
		SenderEmail: config.AppConfig.BrevoSenderEmail,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmail struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// SendOTPEmail delivers a verification code to the given address.
func (m *BrevoMailer) SendOTPEmail(ctx context.Context, email, otpCode string) error {
	payload := brevoEmail{
		Sender:  brevoAddress{Name: m.SenderName, Email: m.SenderEmail},
		To:      []brevoAddress{{Email: email}},
		Subject: "Your TourMate Verification Code",
		HTMLContent: fmt.Sprintf(
			"<div style=\"font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;\">"+
				"<h2>Email Verification</h2><p>Your verification code is:</p>"+
				"<div style=\"background: #f4f4f4; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 5px;\">%s</div>"+
				"<p>This code will expire in 5 minutes.</p>"+
				"<p>If you didn't request this code, please ignore this email.</p></div>",
			otpCode),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("api-key", m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		utils.GetLogger().Error("Brevo email error",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", detail))
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"

	"palahian/internal/config"
)

// Mailer delivers plain-text mail.
type Mailer interface {
	Send(recipient, subject, message string) error
}

type SMTPMailer struct {
	config config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

func (m *SMTPMailer) Send(recipient, subject, message string) error {
	cfg := m.config
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}

	smtpAddr := cfg.SMTPHost + ":" + cfg.SMTPPort
	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if cfg.Username != "" {
		auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(cfg.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	emailBody := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		cfg.Sender, recipient, subject, message)

	if _, err = writer.Write([]byte(emailBody)); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		log.Printf("Failed to close SMTP connection properly: %v", err)
	}
	return nil
}

// VerificationEmail renders the subject and body of the signup verification mail.
func VerificationEmail(appURL, name, token string) (string, string) {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", appURL, token)
	body := fmt.Sprintf("Welcome to Palahian, %s!\r\n\r\n"+
		"Please verify your email address by opening the link below:\r\n\r\n%s\r\n\r\n"+
		"This link will expire in 24 hours. If you didn't create an account, you can ignore this email.",
		name, link)
	return "Verify your email address - Palahian", body
}

// backend/src/services/email_service.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/username/modelia/backend/src/config"
	"github.com/username/modelia/backend/src/logger"
)

func NewContactEmailService() ContactEmailService {
	if config.Cfg == nil {
		slog.Error("Configuration (config.Cfg) is nil. Email service will default to mock.")
		return &MockEmailService{}
	}

	provider := strings.ToLower(config.Cfg.EmailServiceProvider)
	logger.L.Info("Initializing email service", "provider", provider)

	switch provider {
	case "mailgun":
		if config.Cfg.MailgunDomain == "" || config.Cfg.MailgunPrivateAPIKey == "" || config.Cfg.SenderEmail == "" {
			logger.L.Warn("Mailgun configuration incomplete (Domain, API Key, or SenderEmail missing). Falling back to MockEmailService.")
			return &MockEmailService{}
		}
		mg := mailgun.NewMailgun(config.Cfg.MailgunDomain, config.Cfg.MailgunPrivateAPIKey)
		logger.L.Info("Mailgun client initialized", "domain", config.Cfg.MailgunDomain)
		return &MailgunEmailService{
			mg:          mg,
			senderEmail: config.Cfg.SenderEmail,
			senderName:  config.Cfg.SenderName,
			recipient:   config.Cfg.ContactRecipient,
		}
	case "smtp":
		if config.Cfg.SMTPServer == "" || config.Cfg.SMTPUser == "" || config.Cfg.SMTPPassword == "" || config.Cfg.SenderEmail == "" {
			logger.L.Warn("SMTP configuration incomplete. Falling back to MockEmailService.")
			return &MockEmailService{}
		}
		return &SMTPEmailService{
			SMTPServer:   config.Cfg.SMTPServer,
			SMTPPort:     config.Cfg.SMTPPort,
			SMTPUser:     config.Cfg.SMTPUser,
			SMTPPassword: config.Cfg.SMTPPassword,
			SenderEmail:  config.Cfg.SenderEmail,
			Recipient:    config.Cfg.ContactRecipient,
		}
	default:
		logger.L.Info("Defaulting to MockEmailService.")
		return &MockEmailService{}
	}
}

type SMTPEmailService struct {
	SMTPServer   string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SenderEmail  string
	Recipient    string
}

func (s *SMTPEmailService) SendContactMessage(name, replyTo, messageBody string) error {
	from := s.SenderEmail
	to := []string{s.Recipient}
	subject := fmt.Sprintf("Modelia contact form: %s", name)
	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", name, replyTo, messageBody)

	header := make(map[string]string)
	header["From"] = from
	header["To"] = s.Recipient
	header["Reply-To"] = replyTo
	header["Subject"] = subject
	header["MIME-version"] = "1.0"
	header["Content-Type"] = "text/plain; charset=\"UTF-8\""
	message := ""
	for k, v := range header {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n" + body
	auth := smtp.PlainAuth("", s.SMTPUser, s.SMTPPassword, s.SMTPServer)
	addr := fmt.Sprintf("%s:%d", s.SMTPServer, s.SMTPPort)
	err := smtp.SendMail(addr, auth, from, to, []byte(message))
	if err != nil {
		logger.L.Error("Failed to send contact email via SMTP", "error", err, "replyTo", replyTo)
		return fmt.Errorf("failed to send contact email via SMTP: %w", err)
	}
	logger.L.Info("Contact email sent successfully via SMTP", "replyTo", replyTo)
	return nil
}

type MailgunEmailService struct {
	mg          mailgun.Mailgun
	senderEmail string
	senderName  string
	recipient   string
}

func (s *MailgunEmailService) SendContactMessage(name, replyTo, messageBody string) error {
	from := fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail)
	subject := fmt.Sprintf("Modelia contact form: %s", name)

	plainTextBody := fmt.Sprintf(`New message from the contact form.

Name: %s
Email: %s

%s`, name, replyTo, messageBody)

	message := s.mg.NewMessage(from, subject, plainTextBody, s.recipient)
	message.SetReplyTo(replyTo)
	message.AddTag("contact-form")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()

	resp, id, err := s.mg.Send(ctx, message)
	if err != nil {
		logger.L.Error("Failed to send contact email via Mailgun", "error", err, "replyTo", replyTo, "mailgunResp", resp, "mailgunId", id)
		return fmt.Errorf("mailgun send failed: %w. Response: %s", err, resp)
	}

	logger.L.Info("Contact email sent successfully via Mailgun", "replyTo", replyTo, "id", id, "mailgunResp", resp)
	return nil
}

type MockEmailService struct{}

func (m *MockEmailService) SendContactMessage(name, replyTo, messageBody string) error {
	logger.L.Info("MockEmailService: Would send contact email.", "name", name, "replyTo", replyTo, "messageLength", len(messageBody))
	return nil
}

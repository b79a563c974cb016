package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"finanzas-backend/internal/config"
	"finanzas-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &emailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *emailService) SendDueSoonReminder(ctx context.Context, email, name, billName string, dueDate time.Time) error {
	subject := fmt.Sprintf("Recordatorio: %s vence pronto", billName)
	plainText := fmt.Sprintf("Hola %s, tu pago de %s vence el %s.", name, billName, dueDate.Format("02/01/2006"))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Pago próximo a vencer</h2>
				<p>Hola <strong>%s</strong>, tu pago de <strong>%s</strong> vence el <strong>%s</strong>.</p>
			</body>
		</html>
	`, name, billName, dueDate.Format("02/01/2006"))

	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, name, billName string, dueDate time.Time) error {
	subject := fmt.Sprintf("Pago vencido: %s", billName)
	plainText := fmt.Sprintf("Hola %s, tu pago de %s venció el %s.", name, billName, dueDate.Format("02/01/2006"))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Pago vencido</h2>
				<p>Hola <strong>%s</strong>, tu pago de <strong>%s</strong> venció el <strong>%s</strong>.</p>
			</body>
		</html>
	`, name, billName, dueDate.Format("02/01/2006"))

	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	logger.EnterMethod("emailService.send", "to", to, "subject", subject)

	if s.apiKey == "" {
		logger.Warn("No SendGrid API key configured, skipping email", "to", to, "subject", subject)
		logger.ExitMethod("emailService.send", "to", to, "skipped", true)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExitMethodWithError("emailService.send", err, "to", to)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExitMethodWithError("emailService.send", err, "to", to)
		return err
	}

	logger.ExitMethod("emailService.send", "to", to)
	return nil
}

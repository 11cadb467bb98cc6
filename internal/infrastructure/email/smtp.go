package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // base URL for links in email bodies
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendTicketAnsweredEmail(ctx context.Context, to, name, ticketSubject string, ticketID uint) error {
	ticketURL := fmt.Sprintf("%s/tickets/%d", s.config.BaseURL, ticketID)

	subject := "Your support ticket has a new response"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Our team has responded to your ticket <strong>%s</strong>.</p>
			<p><a href="%s">View the response</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, name, ticketSubject, ticketURL, ticketURL)

	plainBody := fmt.Sprintf(`
Hi %s,

Our team has responded to your ticket "%s".

View the response:
%s
	`, name, ticketSubject, ticketURL)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendWelcomeEmail(ctx context.Context, to, name string) error {
	subject := "Welcome aboard"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Your account is ready. Browse your classes and start learning.</p>
			<p><a href="%s">Open the app</a></p>
		</body>
		</html>
	`, name, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Hi %s,

Your account is ready. Browse your classes and start learning:
%s
	`, name, s.config.BaseURL)

	return s.sendEmail(ctx, to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

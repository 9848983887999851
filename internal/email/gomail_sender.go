package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider implements Provider over SMTP via gomail.
type GomailProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewGomailProvider(config Config) (*GomailProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &GomailProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *GomailProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
	}
	if email.HTMLBody != "" {
		if email.Body != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		} else {
			m.SetBody("text/html", email.HTMLBody)
		}
	}

	return p.dialer.DialAndSend(m)
}

func (p *GomailProvider) SendPasswordResetCode(to, code string) error {
	htmlBody, err := renderResetCode(code)
	if err != nil {
		return fmt.Errorf("failed to render reset template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Password Reset Code",
		HTMLBody: htmlBody,
	})
}

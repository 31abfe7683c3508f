package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendVerificationEmail(to, fullName, verificationURL string) error {
	body, err := render(verifyEmailTemplate, map[string]string{
		"FullName": fullName,
		"URL":      verificationURL,
	})
	if err != nil {
		return err
	}

	return m.send(to, "Verify Your Email", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(to, resetURL string) error {
	body, err := render(resetPasswordTemplate, map[string]string{
		"URL": resetURL,
	})
	if err != nil {
		return err
	}

	return m.send(to, "Password Reset Request", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}

	return buf.String(), nil
}

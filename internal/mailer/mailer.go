// Package mailer sends proposal emails over SMTP. Settings come from the
// mail_setup row saved through the admin screen; the config file values only
// apply until that row exists.
package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strconv"

	"amc-backend/internal/config"
	"amc-backend/internal/models"
	"amc-backend/internal/repositories"
)

type Mailer struct {
	cfg  *config.Config
	repo *repositories.MailSetupRepository
}

func New(cfg *config.Config, repo *repositories.MailSetupRepository) *Mailer {
	return &Mailer{cfg: cfg, repo: repo}
}

// settings resolves the effective SMTP configuration. The database row always
// wins; config values fill in only when no row has been saved.
func (m *Mailer) settings(ctx context.Context) (*models.MailSetup, error) {
	setup, err := m.repo.Get(ctx)
	if err == nil && setup.SMTPHost != "" {
		return setup, nil
	}

	if m.cfg.SMTP.Host == "" {
		return nil, errors.New("mail setup is not configured")
	}
	return &models.MailSetup{
		SMTPHost:     m.cfg.SMTP.Host,
		SMTPPort:     m.cfg.SMTP.Port,
		SMTPUser:     m.cfg.SMTP.User,
		SMTPPassword: m.cfg.SMTP.Password,
		EnableSSL:    m.cfg.SMTP.EnableSSL,
		SenderName:   m.cfg.SMTP.SenderName,
		SenderEmail:  m.cfg.SMTP.SenderEmail,
	}, nil
}

// Send delivers one HTML message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	setup, err := m.settings(ctx)
	if err != nil {
		return err
	}

	sender := setup.SenderEmail
	if sender == "" {
		sender = setup.SMTPUser
	}
	fromHeader := sender
	if setup.SenderName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", setup.SenderName, sender)
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		fromHeader, to, subject, htmlBody)

	addr := setup.SMTPHost + ":" + strconv.Itoa(setup.SMTPPort)
	auth := smtp.PlainAuth("", setup.SMTPUser, setup.SMTPPassword, setup.SMTPHost)

	if setup.EnableSSL {
		return sendImplicitTLS(addr, setup.SMTPHost, auth, sender, to, []byte(message))
	}
	return smtp.SendMail(addr, auth, sender, []string{to}, []byte(message))
}

// sendImplicitTLS handles servers that expect TLS from the first byte
// (typically port 465). smtp.SendMail only covers STARTTLS.
func sendImplicitTLS(addr, host string, auth smtp.Auth, from, to string, message []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

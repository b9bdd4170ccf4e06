package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"
	gomail "gopkg.in/mail.v2"
)

var log = logging.MustGetLogger("log")

// sender is the part of *gomail.Dialer the SMTP mailer needs.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPConfig describes the SMTP relay used for report delivery.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Timeout    time.Duration
	PreviewURL string
}

// SMTPMailer delivers mail through an SMTP relay. The delivery reference is
// the generated Message-ID, or a preview link when PreviewURL is set.
type SMTPMailer struct {
	sender     sender
	domain     string
	previewURL string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}
	return &SMTPMailer{
		sender:     d,
		domain:     cfg.Host,
		previewURL: cfg.PreviewURL,
	}
}

func (s *SMTPMailer) SendMail(ctx context.Context, from, to, subject, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", id, s.domain))
	m.SetBody("text/plain", body)

	if err := s.sender.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp delivery to %s: %w", to, err)
	}
	return reference(s.previewURL, id), nil
}

// LogMailer writes messages to the log instead of delivering them. It is
// used when no SMTP relay is configured.
type LogMailer struct {
	previewURL string
}

func NewLogMailer(previewURL string) *LogMailer {
	return &LogMailer{previewURL: previewURL}
}

func (l *LogMailer) SendMail(_ context.Context, from, to, subject, body string) (string, error) {
	id := uuid.NewString()
	log.Infof("mail %s from=%s to=%s subject=%q\n%s", id, from, to, subject, body)
	return reference(l.previewURL, id), nil
}

func reference(previewURL, id string) string {
	if previewURL == "" {
		return id
	}
	return strings.TrimRight(previewURL, "/") + "/" + id
}

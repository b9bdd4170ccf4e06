package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPMailerSendsMessage(t *testing.T) {
	fs := &fakeSender{}
	m := &SMTPMailer{sender: fs, domain: "smtp.example"}

	ref, err := m.SendMail(context.Background(), "reports@venue.example", "owner@cafe.example", "Venue report", "Orders: 1")
	require.NoError(t, err)

	_, err = uuid.Parse(ref)
	assert.NoError(t, err, "reference should be the message uuid")

	require.Len(t, fs.sent, 1)
	msg := fs.sent[0]
	assert.Equal(t, []string{"reports@venue.example"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"owner@cafe.example"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Venue report"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"<" + ref + "@smtp.example>"}, msg.GetHeader("Message-ID"))
}

func TestSMTPMailerPreviewReference(t *testing.T) {
	m := &SMTPMailer{sender: &fakeSender{}, domain: "smtp.example", previewURL: "http://preview/"}

	ref, err := m.SendMail(context.Background(), "a@b.example", "c@d.example", "s", "b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "http://preview/"), ref)
	assert.NotContains(t, ref, "preview//")
}

func TestSMTPMailerDeliveryError(t *testing.T) {
	m := &SMTPMailer{sender: &fakeSender{err: errors.New("530 auth required")}, domain: "smtp.example"}

	ref, err := m.SendMail(context.Background(), "a@b.example", "c@d.example", "s", "b")
	assert.Empty(t, ref)
	assert.ErrorContains(t, err, "530 auth required")
}

func TestSMTPMailerCancelledContext(t *testing.T) {
	fs := &fakeSender{}
	m := &SMTPMailer{sender: fs, domain: "smtp.example"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.SendMail(ctx, "a@b.example", "c@d.example", "s", "b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fs.sent)
}

func TestNewSMTPMailer(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example", Port: 2525, Username: "u", Password: "p"})

	d, ok := m.sender.(*gomail.Dialer)
	require.True(t, ok)
	assert.Equal(t, "smtp.example", d.Host)
	assert.Equal(t, 2525, d.Port)
	assert.Equal(t, "u", d.Username)
}

func TestLogMailer(t *testing.T) {
	ref, err := NewLogMailer("").SendMail(context.Background(), "a@b.example", "c@d.example", "s", "b")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	ref, err = NewLogMailer("http://localhost:1080/messages").SendMail(context.Background(), "a@b.example", "c@d.example", "s", "b")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "http://localhost:1080/messages/"), ref)
}

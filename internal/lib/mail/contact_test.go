package mail

import (
	"bytes"
	"context"
	"debaren/internal/config"
	"debaren/internal/lib/events"
	"debaren/internal/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (s *fakeSender) Send(_ context.Context, msgs ...*gomail.Msg) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msgs...)
	return nil
}

var (
	testMail = config.Mail{From: "Debaren <no-reply@debaren.com>", ContactTo: "team@debaren.com"}
	testSite = config.Site{
		Brand:        "Debaren",
		SupportEmail: "support@debaren.com",
		Phone:        "+27 12 345 6789",
		Address:      "Sandton City, Johannesburg",
	}
	testMessage = models.ContactMessage{ID: 4, Name: "Thandi", Email: "thandi@example.com", Message: "Is the hall free in May?"}
)

func rendered(t *testing.T, msg *gomail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestContactMailer_Publish(t *testing.T) {
	sender := &fakeSender{}
	m := NewContactMailer(sender, testMail, testSite)

	err := m.Publish(context.Background(), events.New(events.ContactReceived, "contact_message", 4, testMessage))
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	notice, reply := sender.sent[0], sender.sent[1]

	to, err := notice.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"team@debaren.com"}, to)
	assert.Equal(t, []string{"[Debaren Contact] New message from Thandi"}, notice.GetGenHeader(gomail.HeaderSubject))
	body := rendered(t, notice)
	assert.Contains(t, body, "Is the hall free in May?")
	assert.Contains(t, body, "thandi@example.com")

	to, err = reply.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"thandi@example.com"}, to)
	assert.Equal(t, []string{"Thank you for contacting Debaren!"}, reply.GetGenHeader(gomail.HeaderSubject))
	body = rendered(t, reply)
	assert.Contains(t, body, "text/html")
	assert.Contains(t, body, "Hi Thandi")
	assert.Contains(t, body, "WhatsApp: +27 12 345 6789")
}

func TestContactMailer_WithoutTeamAddress(t *testing.T) {
	sender := &fakeSender{}
	cfg := testMail
	cfg.ContactTo = ""
	m := NewContactMailer(sender, cfg, testSite)

	err := m.Publish(context.Background(), events.New(events.ContactReceived, "contact_message", 4, &testMessage))
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	to, err := sender.sent[0].GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"thandi@example.com"}, to)
}

func TestContactMailer_IgnoresOtherEvents(t *testing.T) {
	sender := &fakeSender{err: errors.New("must not be called")}
	m := NewContactMailer(sender, testMail, testSite)

	assert.NoError(t, m.Publish(context.Background(), events.Changed("venues", "create", 1)))
	assert.NoError(t, m.Publish(context.Background(), events.New(events.BookingCreated, "booking", 2, nil)))
}

func TestContactMailer_Errors(t *testing.T) {
	t.Run("send failure", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("relay refused")}
		m := NewContactMailer(sender, testMail, testSite)

		err := m.Publish(context.Background(), events.New(events.ContactReceived, "contact_message", 4, testMessage))
		assert.ErrorIs(t, err, sender.err)
	})

	t.Run("unexpected payload", func(t *testing.T) {
		m := NewContactMailer(&fakeSender{}, testMail, testSite)

		err := m.Publish(context.Background(), events.New(events.ContactReceived, "contact_message", 4, "oops"))
		assert.ErrorContains(t, err, "unexpected payload string")
	})
}

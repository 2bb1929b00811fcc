package mail

import (
	"context"
	"debaren/internal/config"
	"debaren/internal/lib/events"
	"debaren/internal/models"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/contact_autoreply.html
var templatesFS embed.FS

var autoreply = template.Must(template.ParseFS(templatesFS, "templates/contact_autoreply.html"))

type Sender interface {
	Send(ctx context.Context, msgs ...*gomail.Msg) error
}

// ContactMailer reacts to contact.received events: it notifies the site team
// and sends an autoreply to the visitor. Other events are ignored.
type ContactMailer struct {
	sender  Sender
	from    string
	adminTo string
	site    config.Site
}

func NewContactMailer(sender Sender, cfg config.Mail, site config.Site) *ContactMailer {
	return &ContactMailer{
		sender:  sender,
		from:    cfg.From,
		adminTo: cfg.ContactTo,
		site:    site,
	}
}

func (m *ContactMailer) Publish(ctx context.Context, e events.Event) error {
	const op = "mail.ContactMailer.Publish"

	if e.Type != events.ContactReceived {
		return nil
	}

	var msg models.ContactMessage
	switch data := e.Data.(type) {
	case models.ContactMessage:
		msg = data
	case *models.ContactMessage:
		msg = *data
	default:
		return fmt.Errorf("%s: unexpected payload %T", op, e.Data)
	}

	var out []*gomail.Msg

	if m.adminTo != "" {
		notice, err := m.notice(msg)
		if err != nil {
			return fmt.Errorf("%s: team notice: %w", op, err)
		}
		out = append(out, notice)
	}

	reply, err := m.reply(msg)
	if err != nil {
		return fmt.Errorf("%s: autoreply: %w", op, err)
	}
	out = append(out, reply)

	if err = m.sender.Send(ctx, out...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *ContactMailer) notice(msg models.ContactMessage) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, err
	}
	if err := out.To(m.adminTo); err != nil {
		return nil, err
	}
	if err := out.ReplyTo(msg.Email); err != nil {
		return nil, err
	}

	out.Subject(fmt.Sprintf("[%s Contact] New message from %s", m.site.Brand, msg.Name))
	out.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"You have received a new contact form submission from %s:\n\nName: %s\nEmail: %s\nMessage:\n%s\n\nView this message in the admin panel for full details.\n",
		m.site.Brand, msg.Name, msg.Email, msg.Message,
	))

	return out, nil
}

func (m *ContactMailer) reply(msg models.ContactMessage) (*gomail.Msg, error) {
	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, err
	}
	if err := out.To(msg.Email); err != nil {
		return nil, err
	}

	out.Subject(fmt.Sprintf("Thank you for contacting %s!", m.site.Brand))
	out.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nThank you for contacting %s. We'll reply soon.\n", msg.Name, m.site.Brand,
	))

	data := struct {
		config.Site
		Name   string
		MapURL string
		Year   int
	}{
		Site:   m.site,
		Name:   msg.Name,
		MapURL: "https://www.openstreetmap.org/search?" + url.Values{"query": {m.site.Address}}.Encode(),
		Year:   time.Now().Year(),
	}
	if err := out.AddAlternativeHTMLTemplate(autoreply, data); err != nil {
		return nil, err
	}

	return out, nil
}

// Package mail delivers reminders by email.
package mail

import (
	"context"
	"fmt"
	"html"

	"eventPlanner/internal/notifier"

	"gopkg.in/gomail.v2"
)

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Sink struct {
	sender Sender
	from   string
	to     string
}

func New(sender Sender, from, to string) *Sink {
	return &Sink{sender: sender, from: from, to: to}
}

// NewSMTP builds a Sink that talks to an SMTP server.
func NewSMTP(host string, port int, username, password, from, to string) *Sink {
	return New(gomail.NewDialer(host, port, username, password), from, to)
}

func (s *Sink) Notify(ctx context.Context, r notifier.Reminder) error {
	const op = "mail.Notify"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sender.DialAndSend(s.message(r)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Sink) message(r notifier.Reminder) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", r.Headline())
	m.SetBody("text/plain", r.Body()+"\n\nStarts "+r.StartsAt.Format("Mon, 02 Jan 2006 15:04 MST"))
	m.AddAlternative("text/html", fmt.Sprintf("<h2>%s</h2><p>%s</p>",
		html.EscapeString(r.Headline()), html.EscapeString(r.Body())))

	return m
}

package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

const senderName = "JivIT Solutions"

// Notifier delivers application notices over SMTP.
type Notifier struct {
	from   string
	send   func(*gomail.Message) error
	logger *zap.Logger
}

// NewNotifier creates an SMTP notifier from cfg
func NewNotifier(cfg config.MailConfig, logger *zap.Logger) *Notifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Notifier{
		from:   cfg.From,
		send:   func(m *gomail.Message) error { return dialer.DialAndSend(m) },
		logger: logger,
	}
}

// NotifyNewApplication emails to about a newly received application.
func (n *Notifier) NotifyNewApplication(ctx context.Context, to string, application *model.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.from, senderName))
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", application.Email)
	m.SetHeader("Subject", applicationSubject(application))
	m.SetBody("text/plain", applicationText(application))
	m.AddAlternative("text/html", applicationHTML(application))

	if err := n.send(m); err != nil {
		return fmt.Errorf("failed to send application notice: %w", err)
	}

	n.logger.Debug("Application notice sent",
		zap.String("application_id", application.ID),
		zap.String("to", to))
	return nil
}

func applicationSubject(a *model.Application) string {
	return fmt.Sprintf("New application: %s %s (%s)", a.FirstName, a.LastName, a.SourceType)
}

func applicationText(a *model.Application) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new application was received.\n\n")
	fmt.Fprintf(&b, "Name: %s %s\n", a.FirstName, a.LastName)
	fmt.Fprintf(&b, "Email: %s\n", a.Email)
	if a.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", a.Phone)
	}
	fmt.Fprintf(&b, "Regarding: %s\n", a.SourceType)
	if a.ResumeURL != "" {
		fmt.Fprintf(&b, "Resume: %s\n", a.ResumeURL)
	}
	if a.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Message)
	}
	return b.String()
}

func applicationHTML(a *model.Application) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf(`<tr><td style="padding: 4px 12px 4px 0; color: #666666;">%s</td><td style="padding: 4px 0;">%s</td></tr>`,
			label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString(`<html><body style="font-family: sans-serif; color: #333333;">`)
	b.WriteString(`<h2 style="margin: 0 0 16px 0;">New application</h2>`)
	b.WriteString(`<table style="border-collapse: collapse;">`)
	b.WriteString(row("Name", a.FirstName+" "+a.LastName))
	b.WriteString(row("Email", a.Email))
	b.WriteString(row("Phone", a.Phone))
	b.WriteString(row("Regarding", a.SourceType))
	b.WriteString(row("Resume", a.ResumeURL))
	b.WriteString(`</table>`)
	if a.Message != "" {
		fmt.Fprintf(&b, `<p style="white-space: pre-wrap; margin-top: 16px;">%s</p>`, html.EscapeString(a.Message))
	}
	b.WriteString(`</body></html>`)
	return b.String()
}

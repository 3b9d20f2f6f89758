package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nadeem-mohammad0021/assistant/config"

	"gopkg.in/gomail.v2"
)

// SMTPEmailChannel delivers reminder emails through the configured
// SMTP relay. Unlike the push channel this is synchronous: the caller
// uses the returned error to decide whether delivery counted.
type SMTPEmailChannel struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPEmailChannel builds the email channel from AppConfig.
func NewSMTPEmailChannel() *SMTPEmailChannel {
	cfg := config.AppConfig
	return &SMTPEmailChannel{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

// Notify sends one reminder email. A nil return means the relay
// accepted the message.
func (c *SMTPEmailChannel) Notify(ctx context.Context, address, displayName, title, description string, dueAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetAddressHeader("To", address, displayName)
	m.SetHeader("Subject", fmt.Sprintf("⏰ Reminder: %s", title))
	m.SetBody("text/html", renderReminderEmail(displayName, title, description, dueAt))

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email to %s: %w", address, err)
	}
	return nil
}

func renderReminderEmail(displayName, title, description string, dueAt time.Time) string {
	first := "there"
	if fields := strings.Fields(displayName); len(fields) > 0 {
		first = fields[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", first)
	fmt.Fprintf(&b, "<p>Your reminder <strong>%s</strong> is due at %s.</p>", title, dueAt.Format("3:04 PM, Jan 2"))
	if description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", description)
	}
	b.WriteString("<p>— Assistant</p>")
	return b.String()
}

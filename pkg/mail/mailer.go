// Package mail sends admin notification emails over SMTP. The mailer is a
// no-op unless every SMTP setting is configured, so deployments without a
// relay run unchanged.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/terroir-ai/backend/internal/model"
)

// Mailer delivers plain-text notifications to a single admin recipient.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string
	baseURL  string
}

// New creates a Mailer. Any empty host/port/username/password/to disables it.
func New(host string, port int, username, password, to, baseURL string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
		baseURL:  baseURL,
	}
}

// Enabled reports whether the mailer has everything it needs to send.
func (m *Mailer) Enabled() bool {
	return m.host != "" && m.port != 0 && m.username != "" && m.password != "" && m.to != ""
}

// NotifyContact emails the admin about a new contact form submission.
func (m *Mailer) NotifyContact(ctx context.Context, sub *model.ContactSubmission) error {
	subject := fmt.Sprintf("New contact: %s (%s)", sub.Name, sub.Email)
	return m.send(ctx, subject, contactBody(sub, m.baseURL))
}

// NotifyWaitlist emails the admin about a new waitlist signup.
func (m *Mailer) NotifyWaitlist(ctx context.Context, entry *model.WaitlistEntry) error {
	subject := fmt.Sprintf("New pilot signup: %s", entry.Email)
	return m.send(ctx, subject, waitlistBody(entry, m.baseURL))
}

func contactBody(sub *model.ContactSubmission, baseURL string) string {
	var b strings.Builder
	b.WriteString("New contact form submission on Terroir AI\n\n")
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Company: %s\n", orDash(sub.Company))
	fmt.Fprintf(&b, "Phone: %s\n", orDash(sub.Phone))
	fmt.Fprintf(&b, "Acreage: %s\n", orDash(sub.Acreage))
	fmt.Fprintf(&b, "Crop Type: %s\n", orDash(sub.CropType))
	fmt.Fprintf(&b, "Source: %s\n", sub.Source)
	fmt.Fprintf(&b, "Date: %s\n\n", sub.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "Message:\n%s\n\n", sub.Message)
	fmt.Fprintf(&b, "---\nView all submissions: %s/admin", baseURL)
	return b.String()
}

func waitlistBody(entry *model.WaitlistEntry, baseURL string) string {
	var b strings.Builder
	b.WriteString("New waitlist/pilot signup on Terroir AI\n\n")
	fmt.Fprintf(&b, "Email: %s\n", entry.Email)
	fmt.Fprintf(&b, "Name: %s\n", orDash(entry.Name))
	fmt.Fprintf(&b, "Company: %s\n", orDash(entry.Company))
	fmt.Fprintf(&b, "Interest: %s\n", entry.Interest)
	fmt.Fprintf(&b, "Date: %s\n\n", entry.CreatedAt.UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "---\nView all submissions: %s/admin", baseURL)
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// send delivers one message over STARTTLS SMTP. The context bounds the dial;
// once connected the SMTP exchange runs to completion.
func (m *Mailer) send(ctx context.Context, subject, body string) error {
	if !m.Enabled() {
		slog.Debug("smtp not configured, skipping email", "subject", subject)
		return nil
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if err := c.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.Mail(m.username); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(m.to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	msg := fmt.Sprintf("From: Terroir AI <%s>\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.username, m.to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	if err := c.Quit(); err != nil {
		return fmt.Errorf("smtp quit: %w", err)
	}
	slog.Info("notification email sent", "subject", subject)
	return nil
}

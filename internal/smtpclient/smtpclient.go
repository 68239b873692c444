// Package smtpclient sends MIME multipart/alternative email over SMTP,
// choosing STARTTLS (port 587) or direct TLS (port 465) by convention.
// Adapted from the dossier delivery service's email transport, trimmed to
// the send-one-message shape the alert dispatcher needs — no dossier
// template rendering lives here, that is the caller's job.
package smtpclient

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"
)

// Config holds SMTP server configuration for email delivery.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// Message is one outbound email with both a plain-text and an HTML body.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Client sends Messages over SMTP using the configured host/port/auth.
type Client struct {
	cfg Config
}

// New builds a Client.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Send delivers msg. When UseTLS is false the client dials the configured
// port without authentication, for talking to a local dev relay (e.g.
// MailHog); net/smtp.SendMail still upgrades to STARTTLS if the relay
// advertises it.
func (c *Client) Send(msg Message) error {
	body := buildMIMEMessage(c.cfg, msg)
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	if !c.cfg.UseTLS {
		return smtp.SendMail(addr, nil, c.cfg.FromEmail, []string{msg.To}, []byte(body))
	}

	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	if c.cfg.Port == 465 {
		return c.sendWithDirectTLS(addr, auth, msg.To, []byte(body))
	}
	return c.sendWithSTARTTLS(addr, auth, msg.To, []byte(body))
}

func (c *Client) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Quit()

	tlsConfig := &tls.Config{ServerName: c.cfg.Host}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	return deliver(client, c.cfg.FromEmail, to, msg)
}

func (c *Client) sendWithDirectTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	tlsConfig := &tls.Config{ServerName: c.cfg.Host}
	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("tls dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	return deliver(client, c.cfg.FromEmail, to, msg)
}

func deliver(client *smtp.Client, from, to string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	defer writer.Close()
	if _, err := writer.Write(msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func buildMIMEMessage(cfg Config, msg Message) string {
	boundary := "boundary-newsscope-" + fmt.Sprintf("%d", time.Now().UnixNano())

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	b.WriteString(msg.TextBody)
	b.WriteString("\r\n\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\r\n\r\n")
	b.WriteString(msg.HTMLBody)
	b.WriteString("\r\n\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.String()
}

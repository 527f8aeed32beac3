package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/five82/lms/internal/config"
)

// implicitTLSPort is the SMTPS port; other ports upgrade with STARTTLS when
// the server offers it.
const implicitTLSPort = 465

// SMTPSender delivers messages through an SMTP relay.
type SMTPSender struct {
	cfg config.SMTP
}

// Ensure SMTPSender implements Sender at compile time.
var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender returns a sender for the configured relay.
func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers msg. The context deadline bounds the whole SMTP session.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	from := parseAddress(s.cfg.Sender())
	to := parseAddress(msg.To)
	if to == "" {
		return fmt.Errorf("message has no recipient")
	}

	client, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("connect smtp: %w", err)
	}
	defer func() { _ = client.Close() }()

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write([]byte(buildMessage(s.cfg.Sender(), msg.To, msg.Subject, msg.Body))); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	return client.Quit()
}

func (s *SMTPSender) dial(ctx context.Context) (*smtp.Client, error) {
	host := s.cfg.Host
	addr := net.JoinHostPort(host, strconv.Itoa(s.cfg.Port))

	if s.cfg.Port == implicitTLSPort {
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: host}}
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, err
		}
		setDeadline(ctx, conn)
		client, err := smtp.NewClient(conn, host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return client, nil
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	setDeadline(ctx, conn)
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

// setDeadline carries the context deadline onto conn, which also covers the
// STARTTLS session layered on top of it.
func setDeadline(ctx context.Context, conn net.Conn) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
}

func buildMessage(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

// parseAddress extracts the bare address from "Name <addr>".
func parseAddress(value string) string {
	start := strings.Index(value, "<")
	end := strings.Index(value, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(value[start+1 : end])
	}
	return strings.TrimSpace(value)
}

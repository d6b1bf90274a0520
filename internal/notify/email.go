package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier delivers notifications over SMTP. Authentication is only
// used when a username is configured, so local relays such as Mailpit work.
type EmailNotifier struct {
	addr      string
	host      string
	from      string
	username  string
	password  string
	defaultTo string
	sendMail  sendMailFunc
}

func NewEmailNotifier(host, port, username, password, from, defaultTo string) *EmailNotifier {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@barbershop.local"
	}
	return &EmailNotifier{
		addr:      fmt.Sprintf("%s:%s", host, port),
		host:      host,
		from:      from,
		username:  username,
		password:  password,
		defaultTo: strings.TrimSpace(defaultTo),
		sendMail:  smtp.SendMail,
	}
}

func (n *EmailNotifier) Channel() string {
	return "email"
}

func (n *EmailNotifier) Send(ctx context.Context, msg Message) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		to = n.defaultTo
	}
	if to == "" {
		return ErrNoRecipient
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	body := buildMessage(n.from, to, msg.Subject, msg.Body)
	if err := n.sendMail(n.addr, auth, n.from, []string{to}, []byte(body)); err != nil {
		return fmt.Errorf("error al enviar el correo: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

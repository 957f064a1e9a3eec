package infra

import (
	"fmt"
	"net/smtp"

	"github.com/NicolasMR761/InventarioJH/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for the plain-text notification mails.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendReporteCierre mails the end-of-day closure report to the owner.
func (m *Mailer) SendReporteCierre(to, subject, body string) error {
	return m.send(to, subject, body)
}

// SendAlertaStock mails a low-stock notification to the owner.
func (m *Mailer) SendAlertaStock(to, subject, body string) error {
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}

// Package service holds the outbound collaborators of the app: the
// transactional mailer and the image store.
package service

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer sends the transactional mails of the signup and reset flows.
// Sends block the request and their failure is surfaced to the user,
// never treated as fatal.
type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	senderName string
}

func NewMailer() *Mailer {
	return &Mailer{
		host:       viper.GetString("mail.host"),
		port:       viper.GetInt("mail.port"),
		username:   viper.GetString("mail.username"),
		password:   viper.GetString("mail.password"),
		senderName: viper.GetString("mail.sender_name"),
	}
}

func (m *Mailer) SendVerification(to, token string) error {
	link := absoluteURL("/verify?token=" + token)

	body := fmt.Sprintf(`Welcome to Ravens & Quill!

Please verify your account by clicking the link below:
%s

If you did not sign up, you can safely ignore this message.
`, link)

	return m.send(to, "Verify Your Account – Ravens & Quill", body)
}

func (m *Mailer) SendReset(to, token string) error {
	link := absoluteURL("/reset/" + token)

	return m.send(to, "Ravens & Quill – Reset Your Archive Key",
		"Use this link to reset: "+link)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.username, m.senderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)

	return d.DialAndSend(msg)
}

func absoluteURL(path string) string {
	scheme, defPort := "http", "80"
	if viper.GetBool("host.ssl_enabled") {
		scheme, defPort = "https", "443"
	}

	domain := viper.GetString("host.domain")

	// host.domain may already carry a port (reverse-proxy setups). Only
	// append the listen port when it differs from the scheme default.
	if port := viper.GetString("host.port"); !strings.Contains(domain, ":") &&
		port != "" && port != defPort {
		domain += ":" + port
	}

	return fmt.Sprintf("%s://%s%s", scheme, domain, path)
}

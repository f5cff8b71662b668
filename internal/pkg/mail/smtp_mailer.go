package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
)

// SendMail sends one HTML email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = "no-reply@stromsjef.no"
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendContactAck confirms receipt of a contact form submission
func SendContactAck(to, name string) error {
	body := fmt.Sprintf(
		"<p>Hei %s,</p><p>Takk for henvendelsen din. Vi svarer som regel innen en virkedag.</p><p>Hilsen Strømsjef</p>",
		name,
	)
	return SendMail(to, "Vi har mottatt meldingen din", body)
}

// SendNewsletterConfirmation welcomes a new newsletter subscriber
func SendNewsletterConfirmation(to string) error {
	body := "<p>Takk for at du meldte deg på nyhetsbrevet vårt!</p>" +
		"<p>Du får beskjed når strømavtalene endrer seg i din sone.</p>" +
		"<p>Hilsen Strømsjef</p>"
	return SendMail(to, "Velkommen til Strømsjef-nyhetsbrevet", body)
}

package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
)

// ContactEmailData feeds the admin-notification template for contact messages
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<h3>New contact form submission</h3>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p>{{.Message}}</p>
`))

// SendContactEmail notifies the admin address about a new contact message.
// The caller persists the message first; a failed send is logged, not fatal.
func SendContactEmail(data ContactEmailData) error {
	from := os.Getenv("FROM_EMAIL")
	to := os.Getenv("ADMIN_EMAIL")
	if from == "" || to == "" {
		return fmt.Errorf("FROM_EMAIL and ADMIN_EMAIL must be set to send mail")
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: New Contact Form Submission: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		from,
		to,
		data.Subject,
		body.String(),
	)

	auth := smtp.PlainAuth(
		"",
		from,
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("SMTP_HOST"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDR"), auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

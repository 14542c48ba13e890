package utils

import (
	"bytes"
	"campus_cms/config"
	"html/template"
	"log"

	"gopkg.in/gomail.v2"
)

// ResetPasswordData feeds the reset email template.
type ResetPasswordData struct {
	Username  string
	ResetLink string
	ExpiresIn string
}

var resetMailTemplate = template.Must(template.New("reset").Parse(`
<p>Hello {{.Username}},</p>
<p>A password reset was requested for your account. The link below is valid for {{.ExpiresIn}}:</p>
<p><a href="{{.ResetLink}}">{{.ResetLink}}</a></p>
<p>If you did not request this, you can ignore this message.</p>
`))

// SendResetPasswordEmail sends the reset link asynchronously so the request
// does not wait on SMTP. Failures are logged and otherwise dropped.
func SendResetPasswordEmail(to string, data ResetPasswordData) {
	go func() {
		var body bytes.Buffer
		if err := resetMailTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render reset email: %v", err)
			return
		}

		app := config.Current()
		if app.SMTPHost == "" {
			log.Printf("SMTP not configured, skipping reset email to %s", to)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", app.SMTPFrom)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Password reset")
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(app.SMTPHost, app.SMTPPort, app.SMTPUsername, app.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send reset email: %v", err)
		}
	}()
}

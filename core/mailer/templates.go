package mailer

import (
	"bytes"
	"html/template"
)

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background:#f6f6f6; padding:24px;">
    <div style="max-width:480px; margin:auto; background:#ffffff; border-radius:8px; padding:24px;">
      <h2 style="color:#4f46e5;">MyEvent</h2>
      <p>Tu código de verificación es:</p>
      <p style="font-size:32px; letter-spacing:8px; font-weight:bold;">{{.Code}}</p>
      <p>El código expira en {{.Minutes}} minutos.</p>
      <p style="color:#888; font-size:12px;">Si no solicitaste este código, ignora este mensaje.</p>
    </div>
  </body>
</html>`))

// VerificationEmail renders the verification code message for to.
func VerificationEmail(to, code string, minutes int) (EmailMessage, error) {
	var buf bytes.Buffer
	err := verificationTemplate.Execute(&buf, struct {
		Code    string
		Minutes int
	}{code, minutes})
	if err != nil {
		return EmailMessage{}, err
	}
	return EmailMessage{
		To:      []string{to},
		Subject: "Tu código de verificación - MyEvent",
		Body:    buf.String(),
		IsHTML:  true,
	}, nil
}

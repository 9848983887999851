package email

import (
	"bytes"
	"html/template"
)

// resetCodeTemplate renders the password-reset code mail.
var resetCodeTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 20px auto; background-color: #ffffff; padding: 20px; border-radius: 8px; }
    .header { color: #333333; text-align: center; padding-bottom: 20px; border-bottom: 1px solid #dddddd; }
    .code { font-size: 24px; font-weight: bold; text-align: center; padding: 12px; background-color: #f2f2f2; border: 1px dashed #cccccc; margin: 20px 0; color: #333; }
    .footer { text-align: center; font-size: 12px; color: #777777; padding-top: 20px; border-top: 1px solid #dddddd; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h2>Password Reset Request</h2></div>
    <div class="content">
      <p>Hello there,</p>
      <p>You requested a password reset. Please use the following verification code to reset your password:</p>
      <div class="code">{{.Code}}</div>
      <p>This code will expire in 10 minutes.</p>
      <p>If you did not request a password reset, you can safely ignore this email.</p>
    </div>
    <div class="footer"><p>Thank you for using our application!</p></div>
  </div>
</body>
</html>`))

type resetCodeData struct {
	Code string
}

func renderResetCode(code string) (string, error) {
	var buf bytes.Buffer
	if err := resetCodeTemplate.Execute(&buf, resetCodeData{Code: code}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends password reset codes over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

// NewMailer creates a mailer that authenticates as user against host:port.
func NewMailer(host string, port int, user, pass string) *Mailer {
	return &Mailer{
		from:   user,
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

// SendResetCode emails the reset code to the given address.
func (m *Mailer) SendResetCode(email, code string) error {
	if err := m.dialer.DialAndSend(newResetCodeMessage(m.from, email, code)); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}
	return nil
}

func newResetCodeMessage(from, to, code string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Hospital Management password reset code")

	msg.SetBody("text/plain", "Your password reset code is: "+code+"\nThe code expires in 15 minutes.")
	msg.AddAlternative("text/html", `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Password reset</h2>
	<p>Your password reset code is:</p>
	<p style="font-weight: bold; font-size: 20px;">`+code+`</p>
	<p>The code expires in 15 minutes. If you did not request a reset, ignore this email.</p>
</body>
</html>`)

	return msg
}

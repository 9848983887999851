package email

// Provider sends transactional mail. Implementations must be safe for
// concurrent use; callers treat sends as best-effort.
type Provider interface {
	// Send delivers a raw email.
	Send(email *Email) error

	// SendPasswordResetCode delivers the one-time reset code mail.
	SendPasswordResetCode(to, code string) error
}

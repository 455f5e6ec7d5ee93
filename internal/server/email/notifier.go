// Package email delivers transactional mail to users. The service layer only
// depends on the Notifier interface; the SMTP implementation lives here too.
package email

import "context"

// ResetEmailData is the payload rendered into the password-reset message.
type ResetEmailData struct {
	DisplayName    string
	Code           string
	ExpiresMinutes int
}

// Notifier delivers a one-time reset code to a user's email address.
// Delivery may fail; callers log the failure and move on.
type Notifier interface {
	SendPasswordResetEmail(ctx context.Context, to string, data ResetEmailData) error
}

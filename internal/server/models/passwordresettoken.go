package models

import "time"

// PasswordResetToken is one outstanding or historical password-reset request.
// Only the SHA-256 hash of the emailed code is stored, never the code itself.
// UsedAt == nil means the token is still consumable (subject to expiry).
type PasswordResetToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is no longer valid at the given instant.
// The expiry boundary itself counts as expired.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

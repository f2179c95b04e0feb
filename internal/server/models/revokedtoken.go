package models

import "time"

// RevokedToken is a blacklist entry for a refresh token. Tokens are keyed by
// their jti claim and kept until natural expiry, after which the purge loop
// removes them.
type RevokedToken struct {
	JTI       string
	UserID    string
	ExpiresAt time.Time
	RevokedAt time.Time
}

package identity

import "time"

// User represents a registered platform account. The password hash never
// crosses the package boundary in API responses.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carries the email/password pair supplied by a client.
type Credentials struct {
	Email    string
	Password string
}

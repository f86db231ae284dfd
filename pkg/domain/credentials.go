package domain

import "fmt"

// Credentials is a username/password pair supplied by a caller. The fetcher
// forwards it opaquely and never persists it.
type Credentials struct {
	Username string
	Password string
}

// String masks the password so credentials can be logged safely.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: <redacted>}", c.Username)
}

// GoString masks the password for %#v as well.
func (c Credentials) GoString() string { return c.String() }

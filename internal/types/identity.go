package types

import "github.com/google/uuid"

// Identity is the caller as resolved by the credential layer. The services
// take it as a plain value and never look credentials up themselves.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}

func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

package shared

import (
	"gemstore/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as extracted from the bearer token.
// The core never re-derives capabilities from raw role strings; handlers
// build an Actor once and pass it down.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) CanViewAllSales() bool {
	return a.Role.CanViewAllSales()
}

func (a Actor) CanOverrideCancel() bool {
	return a.Role.CanOverrideCancel()
}

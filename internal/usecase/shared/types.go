package shared

import (
	"time"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by use cases.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin || a.UserID == ownerID
}

// DateWindow carries raw request bounds before they become an interval.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

package domain

import (
	"github.com/google/uuid"
)

// Access decisions over a holiday loaded with its invitations. These are
// pure functions: callers load the aggregate first and act only on ALLOW.
//
// A published holiday is readable by any authenticated user; everything
// else requires the requester to hold an invitation.

func CanRead(h *Holiday, userID uuid.UUID) bool {
	if h.Published {
		return true
	}
	return h.IsGuest(userID)
}

func CanModify(h *Holiday, userID uuid.UUID) bool {
	return h.IsGuest(userID)
}

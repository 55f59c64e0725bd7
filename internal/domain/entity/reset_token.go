package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use, time-bounded credential for a password
// reset. Its lifecycle is Issued -> Used, Issued -> Expired (implicit by
// clock), or Issued -> Superseded (marked used by a newer request).
// Used is monotonic: once true it never reverts, and rows are kept for
// audit rather than deleted.
type ResetToken struct {
	ID        uint      // Primary key of the token row.
	Token     uuid.UUID // The random token value itself; its canonical string form appears in the reset URL.
	StudentID uint      // Links the token to the Student it can reset.
	CreatedAt time.Time // Issue time.
	ExpiresAt time.Time // Issue time plus the validity window (one hour by default).
	Used      bool      // Set exactly once, by a successful confirm or by supersession.
}

// IsValid reports whether the token can still be consumed at the given
// instant.
func (t *ResetToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

package revocation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two revocation triggers a client reacts to.
type Kind string

const (
	// KindSessionSuperseded means another login happened for the same
	// student and rotated the session token. Open sessions log out.
	KindSessionSuperseded Kind = "session_superseded"

	// KindAdminReset means an administrator unbound the device. Open
	// sessions log out and additionally drop their cached device
	// identity so the next login re-fingerprints.
	KindAdminReset Kind = "admin_reset"
)

// Signal is the broadcast payload. A malformed payload on the wire is
// delivered as a SessionSuperseded signal rather than dropped: when in
// doubt, log the client out.
type Signal struct {
	Kind         Kind      `json:"kind"`
	StudentID    uuid.UUID `json:"studentId"`
	SessionToken string    `json:"sessionToken,omitempty"`
	At           time.Time `json:"at"`
}

// ClearsDevice reports whether the client should also discard its
// cached device identifier.
func (s Signal) ClearsDevice() bool {
	return s.Kind == KindAdminReset
}

// Handler receives delivered signals. Handlers must be quick; slow work
// belongs in the handler's own goroutine.
type Handler func(Signal)

// Bus is the revocation broadcast channel. The per-student topic keeps
// fan-out narrow: a client only ever subscribes to its own student id.
//
// The bus is a latency optimization layered over the periodic
// ValidateActiveSession poll, not a replacement for it: a subscriber
// that misses a signal still gets logged out on its next poll.
type Bus interface {
	Publish(ctx context.Context, sig Signal) error
	Subscribe(ctx context.Context, studentID uuid.UUID, h Handler) (func(), error)
}

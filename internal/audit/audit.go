package audit

import (
	"context"
	"time"

	md "github.com/veracourse/portal/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const (
	KindDeviceMismatch = "device_mismatch"
	KindSessionReplay  = "session_replay"
	KindDeviceReset    = "device_reset"
	KindCodeDisabled   = "code_disabled"
	KindCodeDeleted    = "code_deleted"
)

type Event struct {
	Kind        string
	Description string
	SubjectID   uuid.UUID
	Severity    Severity
	Metadata    map[string]any
}

// Recorder persists security events. Implementations must never let a
// recording failure reach the caller: a student login outcome cannot
// depend on the audit trail being writable.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type eventStore interface {
	CreateAuditEvent(ctx context.Context, ev *md.AuditEvent) error
}

type alertMailer interface {
	SendSecurityAlert(subject, body string) error
}

type Log struct {
	store  eventStore
	mailer alertMailer
}

func New(store eventStore, mailer alertMailer) *Log {
	return &Log{store: store, mailer: mailer}
}

// Record writes the event to the store and, for critical events, mails
// the administrator. Errors are logged and swallowed.
func (l *Log) Record(ctx context.Context, ev Event) {
	var subject *uuid.UUID
	if ev.SubjectID != uuid.Nil {
		id := ev.SubjectID
		subject = &id
	}

	err := l.store.CreateAuditEvent(
		ctx, &md.AuditEvent{
			ID:          uuid.New(),
			Kind:        ev.Kind,
			Description: ev.Description,
			SubjectID:   subject,
			Severity:    string(ev.Severity),
			Metadata:    ev.Metadata,
			CreatedAt:   time.Now(),
		},
	)
	if err != nil {
		zap.L().Error(
			"failed to persist audit event",
			zap.String("kind", ev.Kind),
			zap.Error(err),
		)
	}

	if ev.Severity == SeverityCritical && l.mailer != nil {
		if err := l.mailer.SendSecurityAlert(ev.Kind, ev.Description); err != nil {
			zap.L().Error(
				"failed to send security alert",
				zap.String("kind", ev.Kind),
				zap.Error(err),
			)
		}
	}
}

// Noop discards every event. Used in tests and in tools that do not
// carry an audit trail.
type Noop struct{}

func (Noop) Record(context.Context, Event) {}

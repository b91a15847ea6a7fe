package models

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type AuditEvent struct {
	ID          uuid.UUID  `db:"id"          json:"id"`
	Kind        string     `db:"kind"        json:"kind"`
	Description string     `db:"description" json:"description"`
	SubjectID   *uuid.UUID `db:"subject_id"  json:"subjectId,omitempty"`
	Severity    string     `db:"severity"    json:"severity"`
	Metadata    Metadata   `db:"metadata"    json:"metadata,omitempty"`
	CreatedAt   time.Time  `db:"created_at"  json:"createdAt"`
}

type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]any{})
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	}
	return errors.New("unsupported metadata source")
}

package models

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// AccessCode is the per-student record. The code itself is the student's
// only credential; the record additionally carries the device binding and
// the current session state.
type AccessCode struct {
	ID              uuid.UUID   `db:"id"               json:"id"`
	Code            string      `db:"code"             json:"code"`
	StudentName     string      `db:"student_name"     json:"studentName"`
	PhoneNumber     string      `db:"phone_number"     json:"phoneNumber"`
	Category        string      `db:"category"         json:"category"`
	AllowedSections UUIDList    `db:"allowed_sections" json:"allowedSections"`
	IsActive        bool        `db:"is_active"        json:"isActive"`
	ExpiryDate      *time.Time  `db:"expiry_date"      json:"expiryDate,omitempty"`
	DeviceID        *string     `db:"device_id"        json:"deviceId,omitempty"`
	DeviceInfo      *DeviceInfo `db:"device_info"      json:"deviceInfo,omitempty"`
	SessionToken    string      `db:"session_token"    json:"-"`
	SessionExpiry   time.Time   `db:"session_expiry"   json:"sessionExpiry"`
	ForceReauth     bool        `db:"force_reauth"     json:"forceReauth"`
	LoginCount      int64       `db:"login_count"      json:"loginCount"`
	ResetCount      int64       `db:"reset_count"      json:"resetCount"`
	LastLoginAt     *time.Time  `db:"last_login_at"    json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time   `db:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time   `db:"updated_at"       json:"updatedAt"`
}

// IsExpired reports whether the account itself (not the session) has
// passed its expiry date.
func (a *AccessCode) IsExpired(now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}

// DeviceBind carries everything a successful login writes: the binding
// itself plus the freshly rotated session. It lands in one conditional
// statement so two racing first logins cannot both win.
type DeviceBind struct {
	ID            uuid.UUID
	DeviceID      string
	DeviceInfo    *DeviceInfo
	SessionToken  string
	SessionExpiry time.Time
	LoginAt       time.Time
}

// DeviceInfo is the device snapshot captured at bind time and kept for
// audit. DeviceID duplicates AccessCode.DeviceID so the snapshot is
// self-contained.
type DeviceInfo struct {
	DeviceID      string `json:"deviceId"`
	UA            string `json:"ua,omitempty"`
	IP            string `json:"ip,omitempty"`
	Platform      string `json:"platform,omitempty"`
	Screen        string `json:"screen,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	Language      string `json:"language,omitempty"`
	WebGLRenderer string `json:"webglRenderer,omitempty"`
}

func (d DeviceInfo) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *DeviceInfo) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		return nil
	}
	return errors.New("unsupported device info source")
}

// UUIDList is a JSONB-backed list of section ids.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(l)
}

func (l *UUIDList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported uuid list source")
}

// Contains reports whether id is in the list.
func (l UUIDList) Contains(id uuid.UUID) bool {
	for i := range l {
		if l[i] == id {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Password  string    `db:"password"   json:"-"`
	IsActive  bool      `db:"is_active"  json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// RefreshDevice identifies the browser an admin refresh token was
// issued to.
type RefreshDevice struct {
	ID string
	UA string
	IP string
}

type RefreshToken struct {
	ID         uint64    `db:"id"           json:"id"`
	AdminID    uuid.UUID `db:"admin_id"     json:"adminId"`
	TokenHash  string    `db:"token_hash"   json:"tokenHash"`
	ExpiresAt  time.Time `db:"expires_at"   json:"expiresAt"`
	Revoked    bool      `db:"revoked"      json:"revoked"`
	DeviceID   string    `db:"device_id"    json:"deviceId"`
	LastUsedAt time.Time `db:"last_used_at" json:"lastUsedAt"`
	CreatedAt  time.Time `db:"created_at"   json:"createdAt"`
}

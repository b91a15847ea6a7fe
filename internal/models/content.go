package models

import (
	"time"

	"github.com/google/uuid"
)

// Section groups videos; students only see sections their access code
// allows.
type Section struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category"    json:"category"`
	Position    int       `db:"position"    json:"position"`
	IsActive    bool      `db:"is_active"   json:"isActive"`
	Videos      []Video   `db:"-"           json:"videos,omitempty"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"  json:"updatedAt"`
}

type Video struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	SectionID   uuid.UUID `db:"section_id"   json:"sectionId"`
	Title       string    `db:"title"        json:"title"`
	Description string    `db:"description"  json:"description"`
	EmbedURL    string    `db:"embed_url"    json:"embedUrl"`
	Attachment  string    `db:"attachment"   json:"attachment,omitempty"`
	Position    int       `db:"position"     json:"position"`
	DurationSec int       `db:"duration_sec" json:"durationSec"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updatedAt"`
}

type Notification struct {
	ID         uuid.UUID `db:"id"         json:"id"`
	Title      string    `db:"title"      json:"title"`
	Body       string    `db:"body"       json:"body"`
	Category   string    `db:"category"   json:"category"` // empty targets everyone
	Attachment string    `db:"attachment" json:"attachment,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

package dto

import (
	md "github.com/veracourse/portal/internal/models"
	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	Title       string `json:"title"    validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"isActive"`
}

type UpdateSectionRequest struct {
	Title       string `json:"title"    validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"isActive"`
}

type CreateVideoRequest struct {
	SectionID   uuid.UUID `json:"sectionId" validate:"required"`
	Title       string    `json:"title"     validate:"required"`
	Description string    `json:"description"`
	EmbedURL    string    `json:"embedUrl"  validate:"required,url"`
	Attachment  string    `json:"attachment"`
	Position    int       `json:"position"`
	DurationSec int       `json:"durationSec"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title"    validate:"required"`
	Description string `json:"description"`
	EmbedURL    string `json:"embedUrl" validate:"required,url"`
	Attachment  string `json:"attachment"`
	Position    int    `json:"position"`
	DurationSec int    `json:"durationSec"`
}

type CreateIDResponse struct {
	ID uuid.UUID `json:"id"`
}

type PaginatedSectionResponse struct {
	Data        []*md.Section `json:"data"`
	Count       int64         `json:"count"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	HasNextPage bool          `json:"hasNextPage"`
}

type CreateNotificationRequest struct {
	Title      string `json:"title" validate:"required"`
	Body       string `json:"body"  validate:"required"`
	Category   string `json:"category"`
	Attachment string `json:"attachment"`
}

type PaginatedNotificationResponse struct {
	Data        []*md.Notification `json:"data"`
	Count       int64              `json:"count"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	HasNextPage bool               `json:"hasNextPage"`
}

type PaginatedAuditEventResponse struct {
	Data        []*md.AuditEvent `json:"data"`
	Count       int64            `json:"count"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasNextPage bool             `json:"hasNextPage"`
}

package dto

import (
	"time"

	md "github.com/veracourse/portal/internal/models"
	"github.com/google/uuid"
)

// DeviceInfoRequest is the device snapshot submitted with a login
// attempt. DeviceID is the client's persisted fingerprint; the rest is
// audit context stored at bind time.
type DeviceInfoRequest struct {
	DeviceID      string `json:"deviceId" validate:"required"`
	UA            string `json:"ua"`
	IP            string `json:"ip"`
	Platform      string `json:"platform"`
	Screen        string `json:"screen"`
	Timezone      string `json:"timezone"`
	Language      string `json:"language"`
	WebGLRenderer string `json:"webglRenderer"`
}

func (d *DeviceInfoRequest) Snapshot() *md.DeviceInfo {
	return &md.DeviceInfo{
		DeviceID:      d.DeviceID,
		UA:            d.UA,
		IP:            d.IP,
		Platform:      d.Platform,
		Screen:        d.Screen,
		Timezone:      d.Timezone,
		Language:      d.Language,
		WebGLRenderer: d.WebGLRenderer,
	}
}

type LoginRequest struct {
	Code   string            `json:"code"   validate:"required,len=8,alphanum"`
	Device DeviceInfoRequest `json:"device" validate:"required"`
}

type SessionRequest struct {
	StudentID    uuid.UUID `json:"studentId"    validate:"required"`
	SessionToken string    `json:"sessionToken" validate:"required"`
	DeviceID     string    `json:"deviceId"     validate:"required"`
}

// StudentDataResponse is what a successful login or session check hands
// back to the client: the profile plus the currently valid session.
type StudentDataResponse struct {
	ID              uuid.UUID   `json:"id"`
	Code            string      `json:"code"`
	StudentName     string      `json:"studentName"`
	PhoneNumber     string      `json:"phoneNumber"`
	Category        string      `json:"category"`
	AllowedSections md.UUIDList `json:"allowedSections"`
	SessionToken    string      `json:"sessionToken"`
	SessionExpiry   time.Time   `json:"sessionExpiry"`
	DeviceID        string      `json:"deviceId"`
}

func NewStudentData(a *md.AccessCode) *StudentDataResponse {
	res := &StudentDataResponse{
		ID:              a.ID,
		Code:            a.Code,
		StudentName:     a.StudentName,
		PhoneNumber:     a.PhoneNumber,
		Category:        a.Category,
		AllowedSections: a.AllowedSections,
		SessionToken:    a.SessionToken,
		SessionExpiry:   a.SessionExpiry,
	}
	if a.DeviceID != nil {
		res.DeviceID = *a.DeviceID
	}
	return res
}

type CreateAccessCodeRequest struct {
	StudentName     string      `json:"studentName" validate:"required"`
	PhoneNumber     string      `json:"phoneNumber"`
	Category        string      `json:"category"    validate:"required"`
	AllowedSections []uuid.UUID `json:"allowedSections"`
	ExpiryDate      *time.Time  `json:"expiryDate"`
}

type UpdateAccessCodeRequest struct {
	StudentName     string      `json:"studentName" validate:"required"`
	PhoneNumber     string      `json:"phoneNumber"`
	Category        string      `json:"category"    validate:"required"`
	AllowedSections []uuid.UUID `json:"allowedSections"`
	ExpiryDate      *time.Time  `json:"expiryDate"`
	IsActive        bool        `json:"isActive"`
}

type CreateAccessCodeResponse struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

type PaginatedAccessCodeResponse struct {
	Data        []*md.AccessCode `json:"data"`
	Count       int64            `json:"count"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasNextPage bool             `json:"hasNextPage"`
}

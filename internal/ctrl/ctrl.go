package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/veracourse/portal/internal/audit"
	"github.com/veracourse/portal/internal/auth"
	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo/s3"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/google/uuid"
)

type filesCtrl interface {
	UploadAttachment(ctx context.Context, req *s3.UploadFileRequest) (string, error)
	AttachmentURL(ctx context.Context, object string) (string, error)
}

type auditCtrl interface {
	ListAuditEvents(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedAuditEventResponse, error)
}

// AppCtrl is the full surface the transport layer consumes.
type AppCtrl interface {
	authCtrl
	accessCodeCtrl
	contentCtrl
	notificationCtrl
	auditCtrl
	filesCtrl
}

type accessCodeRepo interface {
	GetAccessCodeByID(ctx context.Context, id uuid.UUID) (*md.AccessCode, error)
	GetAccessCodeByCode(ctx context.Context, code string) (*md.AccessCode, error)
	ListAccessCodes(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedAccessCodeResponse, error)
	CreateAccessCode(ctx context.Context, rec *md.AccessCode) (uuid.UUID, error)
	UpdateAccessCode(ctx context.Context, id uuid.UUID, req *dto.UpdateAccessCodeRequest) error
	SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteAccessCode(ctx context.Context, id uuid.UUID) error
	BindDeviceSession(ctx context.Context, bind *md.DeviceBind) error
	ResetDeviceSession(
		ctx context.Context,
		id uuid.UUID,
		token string,
		expiry time.Time,
	) error
}

type contentRepo interface {
	ListSections(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedSectionResponse, error)
	GetSectionByID(ctx context.Context, id uuid.UUID) (*md.Section, error)
	ListSectionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*md.Section, error)
	CreateSection(ctx context.Context, s *md.Section) (uuid.UUID, error)
	UpdateSection(ctx context.Context, id uuid.UUID, req *dto.UpdateSectionRequest) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
	CreateVideo(ctx context.Context, v *md.Video) (uuid.UUID, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, req *dto.UpdateVideoRequest) error
	DeleteVideo(ctx context.Context, id uuid.UUID) error
}

type notificationRepo interface {
	ListNotifications(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedNotificationResponse, error)
	ListNotificationsForCategory(ctx context.Context, category string) ([]*md.Notification, error)
	CreateNotification(ctx context.Context, n *md.Notification) (uuid.UUID, error)
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}

type adminRepo interface {
	GetAdminByEmail(ctx context.Context, email string) (*md.Admin, error)
	CreateToken(
		ctx context.Context,
		adminID uuid.UUID,
		token string,
		expiresAt time.Time,
		device *md.RefreshDevice,
	) error
	IsTokenValid(ctx context.Context, adminID uuid.UUID, d *md.RefreshDevice, token string) (bool, error)
	RevokeAllTokens(ctx context.Context, adminID uuid.UUID) error
}

type auditRepo interface {
	ListAuditEvents(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedAuditEventResponse, error)
}

type AppRepo interface {
	accessCodeRepo
	contentRepo
	notificationRepo
	adminRepo
	auditRepo
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type S3Service interface {
	UploadFile(ctx context.Context, req *s3.UploadFileRequest) (string, error)
	PresignedURL(ctx context.Context, object string, expiry time.Duration) (string, error)
}

type Controller struct {
	au    auth.Core
	repo  AppRepo
	cache CacheService
	audit audit.Recorder
	bus   revocation.Bus
	s3    S3Service
}

func New(
	au auth.Core,
	repo AppRepo,
	cache CacheService,
	auditor audit.Recorder,
	bus revocation.Bus,
	s3 S3Service,
) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		audit: auditor,
		bus:   bus,
		s3:    s3,
	}
}

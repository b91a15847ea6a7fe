package ctrl

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/veracourse/portal/internal/audit"
	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type accessCodeCtrl interface {
	ValidateAccessCode(
		ctx context.Context,
		code string,
		device *dto.DeviceInfoRequest,
	) (*dto.StudentDataResponse, error)
	ValidateActiveSession(
		ctx context.Context,
		req *dto.SessionRequest,
	) (*dto.StudentDataResponse, error)
	ResetDevice(ctx context.Context, id uuid.UUID) error
	SubscribeRevocation(
		ctx context.Context,
		studentID uuid.UUID,
		h revocation.Handler,
	) (func(), error)
	CreateAccessCode(
		ctx context.Context,
		req *dto.CreateAccessCodeRequest,
	) (*dto.CreateAccessCodeResponse, error)
	ListAccessCodes(
		ctx context.Context,
		page, size int,
		filters map[string]any,
	) (*dto.PaginatedAccessCodeResponse, error)
	GetAccessCode(ctx context.Context, id uuid.UUID) (*md.AccessCode, error)
	UpdateAccessCode(ctx context.Context, id uuid.UUID, req *dto.UpdateAccessCodeRequest) error
	SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteAccessCode(ctx context.Context, id uuid.UUID) error
}

const (
	accessCodeCacheKey = "access-code:%v"
	accessCodeListKey  = "access-codes-list:%v:%v:%v"
	accessCodePattern  = "access-codes-*"
)

const codeGenAttempts = 5

// ValidateAccessCode decides a login attempt. On the first successful
// login the submitted fingerprint becomes the record's bound device;
// afterwards only that fingerprint is accepted until an admin reset.
// Every success rotates the session token, so the newest login is the
// only valid session.
func (c *Controller) ValidateAccessCode(
	ctx context.Context,
	code string,
	device *dto.DeviceInfoRequest,
) (*dto.StudentDataResponse, error) {
	const op = "accessCodes.ValidateAccessCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rec, err := c.repo.GetAccessCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	// Expiry wins over every other account state: a record that is both
	// disabled and past its expiry date still reads as expired.
	now := time.Now()
	if rec.IsExpired(now) {
		return nil, ErrAccountExpired
	}

	if !rec.IsActive {
		return nil, ErrAccountDisabled
	}

	if rec.DeviceID != nil && *rec.DeviceID != device.DeviceID {
		c.audit.Record(
			ctx, audit.Event{
				Kind:        audit.KindDeviceMismatch,
				Description: "login attempt from a different device",
				SubjectID:   rec.ID,
				Severity:    audit.SeverityHigh,
				Metadata: map[string]any{
					"boundDevice":     *rec.DeviceID,
					"presentedDevice": device.DeviceID,
					"ip":              device.IP,
				},
			},
		)

		return nil, ErrDeviceMismatch
	}

	token, err := c.au.NewSessionToken()
	if err != nil {
		return nil, err
	}

	bind := &md.DeviceBind{
		ID:            rec.ID,
		DeviceID:      device.DeviceID,
		DeviceInfo:    device.Snapshot(),
		SessionToken:  token,
		SessionExpiry: now.Add(config.SessionDuration),
		LoginAt:       now,
	}

	err = c.repo.BindDeviceSession(ctx, bind)
	if err != nil {
		// A concurrent login bound another device between our read
		// and the conditional write. Same outcome as reading the
		// binding in the first place.
		if errors.Is(err, repo.ErrDeviceBound) {
			c.audit.Record(
				ctx, audit.Event{
					Kind:        audit.KindDeviceMismatch,
					Description: "lost first-bind race to a concurrent login",
					SubjectID:   rec.ID,
					Severity:    audit.SeverityHigh,
					Metadata: map[string]any{
						"presentedDevice": device.DeviceID,
					},
				},
			)

			return nil, ErrDeviceMismatch
		}
		return nil, err
	}

	// Other open tabs of this student hold the superseded token; tell
	// them to log out now instead of waiting for their next poll.
	err = c.bus.Publish(
		ctx, revocation.Signal{
			Kind:         revocation.KindSessionSuperseded,
			StudentID:    rec.ID,
			SessionToken: token,
			At:           now,
		},
	)
	if err != nil {
		zap.L().Warn(
			"failed to publish login signal",
			zap.String("op", op),
			zap.Error(err),
		)
	}

	c.cache.Delete(ctx, fmt.Sprintf(accessCodeCacheKey, rec.ID))

	rec.DeviceID = &bind.DeviceID
	rec.DeviceInfo = bind.DeviceInfo
	rec.SessionToken = token
	rec.SessionExpiry = bind.SessionExpiry
	rec.ForceReauth = false
	rec.LoginCount++
	rec.LastLoginAt = &now

	return dto.NewStudentData(rec), nil
}

// ValidateActiveSession re-checks a previously issued session against
// the current record state. Purely a read: policy transitions made by
// an admin since login (deactivation, expiry, reset) take effect on the
// next call without any push channel.
//
// ForceReauth is checked before the device and token comparisons: an
// admin reset blocks the session unconditionally, even when the client's
// cached credentials would otherwise still line up.
func (c *Controller) ValidateActiveSession(
	ctx context.Context,
	req *dto.SessionRequest,
) (*dto.StudentDataResponse, error) {
	const op = "accessCodes.ValidateActiveSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rec, err := c.repo.GetAccessCodeByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	// Same precedence as login: expiry first, then the disabled flag.
	now := time.Now()
	if rec.IsExpired(now) {
		return nil, ErrAccountExpired
	}

	if !rec.IsActive {
		return nil, ErrAccountDisabled
	}

	if rec.ForceReauth {
		return nil, ErrReauthRequired
	}

	if rec.DeviceID == nil || *rec.DeviceID != req.DeviceID {
		// A valid token from the wrong device means an already
		// trusted session is being replayed elsewhere. Graver than a
		// fresh-login mismatch.
		c.audit.Record(
			ctx, audit.Event{
				Kind:        audit.KindSessionReplay,
				Description: "session presented from a different device",
				SubjectID:   rec.ID,
				Severity:    audit.SeverityCritical,
				Metadata: map[string]any{
					"presentedDevice": req.DeviceID,
				},
			},
		)

		return nil, ErrDeviceMismatch
	}

	if rec.SessionToken != req.SessionToken {
		return nil, ErrSessionMismatch
	}

	if now.After(rec.SessionExpiry) {
		return nil, ErrSessionExpired
	}

	return dto.NewStudentData(rec), nil
}

// ResetDevice unbinds the student's device and invalidates every
// outstanding session. The token is rotated rather than cleared so a
// cached old token is worthless, and ForceReauth stays up until the
// student logs in again.
func (c *Controller) ResetDevice(ctx context.Context, id uuid.UUID) error {
	const op = "accessCodes.ResetDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	token, err := c.au.NewSessionToken()
	if err != nil {
		return err
	}

	err = c.repo.ResetDeviceSession(ctx, id, token, time.Now().Add(config.SessionDuration))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.audit.Record(
		ctx, audit.Event{
			Kind:        audit.KindDeviceReset,
			Description: "admin reset device binding",
			SubjectID:   id,
			Severity:    audit.SeverityMedium,
		},
	)

	err = c.bus.Publish(
		ctx, revocation.Signal{
			Kind:      revocation.KindAdminReset,
			StudentID: id,
			At:        time.Now(),
		},
	)
	if err != nil {
		zap.L().Warn(
			"failed to publish reset signal",
			zap.String("op", op),
			zap.Error(err),
		)
	}

	c.cache.Delete(ctx, fmt.Sprintf(accessCodeCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, accessCodePattern)

	return nil
}

// SubscribeRevocation registers a live listener for the student's
// revocation signals. The returned closure detaches the listener.
func (c *Controller) SubscribeRevocation(
	ctx context.Context,
	studentID uuid.UUID,
	h revocation.Handler,
) (func(), error) {
	const op = "accessCodes.SubscribeRevocation.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.bus.Subscribe(ctx, studentID, h)
}

func (c *Controller) CreateAccessCode(
	ctx context.Context,
	req *dto.CreateAccessCodeRequest,
) (*dto.CreateAccessCodeResponse, error) {
	const op = "accessCodes.CreateAccessCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	token, err := c.au.NewSessionToken()
	if err != nil {
		return nil, err
	}

	rec := &md.AccessCode{
		StudentName:     req.StudentName,
		PhoneNumber:     req.PhoneNumber,
		Category:        req.Category,
		AllowedSections: req.AllowedSections,
		IsActive:        true,
		ExpiryDate:      req.ExpiryDate,
		SessionToken:    token,
		SessionExpiry:   time.Now(),
	}

	// Regenerate on the rare unique-collision instead of failing the
	// admin's request.
	var id uuid.UUID
	for attempt := 0; ; attempt++ {
		rec.Code, err = generateCode()
		if err != nil {
			return nil, err
		}

		id, err = c.repo.CreateAccessCode(ctx, rec)
		if err == nil {
			break
		}

		if !errors.Is(err, repo.ErrAlreadyExists) {
			return nil, err
		}

		if attempt == codeGenAttempts-1 {
			return nil, ErrAlreadyExists
		}
	}

	go c.cache.InvalidateKeysByPattern(ctx, accessCodePattern)

	return &dto.CreateAccessCodeResponse{ID: id, Code: rec.Code}, nil
}

func (c *Controller) ListAccessCodes(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedAccessCodeResponse, error) {
	const op = "accessCodes.ListAccessCodes.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &dto.PaginatedAccessCodeResponse{}
	cacheKey := fmt.Sprintf(accessCodeListKey, page, size, filters)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.ListAccessCodes(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetAccessCode(ctx context.Context, id uuid.UUID) (*md.AccessCode, error) {
	const op = "accessCodes.GetAccessCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.AccessCode{}
	cacheKey := fmt.Sprintf(accessCodeCacheKey, id)
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetAccessCodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.MinCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) UpdateAccessCode(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateAccessCodeRequest,
) error {
	const op = "accessCodes.UpdateAccessCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.UpdateAccessCode(ctx, id, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(accessCodeCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, accessCodePattern)

	return nil
}

func (c *Controller) SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) error {
	const op = "accessCodes.SetAccessCodeActive.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.SetAccessCodeActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !active {
		c.audit.Record(
			ctx, audit.Event{
				Kind:        audit.KindCodeDisabled,
				Description: "admin disabled access code",
				SubjectID:   id,
				Severity:    audit.SeverityLow,
			},
		)
	}

	c.cache.Delete(ctx, fmt.Sprintf(accessCodeCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, accessCodePattern)

	return nil
}

func (c *Controller) DeleteAccessCode(ctx context.Context, id uuid.UUID) error {
	const op = "accessCodes.DeleteAccessCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	err := c.repo.DeleteAccessCode(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	c.audit.Record(
		ctx, audit.Event{
			Kind:        audit.KindCodeDeleted,
			Description: "admin deleted access code",
			SubjectID:   id,
			Severity:    audit.SeverityLow,
		},
	)

	c.cache.Delete(ctx, fmt.Sprintf(accessCodeCacheKey, id))

	go c.cache.InvalidateKeysByPattern(ctx, accessCodePattern)

	return nil
}

func generateCode() (string, error) {
	buf := make([]byte, config.AccessCodeLength)
	max := big.NewInt(int64(len(config.AccessCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = config.AccessCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

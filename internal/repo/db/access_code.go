package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

func (r *Repository) GetAccessCodeByID(ctx context.Context, id uuid.UUID) (*md.AccessCode, error) {
	const op = "accessCodes.GetAccessCodeByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.AccessCode{}
	err := r.conn.GetContext(ctx, res, accessCodeGetByIDQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetAccessCodeByCode(ctx context.Context, code string) (*md.AccessCode, error) {
	const op = "accessCodes.GetAccessCodeByCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.AccessCode{}
	err := r.conn.GetContext(ctx, res, accessCodeGetByCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) ListAccessCodes(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedAccessCodeResponse, error) {
	const op = "accessCodes.ListAccessCodes.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildAccessCodeListQuery(ctx, page, size, filters)
	if err != nil {
		return nil, err
	}

	var count int64
	if err = r.conn.GetContext(ctx, &count, q.countQ, q.countArgs...); err != nil {
		return nil, err
	}

	res := make([]*md.AccessCode, 0, size)
	if err = r.conn.SelectContext(ctx, &res, q.dataQ, q.dataArgs...); err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))
	return &dto.PaginatedAccessCodeResponse{
		Data:        res,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}

func (r *Repository) CreateAccessCode(ctx context.Context, rec *md.AccessCode) (uuid.UUID, error) {
	const op = "accessCodes.CreateAccessCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowContext(
		ctx,
		accessCodeCreateQ,
		rec.Code,
		rec.StudentName,
		rec.PhoneNumber,
		rec.Category,
		rec.AllowedSections,
		rec.IsActive,
		rec.ExpiryDate,
		rec.SessionToken,
		rec.SessionExpiry,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, repo.ErrAlreadyExists
		}

		zap.L().Error("failed to create access code", zap.String("op", op), zap.Error(err))
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdateAccessCode(
	ctx context.Context,
	id uuid.UUID,
	req *dto.UpdateAccessCodeRequest,
) error {
	const op = "accessCodes.UpdateAccessCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		accessCodeUpdateQ,
		req.StudentName,
		req.PhoneNumber,
		req.Category,
		md.UUIDList(req.AllowedSections),
		req.ExpiryDate,
		req.IsActive,
		id,
	)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetAccessCodeActive(ctx context.Context, id uuid.UUID, active bool) error {
	const op = "accessCodes.SetAccessCodeActive.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, accessCodeSetActiveQ, active, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) DeleteAccessCode(ctx context.Context, id uuid.UUID) error {
	const op = "accessCodes.DeleteAccessCode.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, accessCodeDeleteQ, id)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// BindDeviceSession performs the login write: bind (or re-confirm) the
// device and issue the new session in one conditional statement. Zero
// affected rows on an existing record means another device holds the
// binding.
func (r *Repository) BindDeviceSession(ctx context.Context, bind *md.DeviceBind) error {
	const op = "accessCodes.BindDeviceSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		accessCodeBindDeviceQ,
		bind.ID,
		bind.DeviceID,
		bind.DeviceInfo,
		bind.SessionToken,
		bind.SessionExpiry,
		bind.LoginAt,
	)
	if err != nil {
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if aff == 0 {
		var exists bool
		if err = r.conn.GetContext(ctx, &exists, accessCodeExistsQ, bind.ID); err != nil {
			return err
		}

		if exists {
			return repo.ErrDeviceBound
		}
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) ResetDeviceSession(
	ctx context.Context,
	id uuid.UUID,
	token string,
	expiry time.Time,
) error {
	const op = "accessCodes.ResetDeviceSession.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, accessCodeResetDeviceQ, id, token, expiry)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

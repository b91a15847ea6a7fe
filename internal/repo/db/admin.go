package db

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	md "github.com/veracourse/portal/internal/models"
	"github.com/veracourse/portal/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (*md.Admin, error) {
	const op = "auth.GetAdminByEmail.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.Admin{}
	err := r.conn.GetContext(ctx, res, adminGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateToken(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	expiresAt time.Time,
	device *md.RefreshDevice,
) error {
	const op = "auth.CreateToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenCreateQ, adminID, hashToken(token), expiresAt, device.ID)
	return err
}

func (r *Repository) IsTokenValid(
	ctx context.Context,
	adminID uuid.UUID,
	d *md.RefreshDevice,
	token string,
) (bool, error) {
	const op = "auth.IsTokenValid.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var stored string
	err := r.conn.GetContext(ctx, &stored, isValidTokenQ, adminID, d.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return stored == hashToken(token), nil
}

func (r *Repository) RevokeAllTokens(ctx context.Context, adminID uuid.UUID) error {
	const op = "auth.RevokeAllTokens.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, revokeAllTokensQ, adminID)
	return err
}

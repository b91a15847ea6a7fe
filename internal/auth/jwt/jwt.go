package jwt

import (
	"context"
	"time"

	"github.com/veracourse/portal/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	GetAccessTime() time.Time
	GetRefreshTime() time.Time
	GenPair(ctx context.Context, uid uuid.UUID) (string, string, error)
	NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

// Core signs and verifies the admin dashboard tokens. Students never
// see a JWT; their sessions are opaque tokens checked against the
// stored record.
type Core struct {
	secret []byte
	issuer string
}

type Claims struct {
	UID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.JWT.Secret), issuer: conf.Auth.JWT.Issuer}
}

func (c *Core) GetAccessTime() time.Time {
	return time.Now().Add(config.AccessTokenDuration)
}

func (c *Core) GetRefreshTime() time.Time {
	return time.Now().Add(config.RefreshTokenDuration)
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var pair [2]string
	for i, d := range [2]time.Duration{
		config.AccessTokenDuration,
		config.RefreshTokenDuration,
	} {
		token, err := c.NewToken(ctx, uid, d)
		if err != nil {
			zap.L().Error(
				"Failed to generate token pair",
				zap.String("op", op),
				zap.String("uid", uid.String()),
				zap.Error(err),
			)

			return "", "", err
		}
		pair[i] = token
	}

	return pair[0], pair[1], nil
}

func (c *Core) NewToken(ctx context.Context, uid uuid.UUID, d time.Duration) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID: uid,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uid.String(),
				Issuer:    c.issuer,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(_ *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, err
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}

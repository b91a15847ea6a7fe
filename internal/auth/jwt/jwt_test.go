package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/veracourse/portal/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCore(secret string) *Core {
	conf := config.Config{}
	conf.Auth.JWT.Secret = secret
	conf.Auth.JWT.Issuer = "portal"
	return New(conf)
}

func TestCore_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	core := testCore("test-secret")
	uid := uuid.New()

	token, err := core.NewToken(ctx, uid, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := core.ParseClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, uid.String(), claims.Subject)
	assert.Equal(t, "portal", claims.Issuer)
}

func TestCore_ParseClaims_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	token, err := testCore("secret-a").NewToken(ctx, uid, time.Hour)
	require.NoError(t, err)

	_, err = testCore("secret-b").ParseClaims(ctx, token)
	assert.Error(t, err)
}

func TestCore_ParseClaims_RejectsWrongIssuer(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	other := testCore("test-secret")
	other.issuer = "someone-else"
	token, err := other.NewToken(ctx, uid, time.Hour)
	require.NoError(t, err)

	_, err = testCore("test-secret").ParseClaims(ctx, token)
	assert.Error(t, err)
}

func TestCore_ParseClaims_RejectsExpired(t *testing.T) {
	ctx := context.Background()
	core := testCore("test-secret")

	token, err := core.NewToken(ctx, uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = core.ParseClaims(ctx, token)
	assert.Error(t, err)
}

func TestCore_GenPair(t *testing.T) {
	ctx := context.Background()
	core := testCore("test-secret")
	uid := uuid.New()

	access, refresh, err := core.GenPair(ctx, uid)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	for _, token := range []string{access, refresh} {
		claims, err := core.ParseClaims(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, uid, claims.UID)
	}
}
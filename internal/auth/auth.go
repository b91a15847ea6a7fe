package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/veracourse/portal/internal/auth/captcha"
	"github.com/veracourse/portal/internal/auth/jwt"
	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/dto"
	md "github.com/veracourse/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenBytes = 32

type Core interface {
	jwt.Port
	captcha.Port
	Hash(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
	NewSessionToken() (string, error)
}

type Auth struct {
	*jwt.Core
	captcha *captcha.Core
}

func New(conf config.Config) *Auth {
	return &Auth{
		Core:    jwt.New(conf),
		captcha: captcha.New(conf),
	}
}

func (a *Auth) VerifyRecaptcha(ctx context.Context, token string, action captcha.Actions) (bool, error) {
	return a.captcha.VerifyRecaptcha(ctx, token, action)
}

func (a *Auth) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), bcrypt.DefaultCost)
	return string(bytes), err
}

func (a *Auth) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewSessionToken returns an opaque, unguessable student session token.
// Unlike the admin JWTs it carries no claims: the stored record is the
// source of truth on every validation.
func (a *Auth) NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateDevice derives a stable admin device record from request
// attributes, so refresh tokens can be scoped per browser.
func GenerateDevice(d *dto.DeviceRequest) md.RefreshDevice {
	sum := sha256.Sum256([]byte(d.UA + "|" + d.IP))
	return md.RefreshDevice{
		ID: fmt.Sprintf("%x", sum[:16]),
		UA: d.UA,
		IP: d.IP,
	}
}

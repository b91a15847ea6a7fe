package config

import "time"

type ctxKey string

const (
	UidKey     ctxKey = "uid"
	StudentKey ctxKey = "student"
	IpKey      ctxKey = "ip"
	UaKey      ctxKey = "ua"
)

const (
	DefaultPage      = 1
	DefaultSize      = 40
	DefaultCacheTime = time.Hour
	MinCacheTime     = time.Minute * 5
	MaxMemory        = 10 << 20 // 10 MB
)

const (
	AccessCookieName     = "access"
	RefreshCookieName    = "refresh"
	AccessTokenDuration  = time.Minute * 30
	RefreshTokenDuration = time.Hour * 24 * 7
)

const (
	// SessionDuration is the student session validity window, reset on
	// every successful login.
	SessionDuration = time.Hour * 24

	// AccessCodeLength is the length of generated student access codes.
	AccessCodeLength = 8

	// AccessCodeAlphabet excludes characters easy to confuse when a code
	// is read aloud or copied by hand (0/O, 1/I/L).
	AccessCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

const ErrorSpanTag = "error"

package jwt

import "errors"

var ErrWhileCreatingToken = errors.New("error while creating token")
var ErrInvalidToken = errors.New("invalid token")

package repo

import "errors"

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")

// ErrDeviceBound is returned by the conditional bind write when the
// record is already bound to a different device.
var ErrDeviceBound = errors.New("device already bound")

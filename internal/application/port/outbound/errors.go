package outbound

import "errors"

var ErrNotFound = errors.New("not found")

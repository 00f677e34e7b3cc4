package handler

import "errors"

var ErrUnexpectedEvent = errors.New("unexpected event type")

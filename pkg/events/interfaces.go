package events

import (
	"context"
	"time"
)

type Event interface {
	GetName() string
	GetDateTime() time.Time
	GetPayload() interface{}
}

type EventHandler interface {
	Handle(ctx context.Context, event Event) error
}

type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Dispatch(ctx context.Context, event Event) error
	Remove(eventName string, handler EventHandler)
	Has(eventName string, handler EventHandler) bool
	Clear()
	Handlers() map[string][]EventHandler
	HandlersFor(eventName string) ([]EventHandler, bool)
}

package events

import (
	"context"
	"reflect"
	"sync"
)

// Dispatcher delivers events synchronously, in registration order, to the
// handlers registered under the event name.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewEventDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register appends handler to the list for eventName. The same handler may be
// registered more than once and is then invoked once per registration.
func (ed *Dispatcher) Register(eventName string, handler EventHandler) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Dispatch runs every handler registered for event.GetName() on the calling
// goroutine. The first handler error is returned as is and the remaining
// handlers are skipped. A nil event is ignored.
func (ed *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	if event == nil {
		return nil
	}
	ed.mu.RLock()
	registered, ok := ed.handlers[event.GetName()]
	handlers := make([]EventHandler, len(registered))
	copy(handlers, registered)
	ed.mu.RUnlock()

	if !ok {
		return nil
	}

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Remove drops the first registration of handler under eventName. The key is
// kept even when its list becomes empty.
func (ed *Dispatcher) Remove(eventName string, handler EventHandler) {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}
	for i, h := range handlers {
		if sameHandler(h, handler) {
			ed.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

func (ed *Dispatcher) Has(eventName string, handler EventHandler) bool {
	ed.mu.RLock()
	defer ed.mu.RUnlock()

	for _, h := range ed.handlers[eventName] {
		if sameHandler(h, handler) {
			return true
		}
	}
	return false
}

// Clear removes every event name from the registry.
func (ed *Dispatcher) Clear() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.handlers = make(map[string][]EventHandler)
}

// Handlers returns a copy of the registry as it is at the time of the call.
func (ed *Dispatcher) Handlers() map[string][]EventHandler {
	ed.mu.RLock()
	defer ed.mu.RUnlock()

	out := make(map[string][]EventHandler, len(ed.handlers))
	for name, handlers := range ed.handlers {
		out[name] = append(make([]EventHandler, 0, len(handlers)), handlers...)
	}
	return out
}

// HandlersFor reports the handlers under eventName and whether the key exists.
func (ed *Dispatcher) HandlersFor(eventName string) ([]EventHandler, bool) {
	ed.mu.RLock()
	defer ed.mu.RUnlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return nil, false
	}
	return append(make([]EventHandler, 0, len(handlers)), handlers...), true
}

// sameHandler compares by identity; uncomparable handlers never match.
func sameHandler(a, b EventHandler) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

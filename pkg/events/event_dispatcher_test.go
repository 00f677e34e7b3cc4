package events_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	name     string
	dateTime time.Time
	payload  interface{}
}

func newTestEvent(name string, payload interface{}) *testEvent {
	return &testEvent{name: name, dateTime: time.Now(), payload: payload}
}

func (e *testEvent) GetName() string         { return e.name }
func (e *testEvent) GetDateTime() time.Time  { return e.dateTime }
func (e *testEvent) GetPayload() interface{} { return e.payload }

type recordingHandler struct {
	id     string
	calls  *[]string
	events []events.Event
	err    error
}

func newRecordingHandler(id string, calls *[]string) *recordingHandler {
	return &recordingHandler{id: id, calls: calls}
}

func (h *recordingHandler) Handle(_ context.Context, event events.Event) error {
	*h.calls = append(*h.calls, h.id)
	h.events = append(h.events, event)
	return h.err
}

type funcHandler func(ctx context.Context, event events.Event) error

func (f funcHandler) Handle(ctx context.Context, event events.Event) error { return f(ctx, event) }

func TestDispatcher_Register(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	h := newRecordingHandler("email", &calls)

	ed.Register("ProductCreatedEvent", h)

	handlers, ok := ed.HandlersFor("ProductCreatedEvent")
	require.True(t, ok)
	assert.Len(t, handlers, 1)
	assert.Same(t, h, handlers[0])
	assert.True(t, ed.Has("ProductCreatedEvent", h))
}

func TestDispatcher_Register_AppendsInOrder(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	first := newRecordingHandler("first", &calls)
	second := newRecordingHandler("second", &calls)

	ed.Register("CustomerCreatedEvent", first)
	ed.Register("CustomerCreatedEvent", second)

	handlers := ed.Handlers()["CustomerCreatedEvent"]
	require.Len(t, handlers, 2)
	assert.Same(t, first, handlers[0])
	assert.Same(t, second, handlers[1])
}

func TestDispatcher_Remove(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	h := newRecordingHandler("email", &calls)

	ed.Register("ProductCreatedEvent", h)
	ed.Remove("ProductCreatedEvent", h)

	handlers, ok := ed.HandlersFor("ProductCreatedEvent")
	assert.True(t, ok, "key must survive removal of its last handler")
	assert.Len(t, handlers, 0)
	assert.False(t, ed.Has("ProductCreatedEvent", h))
}

func TestDispatcher_Remove_OnlyFirstOccurrence(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	a := newRecordingHandler("a", &calls)
	b := newRecordingHandler("b", &calls)

	ed.Register("X", a)
	ed.Register("X", b)
	ed.Register("X", a)
	ed.Remove("X", a)

	handlers, _ := ed.HandlersFor("X")
	require.Len(t, handlers, 2)
	assert.Same(t, b, handlers[0])
	assert.Same(t, a, handlers[1])
}

func TestDispatcher_Remove_UnknownIsNoop(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	h := newRecordingHandler("a", &calls)

	assert.NotPanics(t, func() { ed.Remove("Unknown", h) })
	_, ok := ed.HandlersFor("Unknown")
	assert.False(t, ok)

	ed.Register("X", h)
	ed.Remove("X", newRecordingHandler("other", &calls))
	handlers, _ := ed.HandlersFor("X")
	assert.Len(t, handlers, 1)
}

func TestDispatcher_Remove_UncomparableHandler(t *testing.T) {
	ed := events.NewEventDispatcher()
	h := funcHandler(func(context.Context, events.Event) error { return nil })

	ed.Register("X", h)
	assert.NotPanics(t, func() { ed.Remove("X", h) })
	assert.False(t, ed.Has("X", h))

	handlers, _ := ed.HandlersFor("X")
	assert.Len(t, handlers, 1)
}

func TestDispatcher_Clear(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	ed.Register("ProductCreatedEvent", newRecordingHandler("a", &calls))
	ed.Register("CustomerCreatedEvent", newRecordingHandler("b", &calls))
	ed.Register("CustomerCreatedEvent", newRecordingHandler("c", &calls))

	ed.Clear()

	for _, name := range []string{"ProductCreatedEvent", "CustomerCreatedEvent"} {
		_, ok := ed.HandlersFor(name)
		assert.False(t, ok, name)
	}
	assert.Empty(t, ed.Handlers())
}

func TestDispatcher_Dispatch(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	a := newRecordingHandler("a", &calls)
	b := newRecordingHandler("b", &calls)
	other := newRecordingHandler("other", &calls)

	ed.Register("X", a)
	ed.Register("X", b)
	ed.Register("Y", other)

	evt := newTestEvent("X", map[string]any{"name": "Product 1"})
	require.NoError(t, ed.Dispatch(context.Background(), evt))

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Empty(t, other.events)
	assert.Same(t, evt, a.events[0])

	ed.Remove("X", a)
	require.NoError(t, ed.Dispatch(context.Background(), evt))

	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
}

func TestDispatcher_Dispatch_DuplicateRegistration(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	h := newRecordingHandler("dup", &calls)

	ed.Register("X", h)
	ed.Register("X", h)

	require.NoError(t, ed.Dispatch(context.Background(), newTestEvent("X", nil)))
	assert.Equal(t, []string{"dup", "dup"}, calls)
}

func TestDispatcher_Dispatch_NoHandlers(t *testing.T) {
	ed := events.NewEventDispatcher()

	err := ed.Dispatch(context.Background(), newTestEvent("Nobody", nil))

	assert.NoError(t, err)
	assert.Empty(t, ed.Handlers())
}

func TestDispatcher_Dispatch_StopsOnHandlerError(t *testing.T) {
	var calls []string
	errBoom := errors.New("boom")
	ed := events.NewEventDispatcher()
	a := newRecordingHandler("a", &calls)
	failing := newRecordingHandler("failing", &calls)
	failing.err = errBoom
	c := newRecordingHandler("c", &calls)

	ed.Register("X", a)
	ed.Register("X", failing)
	ed.Register("X", c)

	err := ed.Dispatch(context.Background(), newTestEvent("X", nil))

	assert.Same(t, errBoom, err)
	assert.Equal(t, []string{"a", "failing"}, calls)

	// the registry stays usable after a failure
	ed.Remove("X", failing)
	require.NoError(t, ed.Dispatch(context.Background(), newTestEvent("X", nil)))
	assert.Equal(t, []string{"a", "failing", "a", "c"}, calls)
}

func TestDispatcher_Dispatch_HandlerMayMutateRegistry(t *testing.T) {
	ed := events.NewEventDispatcher()
	var calls []string
	late := newRecordingHandler("late", &calls)

	ed.Register("X", funcHandler(func(context.Context, events.Event) error {
		ed.Register("X", late)
		return nil
	}))

	require.NoError(t, ed.Dispatch(context.Background(), newTestEvent("X", nil)))
	assert.Empty(t, calls, "handlers registered during dispatch join the next dispatch")

	require.NoError(t, ed.Dispatch(context.Background(), newTestEvent("X", nil)))
	assert.Equal(t, []string{"late"}, calls)
}

func TestDispatcher_Handlers_IsReadOnly(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	ed.Register("X", newRecordingHandler("a", &calls))

	snapshot := ed.Handlers()
	delete(snapshot, "X")

	_, ok := ed.HandlersFor("X")
	assert.True(t, ok)
}

func TestDispatcher_Dispatch_NilEvent(t *testing.T) {
	var calls []string
	ed := events.NewEventDispatcher()
	ed.Register("X", newRecordingHandler("a", &calls))

	assert.NotPanics(t, func() {
		assert.NoError(t, ed.Dispatch(context.Background(), nil))
	})
	assert.Empty(t, calls)
}

type countingHandler struct {
	calls atomic.Int64
}

func (h *countingHandler) Handle(context.Context, events.Event) error {
	h.calls.Add(1)
	return nil
}

func TestDispatcher_ConcurrentAccess(t *testing.T) {
	ed := events.NewEventDispatcher()
	counter := &countingHandler{}
	ed.Register("X", counter)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := &countingHandler{}
			for j := 0; j < 100; j++ {
				ed.Register("X", h)
				assert.NoError(t, ed.Dispatch(context.Background(), newTestEvent("X", j)))
				_ = ed.Has("X", h)
				_ = ed.Handlers()
				ed.Remove("X", h)
			}
		}()
	}
	wg.Wait()

	handlers, ok := ed.HandlersFor("X")
	require.True(t, ok)
	assert.Len(t, handlers, 1)
	assert.EqualValues(t, workers*100, counter.calls.Load())
}

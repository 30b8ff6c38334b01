package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeHandle struct {
	id string

	mu       sync.Mutex
	received []string
	sendErr  error
}

func (f *fakeHandle) ID() string { return f.id }

func (f *fakeHandle) Send(event string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return f.sendErr
	}
	f.received = append(f.received, event)
	return nil
}

func (f *fakeHandle) Close() error { return nil }

func (f *fakeHandle) events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.received...)
}

func Test_Register_IsIdempotent(t *testing.T) {

	hub := NewHub()
	handle := &fakeHandle{id: "h1"}

	hub.Register("user_a", handle)
	hub.Register("user_a", handle)

	assert.Len(t, hub.Lookup("user_a"), 1)
}

func Test_Unregister_WhenHandleAbsent_IsNoOp(t *testing.T) {

	hub := NewHub()
	handle := &fakeHandle{id: "h1"}

	hub.Unregister("user_a", handle)

	hub.Register("user_a", handle)
	hub.Unregister("user_a", handle)
	hub.Unregister("user_a", handle)

	assert.Empty(t, hub.Lookup("user_a"))
}

func Test_Lookup_ReflectsMultipleConnections(t *testing.T) {

	hub := NewHub()
	hub.Register("user_a", &fakeHandle{id: "h1"})
	hub.Register("user_a", &fakeHandle{id: "h2"})

	assert.Len(t, hub.Lookup("user_a"), 2)
	assert.Empty(t, hub.Lookup("user_b"))
}

func Test_Push_WhenNoConnections_DoesNotPanic(t *testing.T) {

	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Push("user_a", "notification:new", map[string]any{"hello": "world"})
	})
}

func Test_Push_WhenOneHandleFails_OthersStillReceive(t *testing.T) {

	hub := NewHub()
	failing := &fakeHandle{id: "h1", sendErr: errors.New("connection reset")}
	healthy := &fakeHandle{id: "h2"}

	hub.Register("user_a", failing)
	hub.Register("user_a", healthy)

	hub.Push("user_a", "notification:new", nil)

	assert.Equal(t, []string{"notification:new"}, healthy.events())
}

func Test_Hub_ConcurrentRegisterUnregister(t *testing.T) {

	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			handle := &fakeHandle{id: fmt.Sprintf("h%d", i)}
			hub.Register("user_a", handle)
			hub.Push("user_a", "notification:new", nil)
			hub.Unregister("user_a", handle)
		}(i)
	}
	wg.Wait()

	assert.Empty(t, hub.Lookup("user_a"))
}

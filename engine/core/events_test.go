package core

import (
	"testing"
)

func withEvents(t *testing.T) {
	t.Helper()
	if !EventInitialize() {
		t.Fatalf("event system already running")
	}
	t.Cleanup(func() { _ = EventShutdown() })
}

func TestEventFireOrder(t *testing.T) {
	withEvents(t)

	var calls []string
	listener := func(name string, handled bool) FnOnEvent {
		return func(code SystemEventCode, sender, inst interface{}, data EventContext) bool {
			calls = append(calls, name)
			return handled
		}
	}
	if !EventRegister(EVENT_CODE_CULL_COMPLETED, "first", listener("first", false)) {
		t.Fatalf("register first")
	}
	if !EventRegister(EVENT_CODE_CULL_COMPLETED, "second", listener("second", true)) {
		t.Fatalf("register second")
	}
	if !EventRegister(EVENT_CODE_CULL_COMPLETED, "third", listener("third", false)) {
		t.Fatalf("register third")
	}
	if EventRegister(EVENT_CODE_CULL_COMPLETED, "first", listener("again", false)) {
		t.Errorf("duplicate listener registered")
	}

	if !EventFire(EVENT_CODE_CULL_COMPLETED, nil, EventContext{}) {
		t.Errorf("EventFire: got false, want handled")
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls: got %v, want [first second]", calls)
	}

	if !EventUnregister(EVENT_CODE_CULL_COMPLETED, "second") {
		t.Errorf("unregister second")
	}
	if EventUnregister(EVENT_CODE_CULL_COMPLETED, "second") {
		t.Errorf("second unregistered twice")
	}
	calls = nil
	if EventFire(EVENT_CODE_CULL_COMPLETED, nil, EventContext{}) {
		t.Errorf("EventFire: got handled with no handling listener left")
	}
	if len(calls) != 2 || calls[1] != "third" {
		t.Errorf("calls: got %v, want [first third]", calls)
	}
}

func TestEventContextData(t *testing.T) {
	withEvents(t)

	var got EventContext
	EventRegister(EVENT_CODE_SCENE_RELOADED, nil, func(code SystemEventCode, sender, inst interface{}, data EventContext) bool {
		got = data
		return true
	})

	var ctx EventContext
	ctx.Data.C[0] = "scene.toml"
	ctx.Data.U64[0] = 3
	EventFire(EVENT_CODE_SCENE_RELOADED, nil, ctx)
	if got.Data.C[0] != "scene.toml" || got.Data.U64[0] != 3 {
		t.Errorf("got %+v", got.Data)
	}
}

func TestEventSystemStopped(t *testing.T) {
	cb := func(SystemEventCode, interface{}, interface{}, EventContext) bool { return true }
	if EventRegister(EVENT_CODE_APPLICATION_QUIT, nil, cb) {
		t.Errorf("EventRegister succeeded before EventInitialize")
	}
	if EventFire(EVENT_CODE_APPLICATION_QUIT, nil, EventContext{}) {
		t.Errorf("EventFire succeeded before EventInitialize")
	}
	if err := EventShutdown(); err != ErrNotInitialized {
		t.Errorf("EventShutdown: got %v, want %v", err, ErrNotInitialized)
	}

	withEvents(t)
	if EventInitialize() {
		t.Errorf("second EventInitialize returned true")
	}
	if EventRegister(SystemEventCode(0), nil, cb) || EventRegister(MAX_MESSAGE_CODES, nil, cb) {
		t.Errorf("registered an out of range code")
	}
}

package core

import "sync"

type EventContext struct {
	Data struct {
		I64 [2]int64
		U64 [2]uint64
		F64 [2]float64

		I32 [4]int32
		F32 [4]float32

		C [2]string
	}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// The scene file was reloaded.
	/* Context usage:
	 * string path = data.C[0];
	 * u64 object_count = data.U64[0];
	 */
	EVENT_CODE_SCENE_RELOADED SystemEventCode = 0x02

	// A culling pass finished.
	/* Context usage:
	 * i32 inside = data.I32[0];
	 * i32 intersecting = data.I32[1];
	 * i32 outside = data.I32[2];
	 * f64 pass_ms = data.F64[0];
	 */
	EVENT_CODE_CULL_COMPLETED SystemEventCode = 0x03

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	// Lookup table for event codes.
	registered map[SystemEventCode][]*registeredEvent
}

var (
	eventMutex sync.RWMutex
	eventState *eventSystemState
)

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

// EventInitialize sets up the event system. It returns false when it was
// already running.
func EventInitialize() bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState != nil {
		return false
	}
	eventState = &eventSystemState{registered: make(map[SystemEventCode][]*registeredEvent)}
	return true
}

// EventShutdown drops every registration.
func EventShutdown() error {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState == nil {
		return ErrNotInitialized
	}
	eventState = nil
	return nil
}

func validCode(code SystemEventCode) bool {
	return code > 0 && code < MAX_MESSAGE_CODES
}

/**
 * Register to listen for when events are sent with the provided code. A listener already
 * registered for the code will not be registered again and will cause this to return false.
 * @param code The event code to listen for.
 * @param listener A comparable listener instance. Can be nil.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState == nil || !validCode(code) || onEvent == nil {
		return false
	}

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("event %d: listener already registered", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @param code The event code to stop listening for.
 * @param listener The listener instance passed to EventRegister.
 * @returns true if the event is successfully unregistered; otherwise false.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	eventMutex.Lock()
	defer eventMutex.Unlock()
	if eventState == nil || !validCode(code) {
		return false
	}

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	// Not found.
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @param code The event code to fire.
 * @param sender The sender. Can be nil.
 * @param context The event data.
 * @returns true if handled, otherwise false.
 */
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	eventMutex.RLock()
	if eventState == nil || !validCode(code) {
		eventMutex.RUnlock()
		return false
	}
	events := append([]*registeredEvent(nil), eventState.registered[code]...)
	eventMutex.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

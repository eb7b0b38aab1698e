package core

import (
	"errors"
)

var (
	ErrUnsupported     = errors.New("operation not supported")
	ErrIndexOutOfRange = errors.New("component index out of range")
	ErrUnknownBackend  = errors.New("unknown vector backend")
	ErrInvalidScene    = errors.New("invalid scene description")
	ErrBoundsNotFound  = errors.New("bounds not found")
	ErrWatcherClosed   = errors.New("scene watcher already closed")
	ErrQueueFull       = errors.New("queue is full")
	ErrQueueEmpty      = errors.New("queue is empty")
	ErrNotInitialized  = errors.New("not initialized")
)

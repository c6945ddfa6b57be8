// Package async runs one background job at a time for the single-threaded
// game loop and hands its result back through a non-blocking Poll.
package async

import (
	"context"
	"sync"
)

// Result carries a finished job's value with the token of the request that
// produced it.
type Result[T any] struct {
	Token int
	Value T
	Err   error
}

// Loader starts jobs on goroutines. Only the newest request's result is ever
// delivered; older ones are dropped when they complete.
type Loader[T any] struct {
	mu      sync.Mutex
	token   int
	cancel  context.CancelFunc
	pending *Result[T]
}

func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{}
}

// Start cancels any outstanding job and runs fn with a fresh token.
func (l *Loader[T]) Start(ctx context.Context, fn func(ctx context.Context) (T, error)) int {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.token++
	token := l.token
	jobCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.pending = nil
	l.mu.Unlock()

	go func() {
		value, err := fn(jobCtx)
		l.finish(Result[T]{Token: token, Value: value, Err: err})
	}()
	return token
}

func (l *Loader[T]) finish(r Result[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r.Token != l.token {
		return
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.pending = &r
}

// Poll returns the newest request's result once, or false while it is still
// running.
func (l *Loader[T]) Poll() (Result[T], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return Result[T]{}, false
	}
	r := *l.pending
	l.pending = nil
	return r, true
}

// Busy reports whether a started job has not yet delivered.
func (l *Loader[T]) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

// Cancel abandons the outstanding job; its result will be discarded.
func (l *Loader[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.token++
	l.pending = nil
}

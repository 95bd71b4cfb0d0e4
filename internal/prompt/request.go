// Package prompt models the rename prompt shown before a file is imported.
//
// A Request is a one-shot result: it is resolved exactly once, either by
// Confirm with the entered name or by Cancel. Whoever resolves it first wins;
// later calls are ignored.
package prompt

import (
	"context"
	"sync"
)

// State is the lifecycle of a Request.
type State int

const (
	StateOpen State = iota
	StateConfirmed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Request is a pending filename prompt pre-filled with the original name.
type Request struct {
	original string

	once  sync.Once
	done  chan struct{}
	mu    sync.Mutex
	state State
	name  string
}

// New opens a prompt for original.
func New(original string) *Request {
	return &Request{
		original: original,
		done:     make(chan struct{}),
	}
}

// Original returns the name the prompt was opened with.
func (r *Request) Original() string {
	return r.original
}

// Confirm resolves the prompt with name, which may be empty.
// It returns false if the prompt was already resolved.
func (r *Request) Confirm(name string) bool {
	return r.resolve(StateConfirmed, name)
}

// Cancel resolves the prompt without a name.
// It returns false if the prompt was already resolved.
func (r *Request) Cancel() bool {
	return r.resolve(StateCancelled, "")
}

func (r *Request) resolve(s State, name string) bool {
	resolved := false
	r.once.Do(func() {
		r.mu.Lock()
		r.state = s
		r.name = name
		r.mu.Unlock()
		close(r.done)
		resolved = true
	})
	return resolved
}

// State returns the current state.
func (r *Request) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the prompt is resolved or ctx is done.
// ok is true only for a confirmed prompt. A done context cancels the
// prompt and returns ctx.Err().
func (r *Request) Wait(ctx context.Context) (name string, ok bool, err error) {
	select {
	case <-r.done:
	case <-ctx.Done():
		r.Cancel()
		// Cancel may have lost the race against a confirm.
		if r.State() != StateConfirmed {
			return "", false, ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateConfirmed {
		return "", false, nil
	}
	return r.name, true, nil
}

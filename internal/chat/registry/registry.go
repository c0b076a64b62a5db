// Package registry tracks one agent session per user: the remote session
// handle and the next message sequence number. All access is serialized
// per user so concurrent requests never race on creation or sequencing.
package registry

import (
	"context"
	"sync"

	pkgLog "agent-relay/pkg/log"
)

// CreateFunc opens a remote session and returns its handle.
type CreateFunc func(ctx context.Context) (string, error)

// Registry maps user IDs to their session slot. State is in-memory only
// and lost on restart.
type Registry struct {
	l pkgLog.Logger

	mu    sync.Mutex
	users map[string]*userSession
}

// userSession is one user's slot. Its mutex serializes session creation
// and sequence reservation for that user; the handle is immutable while
// set and nextSeq only moves forward by one per reservation.
type userSession struct {
	mu      sync.Mutex
	handle  string
	nextSeq int
}

// New creates an empty Registry.
func New(l pkgLog.Logger) *Registry {
	return &Registry{
		l:     l,
		users: make(map[string]*userSession),
	}
}

// slot returns the user's lock slot, inserting an empty one if needed.
// An empty slot holds no session; it only exists to carry the per-user
// mutex.
func (r *Registry) slot(userID string) *userSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.users[userID]
	if !ok {
		s = &userSession{}
		r.users[userID] = s
	}
	return s
}

// GetOrCreate returns the user's session handle and reserves the next
// sequence number in one atomic step. On first contact it calls create
// exactly once, even under concurrent requests: later callers block on
// the user's slot and observe the created session. A failed create
// leaves the slot empty so the next call retries from scratch.
func (r *Registry) GetOrCreate(ctx context.Context, userID string, create CreateFunc) (string, int, error) {
	s := r.slot(userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == "" {
		handle, err := create(ctx)
		if err != nil {
			return "", 0, err
		}
		s.handle = handle
		s.nextSeq = 1
		r.l.Infof(ctx, "registry: created session %s for user %s", handle, userID)
	}

	seq := s.nextSeq
	s.nextSeq++
	return s.handle, seq, nil
}

// Invalidate clears the user's session, but only if it still holds
// staleHandle. A session recreated by a concurrent request is left
// untouched.
func (r *Registry) Invalidate(userID, staleHandle string) {
	r.mu.Lock()
	s, ok := r.users[userID]
	r.mu.Unlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == staleHandle {
		s.handle = ""
		s.nextSeq = 0
	}
}

// Handle returns the user's current session handle, if one is established.
func (r *Registry) Handle(userID string) (string, bool) {
	r.mu.Lock()
	s, ok := r.users[userID]
	r.mu.Unlock()
	if !ok {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == "" {
		return "", false
	}
	return s.handle, true
}

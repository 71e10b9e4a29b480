package engine

import "sync"

// Target holds the address being monitored and the most recent sampling
// error. It is written by the UI and read by the Sampler; the lock only ever
// covers copying the strings in or out.
type Target struct {
	mu      sync.RWMutex
	address string
	lastErr string
}

// NewTarget creates a Target for the given address.
func NewTarget(address string) *Target {
	return &Target{address: address}
}

// Address returns the current address.
func (t *Target) Address() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.address
}

// SetAddress replaces the current address.
func (t *Target) SetAddress(address string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.address = address
}

// LastError returns the most recent error message, empty after a success.
func (t *Target) LastError() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

// SetLastError replaces the error message. An empty string clears it.
func (t *Target) SetLastError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastErr = msg
}

// Snapshot returns the address and error message under one read lock.
func (t *Target) Snapshot() (address, lastErr string) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.address, t.lastErr
}

package routetree

import "sync"

// MemoryLocation is an in-memory navsync.Location, for hosts without a
// real address bar and for tests.
type MemoryLocation struct {
	mu  sync.Mutex
	url string
}

// URL returns the current address.
func (l *MemoryLocation) URL() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.url
}

// SetURL replaces the current address.
func (l *MemoryLocation) SetURL(url string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.url = url
}

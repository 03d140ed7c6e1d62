package testutil

import (
	"context"
	"sync"

	"github.com/vk/we/internal/repo"
)

// RecordingFactory hands out a RecordingCreator per call and remembers the
// address each one was built with.
type RecordingFactory struct {
	// Err, if set, is returned by every Create call.
	Err error

	mu        sync.Mutex
	addresses []string
	creators  []*RecordingCreator
}

// New satisfies repo.Factory.
func (f *RecordingFactory) New(address string) repo.RepositoryCreator {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := &RecordingCreator{Address: address, err: f.Err}
	f.addresses = append(f.addresses, address)
	f.creators = append(f.creators, c)
	return c
}

// Addresses returns the addresses passed to New, in call order.
func (f *RecordingFactory) Addresses() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.addresses...)
}

// Creators returns every creator handed out so far.
func (f *RecordingFactory) Creators() []*RecordingCreator {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*RecordingCreator(nil), f.creators...)
}

// CreateCalls sums Create invocations across all handed-out creators.
func (f *RecordingFactory) CreateCalls() int {
	total := 0
	for _, c := range f.Creators() {
		total += c.Calls()
	}
	return total
}

// RecordingCreator is a repo.RepositoryCreator that counts Create calls.
type RecordingCreator struct {
	Address string

	err   error
	mu    sync.Mutex
	calls int
}

// Create records the call and returns the configured error.
func (c *RecordingCreator) Create(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.err
}

// Calls returns how many times Create was invoked.
func (c *RecordingCreator) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

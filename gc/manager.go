// File: gc/manager.go
// Package gc implements the reference-counted region manager.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-gc/api"
	"github.com/momentics/hioload-gc/internal/freelist"
)

// Config holds parameters immutable per manager instance.
type Config struct {
	// Policy decides the deferred-collection cadence. Nil selects
	// RandomizedPolicy(DefaultSweepBound).
	Policy api.CollectPolicy

	// MaxBytes caps the payload bytes registered at any time.
	// Zero means unlimited.
	MaxBytes uint64

	// MmapThreshold is the payload size, in bytes, from which the OS
	// allocator is used instead of the Go heap. Zero selects
	// DefaultMmapThreshold.
	MmapThreshold int
}

const (
	// DefaultSweepBound bounds the randomized release countdown.
	DefaultSweepBound = 64

	// DefaultMmapThreshold routes payloads of 64 KiB and above to the
	// OS allocator.
	DefaultMmapThreshold = 64 * 1024
)

// Manager owns the region and ref tables and all aggregate counters.
// Instances are independent; there is no package-level state. A single
// mutex serializes every operation.
type Manager struct {
	mu sync.Mutex

	regions    []region
	regionFree *freelist.List
	refs       []refRecord
	refFree    *freelist.List

	regionCount int
	liveRefs    int
	bytesInUse  uint64
	countdown   int

	policy        api.CollectPolicy
	maxBytes      uint64
	mmapThreshold int
	closed        bool
}

// NewManager constructs a manager. A nil config selects defaults.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	m := &Manager{
		regionFree:    freelist.New(),
		refFree:       freelist.New(),
		policy:        cfg.Policy,
		maxBytes:      cfg.MaxBytes,
		mmapThreshold: cfg.MmapThreshold,
	}
	if m.policy == nil {
		m.policy = RandomizedPolicy(DefaultSweepBound)
	}
	if m.mmapThreshold <= 0 {
		m.mmapThreshold = DefaultMmapThreshold
	}
	m.countdown = m.reseed()
	return m
}

// Alloc registers a new zero-initialized region of size bytes and
// returns its first ref. Size 0 is legal and yields a zero-length
// payload. On failure nothing is registered.
func (m *Manager) Alloc(size int) (Ref, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Ref{}, api.ErrManagerClosed
	}
	if size < 0 {
		return Ref{}, fmt.Errorf("%w: negative size %d", api.ErrAllocFailed, size)
	}
	if m.maxBytes > 0 && m.bytesInUse+uint64(size) > m.maxBytes {
		return Ref{}, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			api.ErrBudgetExceeded, size, m.bytesInUse, m.maxBytes)
	}

	data, mapped, err := allocPayload(size, m.mmapThreshold)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %v", api.ErrAllocFailed, err)
	}

	slot := m.takeRegionSlotLocked()
	reg := &m.regions[slot]
	reg.data = data
	reg.size = size
	reg.refs = 0
	reg.mapped = mapped
	reg.live = true
	m.regionCount++
	m.bytesInUse += uint64(size)

	return m.newRefLocked(slot), nil
}

// Clone creates an additional ref to the region ref designates and
// bumps its strong-ref count. Dead, stale, and zero tokens are
// rejected without touching any count.
func (m *Manager) Clone(ref Ref) (Ref, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Ref{}, api.ErrManagerClosed
	}
	rec, _ := m.lookupRefLocked(ref)
	if rec == nil {
		return Ref{}, api.ErrInvalidRef
	}
	return m.newRefLocked(rec.regionSlot), nil
}

// Release consumes the ref held in *ref and resets it to the invalid
// sentinel. Releasing an empty or stale slot is a silent no-op. The
// target region's strong-ref count drops by one; the payload is not
// freed here — the deferred sweep does that once the count is zero.
func (m *Manager) Release(ref *Ref) {
	if ref == nil || *ref == (Ref{}) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	token := *ref
	*ref = Ref{}
	if m.closed {
		return
	}
	rec, _ := m.lookupRefLocked(token)
	if rec == nil {
		return
	}
	m.unlinkRefLocked(token.slot)

	// Deferred collection: amortize sweep cost across releases.
	if m.countdown > 0 {
		m.countdown--
		return
	}
	m.collectLocked()
	m.countdown = m.reseed()
}

// Collect triggers a synchronous sweep. After it returns, no region
// that had a zero strong-ref count at entry is still registered.
func (m *Manager) Collect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.collectLocked()
}

// Close tears the manager down: every payload is returned to the OS or
// heap regardless of outstanding refs, and all further operations are
// rejected. Outstanding tokens become permanently stale.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	for i := range m.regions {
		if m.regions[i].live {
			m.reclaimRegionLocked(uint32(i))
		}
	}
	m.liveRefs = 0
	m.refs = nil
	m.regions = nil
	m.closed = true
	return nil
}

// reseed pulls the next countdown from the policy, clamped positive.
func (m *Manager) reseed() int {
	n := m.policy.Reseed()
	if n < 1 {
		n = 1
	}
	return n
}

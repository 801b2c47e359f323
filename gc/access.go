// File: gc/access.go
// Package gc implements bounds-checked payload access.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

// Write copies src into the region ref designates, starting at off.
// Returns len(src) on success and 0 on any rejected precondition: dead
// ref, empty src, negative offset, or a range leaving [0, size]. The
// range end may touch size exactly. Rejection copies nothing — writes
// are all-or-nothing.
func (m *Manager) Write(ref Ref, off int, src []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg := m.accessibleLocked(ref, off, len(src))
	if reg == nil {
		return 0
	}
	copy(reg.data[off:off+len(src)], src)
	return len(src)
}

// Read copies from the region ref designates, starting at off, into
// dst. Same all-or-nothing contract as Write: len(dst) on success,
// 0 on rejection.
func (m *Manager) Read(ref Ref, off int, dst []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg := m.accessibleLocked(ref, off, len(dst))
	if reg == nil {
		return 0
	}
	copy(dst, reg.data[off:off+len(dst)])
	return len(dst)
}

// Raw returns a direct, unchecked view of the region's payload, or nil
// for a dead ref. The view bypasses every bounds check and is
// invalidated the instant the region is reclaimed; callers take full
// responsibility for anything done through it.
func (m *Manager) Raw(ref Ref) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	rec, reg := m.lookupRefLocked(ref)
	if rec == nil {
		return nil
	}
	return reg.data
}

// Size reports the payload size of the region ref designates, or 0 for
// a dead ref.
func (m *Manager) Size(ref Ref) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0
	}
	rec, reg := m.lookupRefLocked(ref)
	if rec == nil {
		return 0
	}
	return reg.size
}

// accessibleLocked validates a transfer of n bytes at off through ref
// and returns the target region, or nil when the request must be
// rejected. The end-of-range sum is widened to uint64 so it cannot
// wrap. Caller holds m.mu.
func (m *Manager) accessibleLocked(ref Ref, off, n int) *region {
	if m.closed || n <= 0 || off < 0 {
		return nil
	}
	rec, reg := m.lookupRefLocked(ref)
	if rec == nil || reg.data == nil {
		return nil
	}
	if uint64(off)+uint64(n) > uint64(reg.size) {
		return nil
	}
	return reg
}

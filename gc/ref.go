// File: gc/ref.go
// Package gc implements the ref (handle) table of the region manager.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

// Ref is an opaque token designating exactly one region. The zero
// value is the invalid sentinel; Release resets the caller's variable
// to it. Copying a Ref does not create a new reference — only Clone
// does, and only Clone moves the region's strong-ref count.
type Ref struct {
	slot uint32
	gen  uint32
}

// refRecord is one slot of the ref table. Generations start at 1 and
// are bumped on every unlink, so tokens minted for an earlier
// incarnation of the slot stop resolving.
type refRecord struct {
	regionSlot uint32
	gen        uint32
	live       bool
}

// newRefLocked binds a fresh ref to the region in regionSlot and
// returns its token. Caller holds m.mu and guarantees the region slot
// is live.
func (m *Manager) newRefLocked(regionSlot uint32) Ref {
	var slot uint32
	if s, ok := m.refFree.Get(); ok {
		slot = s
	} else {
		m.refs = append(m.refs, refRecord{gen: 1})
		slot = uint32(len(m.refs) - 1)
	}
	rec := &m.refs[slot]
	rec.regionSlot = regionSlot
	rec.live = true

	m.regions[regionSlot].refs++
	m.liveRefs++
	return Ref{slot: slot, gen: rec.gen}
}

// lookupRefLocked resolves a token to its ref record and region.
// Returns nil, nil for dead, stale, and zero tokens. A live ref whose
// region slot is not live is a broken invariant and aborts.
func (m *Manager) lookupRefLocked(ref Ref) (*refRecord, *region) {
	if ref.gen == 0 || int(ref.slot) >= len(m.refs) {
		return nil, nil
	}
	rec := &m.refs[ref.slot]
	if !rec.live || rec.gen != ref.gen {
		return nil, nil
	}
	if int(rec.regionSlot) >= len(m.regions) {
		violated("ref slot %d points past region table", ref.slot)
	}
	reg := &m.regions[rec.regionSlot]
	if !reg.live {
		violated("ref slot %d points at reclaimed region slot %d", ref.slot, rec.regionSlot)
	}
	return rec, reg
}

// unlinkRefLocked retires a live ref record and drops its region's
// strong-ref count. Caller holds m.mu.
func (m *Manager) unlinkRefLocked(slot uint32) {
	rec := &m.refs[slot]
	reg := &m.regions[rec.regionSlot]
	reg.refs--
	if reg.refs < 0 {
		violated("region slot %d strong-ref count below zero", rec.regionSlot)
	}
	rec.live = false
	rec.gen++
	m.refFree.Put(slot)
	m.liveRefs--
}

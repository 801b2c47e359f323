// File: gc/region.go
// Package gc implements the region table of the region manager.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import "fmt"

// region is one slot of the region table: a payload plus its
// strong-ref count. A region stays registered while refs > 0 and
// until a sweep visits it after the count reaches zero.
type region struct {
	data   []byte
	size   int
	refs   int
	mapped bool // payload obtained from the OS allocator
	gen    uint32
	live   bool
}

// takeRegionSlotLocked returns a free region slot, growing the table
// when the free list is empty. Caller holds m.mu.
func (m *Manager) takeRegionSlotLocked() uint32 {
	if s, ok := m.regionFree.Get(); ok {
		return s
	}
	m.regions = append(m.regions, region{gen: 1})
	return uint32(len(m.regions) - 1)
}

// reclaimRegionLocked frees a region's payload and retires its slot.
// Only the sweep and Close call this, and only at refs == 0 (Close
// force-drops whatever is left). Caller holds m.mu.
func (m *Manager) reclaimRegionLocked(slot uint32) {
	reg := &m.regions[slot]
	freePayload(reg.data, reg.mapped)
	m.bytesInUse -= uint64(reg.size)
	m.regionCount--
	reg.data = nil
	reg.size = 0
	reg.mapped = false
	reg.live = false
	reg.gen++
	m.regionFree.Put(slot)
}

// collectLocked is the sweep: one pass over the region table, visiting
// every slot exactly once and reclaiming those with a zero strong-ref
// count. Slot-table traversal makes unlink-and-continue trivially
// safe. Caller holds m.mu.
func (m *Manager) collectLocked() {
	for i := range m.regions {
		reg := &m.regions[i]
		if reg.live && reg.refs == 0 {
			m.reclaimRegionLocked(uint32(i))
		}
	}
}

// violated aborts on a broken internal invariant. Continuing past one
// risks corrupting unrelated regions, so this is not recoverable.
func violated(format string, args ...any) {
	panic(fmt.Sprintf("hioload-gc: consistency violation: "+format, args...))
}

// File: gc/stats.go
// Package gc implements diagnostics reporting.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import (
	"fmt"
	"io"
	"os"

	"github.com/momentics/hioload-gc/api"
)

// Stats returns an accounting snapshot. Read-only; manager state is
// never mutated by diagnostics.
func (m *Manager) Stats() api.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statsLocked()
}

// DumpStats writes one advisory, human-readable stats line to w.
// A nil writer defaults to stderr. The format is not a parsing
// contract.
func (m *Manager) DumpStats(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	s := m.Stats()
	fmt.Fprintf(w, "[gc] regions=%d refs=%d bytes_in_use=%d reclaimable=%d countdown=%d\n",
		s.Regions, s.Refs, s.BytesInUse, s.Reclaimable, s.Countdown)
}

func (m *Manager) statsLocked() api.Stats {
	reclaimable := 0
	for i := range m.regions {
		if m.regions[i].live && m.regions[i].refs == 0 {
			reclaimable++
		}
	}
	return api.Stats{
		Regions:     m.regionCount,
		Refs:        m.liveRefs,
		BytesInUse:  m.bytesInUse,
		Reclaimable: reclaimable,
		Countdown:   m.countdown,
	}
}

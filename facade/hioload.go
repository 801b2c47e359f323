// File: facade/hioload.go
// Unified facade layer for hioload-gc library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadGC struct, which aggregates the region
// manager and the control plane behind a single facade. It wires the
// sweep cadence policy, allocation budget, metrics registry, and debug
// probes from immutable configuration, and exposes the full
// alloc/clone/release/read/write lifecycle plus runtime services such
// as Stats, Debug, and Metrics.

package facade

import (
	"io"

	"github.com/momentics/hioload-gc/api"
	"github.com/momentics/hioload-gc/control"
	"github.com/momentics/hioload-gc/gc"
)

// Config holds parameters immutable per run.
type Config struct {
	MaxBytes      uint64 // Payload byte budget across all regions; 0 = unlimited
	MmapThreshold int    // Payload size from which the OS allocator is used
	SweepBound    int    // Countdown bound (randomized) or constant (deterministic)
	Deterministic bool   // Use a fixed sweep cadence instead of a randomized one
	EnableMetrics bool   // Whether to publish accounting snapshots to metrics
	EnableDebug   bool   // Whether to register debug probes
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical use cases without tuning.
func DefaultConfig() *Config {
	return &Config{
		MaxBytes:      0,                       // No budget cap
		MmapThreshold: gc.DefaultMmapThreshold, // 64 KiB OS-allocator threshold
		SweepBound:    gc.DefaultSweepBound,    // Sweep within 64 releases
		Deterministic: false,                   // Randomized cadence by default
		EnableMetrics: true,                    // Enable built-in metrics
		EnableDebug:   true,                    // Enable debug probes
	}
}

// HioloadGC is the main facade type.
type HioloadGC struct {
	manager *gc.Manager
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	config  *Config
}

// New constructs HioloadGC with the given configuration. It builds the
// cadence policy, the manager, and the control plane, and registers
// the stats probe when debugging is enabled.
func New(cfg *Config) (*HioloadGC, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &HioloadGC{config: cfg}

	var policy api.CollectPolicy
	if cfg.Deterministic {
		policy = gc.FixedPolicy(cfg.SweepBound)
	} else {
		policy = gc.RandomizedPolicy(cfg.SweepBound)
	}

	h.manager = gc.NewManager(&gc.Config{
		Policy:        policy,
		MaxBytes:      cfg.MaxBytes,
		MmapThreshold: cfg.MmapThreshold,
	})

	if cfg.EnableMetrics {
		h.metrics = control.NewMetricsRegistry()
	}
	if cfg.EnableDebug {
		h.probes = control.NewDebugProbes()
		h.probes.RegisterProbe("gc.stats", func() any {
			return h.manager.Stats()
		})
	}
	return h, nil
}

// Alloc registers a new region and returns its first ref.
func (h *HioloadGC) Alloc(size int) (gc.Ref, error) {
	ref, err := h.manager.Alloc(size)
	h.publish()
	return ref, err
}

// Clone duplicates a live ref.
func (h *HioloadGC) Clone(ref gc.Ref) (gc.Ref, error) {
	out, err := h.manager.Clone(ref)
	h.publish()
	return out, err
}

// Release consumes the caller's ref slot and resets it.
func (h *HioloadGC) Release(ref *gc.Ref) {
	h.manager.Release(ref)
	h.publish()
}

// Write copies src into the designated region at off.
func (h *HioloadGC) Write(ref gc.Ref, off int, src []byte) int {
	return h.manager.Write(ref, off, src)
}

// Read copies from the designated region at off into dst.
func (h *HioloadGC) Read(ref gc.Ref, off int, dst []byte) int {
	return h.manager.Read(ref, off, dst)
}

// Raw exposes the unchecked payload view of a live ref.
func (h *HioloadGC) Raw(ref gc.Ref) []byte {
	return h.manager.Raw(ref)
}

// Collect triggers a manual sweep.
func (h *HioloadGC) Collect() {
	h.manager.Collect()
	h.publish()
}

// Stats returns the manager's accounting snapshot.
func (h *HioloadGC) Stats() api.Stats {
	return h.manager.Stats()
}

// DumpStats writes the advisory stats line to w (stderr when nil).
func (h *HioloadGC) DumpStats(w io.Writer) {
	h.manager.DumpStats(w)
}

// GetManager returns the underlying region manager.
func (h *HioloadGC) GetManager() *gc.Manager {
	return h.manager
}

// GetDebug returns the debug probe API, or nil when disabled.
func (h *HioloadGC) GetDebug() api.Debug {
	if h.probes == nil {
		return nil
	}
	return h.probes
}

// GetMetrics returns the metrics registry, or nil when disabled.
func (h *HioloadGC) GetMetrics() *control.MetricsRegistry {
	return h.metrics
}

// Shutdown tears down the manager; every payload is returned and all
// outstanding refs become stale. Safe to call more than once.
func (h *HioloadGC) Shutdown() error {
	err := h.manager.Close()
	h.publish()
	return err
}

// publish pushes the current snapshot to the metrics registry.
func (h *HioloadGC) publish() {
	if h.metrics != nil {
		h.metrics.Record(h.manager.Stats())
	}
}

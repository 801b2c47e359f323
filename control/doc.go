// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection layer for hioload-gc.
//
// Provides concurrent-safe observability primitives:
//   - Metrics registry fed with manager accounting snapshots
//   - Debug hook and probe registration with state export
//
// The control plane only observes the manager; it never drives
// allocation, release, or sweeps.
package control

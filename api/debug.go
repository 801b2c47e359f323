// File: api/debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Live debug and introspection support for production workloads.

package api

// Debug exposes runtime introspection of manager internals.
type Debug interface {
	// DumpState emits a snapshot of registered probes for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a new named debug probe.
	RegisterProbe(name string, fn func() any)
}

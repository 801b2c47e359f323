// Package gc
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Explicit reference-counted region manager for hioload-gc.
// Callers allocate opaque byte regions, clone and release refs to
// them, and the manager reclaims a region's payload once no ref is
// left and a sweep runs. Sweeps are amortized across releases by a
// pluggable countdown policy; reclamation is gated strictly on the
// strong-ref count, never on sweep timing.
//
// Reference cycles cannot form (refs point at regions, never at other
// refs), payloads are opaque bytes and are never moved or resized.
// All operations on a Manager are guarded by a single mutex.
package gc

// File: api/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Aggregate accounting snapshot exposed by the region manager.

package api

// Stats aggregates live region/ref accounting for observability.
//
// Reclaimable counts regions whose strong-ref count already dropped to
// zero but which have not been visited by a sweep yet; their bytes are
// still included in BytesInUse until reclamation actually happens.
type Stats struct {
	Regions     int    // regions currently registered (live + reclaimable)
	Refs        int    // live refs across all regions
	BytesInUse  uint64 // payload bytes of all registered regions
	Reclaimable int    // regions with zero strong-ref count awaiting sweep
	Countdown   int    // releases left until the next deferred sweep
}

// File: api/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pluggable sweep cadence policy, decoupled from the sweep mechanism.

package api

// CollectPolicy decides how many releases may pass before the manager
// runs its next deferred sweep. The manager consults it whenever the
// countdown reaches zero.
type CollectPolicy interface {
	// Reseed returns the next countdown value. Must be positive.
	Reseed() int
}

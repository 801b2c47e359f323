// File: gc/policy.go
// Package gc implements deferred-collection cadence policies.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import (
	"math/rand"
	"time"

	"github.com/momentics/hioload-gc/api"
)

// randomizedPolicy reseeds the countdown with a uniform value in
// [1, bound]. Randomizing the cadence spreads sweep cost across
// unrelated release bursts.
type randomizedPolicy struct {
	rng   *rand.Rand
	bound int
}

// RandomizedPolicy returns the default cadence policy. Bounds below 1
// fall back to DefaultSweepBound.
func RandomizedPolicy(bound int) api.CollectPolicy {
	if bound < 1 {
		bound = DefaultSweepBound
	}
	return &randomizedPolicy{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		bound: bound,
	}
}

func (p *randomizedPolicy) Reseed() int {
	return 1 + p.rng.Intn(p.bound)
}

// fixedPolicy reseeds the countdown with a constant, giving tests and
// latency-sensitive callers a deterministic sweep cadence.
type fixedPolicy int

// FixedPolicy returns a policy with a constant countdown of n
// releases, clamped to at least 1.
func FixedPolicy(n int) api.CollectPolicy {
	if n < 1 {
		n = 1
	}
	return fixedPolicy(n)
}

func (p fixedPolicy) Reseed() int { return int(p) }

var (
	_ api.CollectPolicy = (*randomizedPolicy)(nil)
	_ api.CollectPolicy = fixedPolicy(0)
)

// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts of the hioload-gc library: structured errors,
// accounting snapshots, the sweep cadence policy, and debug probing.
// Implementation packages (gc, control, facade) depend on api and
// never the other way around.
package api

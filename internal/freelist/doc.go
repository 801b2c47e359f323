// Package freelist
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot index recycling shared by the gc package's region and ref
// tables. Backed by github.com/eapache/queue.
package freelist

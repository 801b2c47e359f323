// File: internal/freelist/freelist.go
// Package freelist
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO recycling of table slot indexes for the region and ref tables.

package freelist

import "github.com/eapache/queue"

// List hands out previously retired slot indexes in FIFO order.
// FIFO maximizes the distance between retiring a slot and reusing it,
// so stale tokens keep missing on the generation check for as long as
// possible.
type List struct {
	q *queue.Queue
}

// New returns an empty free list.
func New() *List {
	return &List{q: queue.New()}
}

// Put retires a slot index for later reuse.
func (l *List) Put(slot uint32) {
	l.q.Add(slot)
}

// Get returns the oldest retired slot index, if any.
func (l *List) Get() (uint32, bool) {
	if l.q.Length() == 0 {
		return 0, false
	}
	return l.q.Remove().(uint32), true
}

// Len reports how many retired slots are waiting for reuse.
func (l *List) Len() int {
	return l.q.Length()
}

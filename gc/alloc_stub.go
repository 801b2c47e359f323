// File: gc/alloc_stub.go
//go:build !linux && !windows
// +build !linux,!windows

//
// Package gc: portable payload allocator for platforms without a
// dedicated OS path. Everything comes from the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

func allocPayload(size, _ int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func freePayload(_ []byte, _ bool) {}

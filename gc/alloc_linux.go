// File: gc/alloc_linux.go
//go:build linux
// +build linux

//
// Package gc: Linux-specific payload allocator.
//
// Payloads at or above the mmap threshold come from anonymous private
// mappings, rounded up to page size, so reclamation returns them to
// the OS immediately. Fallback to Go heap if the mapping fails.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import "golang.org/x/sys/unix"

// allocPayload obtains a zero-initialized buffer of exactly size
// bytes. The bool reports whether the buffer is OS-mapped and must go
// back through Munmap.
func allocPayload(size, threshold int) ([]byte, bool, error) {
	if size < threshold {
		return make([]byte, size), false, nil
	}
	pg := unix.Getpagesize()
	length := ((size + pg - 1) / pg) * pg

	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size), false, nil
	}
	// Reslice to the requested size; capacity keeps the full mapping
	// so Munmap can find it again.
	return data[:size], true, nil
}

// freePayload returns an OS-mapped payload to the kernel. Heap
// payloads are left to the Go runtime.
func freePayload(data []byte, mapped bool) {
	if !mapped || cap(data) == 0 {
		return
	}
	unix.Munmap(data[:cap(data)])
}

// File: gc/alloc_windows.go
//go:build windows
// +build windows

//
// Package gc: Windows-specific payload allocator.
//
// Payloads at or above the mmap threshold are reserved and committed
// via VirtualAlloc. Fallback to Go heap on failure.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package gc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocPayload obtains a zero-initialized buffer of exactly size
// bytes. The bool reports whether the buffer came from VirtualAlloc.
func allocPayload(size, threshold int) ([]byte, bool, error) {
	if size < threshold {
		return make([]byte, size), false, nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return make([]byte, size), false, nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), true, nil
}

// freePayload releases a VirtualAlloc'd payload. Heap payloads are
// left to the Go runtime.
func freePayload(data []byte, mapped bool) {
	if !mapped || len(data) == 0 {
		return
	}
	// MEM_RELEASE requires a zero size and the base address.
	windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}

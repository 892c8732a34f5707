// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "unsafe"

// cacheLineAlign is the alignment guarantee allocScratch provides: at least
// one cache line (64 bytes on every architecture this kernel targets).
const cacheLineAlign = 64

// allocScratch returns a slice of n elements of T whose first element is
// aligned to cacheLineAlign bytes, mirroring the posix_memalign-backed
// aligned_malloc an equivalent C implementation would call. Go's slice
// allocator only promises alignment matching T's own type alignment (1 byte
// for an array-of-byte key), which is not enough, so this over-allocates a
// raw byte buffer, locates the first aligned byte within it, and
// reinterprets that point as a []T via unsafe.Slice.
func allocScratch[T Key](n int) []T {
	if n == 0 {
		return nil
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	raw := make([]byte, n*elemSize+cacheLineAlign)

	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := 0
	if rem := addr % cacheLineAlign; rem != 0 {
		offset = cacheLineAlign - int(rem)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&raw[offset])), n)
}

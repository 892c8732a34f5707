// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package radix implements the parallel LSD radix sort kernel: per-thread
// byte histogramming, the cross-thread prefix-sum barrier, write-combining
// buffered scatter, and the digit-pass orchestrator that ping-pongs between
// the caller's array and an internal scratch buffer.
package radix

import "unsafe"

// Uint128 is an opaque 128-bit key, stored little-endian byte-wise: digit 0
// is the byte at the lowest address.
type Uint128 [16]byte

// Key is the set of supported key widths: 16, 32, 64, and 128 bits. Sort is
// instantiated once per width by the compiler, monomorphized over this
// constraint.
type Key interface {
	~uint16 | ~uint32 | ~uint64 | Uint128
}

// Width returns sizeof(T) in bytes: 2, 4, 8, or 16.
func Width[T Key]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// digit returns byte d of key, little-endian (digit 0 = lowest address).
// This is the only width-dependent operation in the kernel besides load/
// store size, so it is implemented once via a direct memory read from
// &key + d.
func digit[T Key](key T, d int) byte {
	return *(*byte)(unsafe.Add(unsafe.Pointer(&key), d))
}

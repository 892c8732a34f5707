// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"unsafe"

	"github.com/ftfish/psort/internal/radix"
)

// SortBytesFull sorts buf in place, reinterpreted as length/elemSize keys
// of elemSize bytes each (elemSize must be 2, 4, 8, or 16), over every
// byte of each key. Returns ErrUnsupportedElementSize for any other
// elemSize, leaving buf unchanged.
//
// This is the byte-buffer analogue of SortFull for callers that hold keys
// as an untyped byte buffer — e.g. received across an FFI or
// serialization boundary — and only know the element width at runtime.
func SortBytesFull(buf []byte, elemSize, numThreads int) error {
	return SortBytesPartial(buf, elemSize, numThreads, 0, elemSize)
}

// SortBytesHalf sorts buf in place, reinterpreted as length/elemSize keys,
// over the lower half of each key's bytes. See SortBytesFull.
func SortBytesHalf(buf []byte, elemSize, numThreads int) error {
	return SortBytesPartial(buf, elemSize, numThreads, 0, elemSize/2)
}

// SortBytesPartial sorts buf in place, reinterpreted as length/elemSize
// keys, using only the bytes in [from, to) of each key as the sort key.
// Returns ErrUnsupportedElementSize for any elemSize other than 2, 4, 8,
// or 16, leaving buf unchanged.
func SortBytesPartial(buf []byte, elemSize, numThreads, from, to int) error {
	if len(buf) == 0 {
		switch elemSize {
		case 2, 4, 8, 16:
			return nil
		default:
			return ErrUnsupportedElementSize
		}
	}

	n := len(buf) / elemSize
	ptr := unsafe.Pointer(&buf[0])

	switch elemSize {
	case 2:
		SortPartial(unsafe.Slice((*uint16)(ptr), n), numThreads, from, to)
	case 4:
		SortPartial(unsafe.Slice((*uint32)(ptr), n), numThreads, from, to)
	case 8:
		SortPartial(unsafe.Slice((*uint64)(ptr), n), numThreads, from, to)
	case 16:
		SortPartial(unsafe.Slice((*radix.Uint128)(ptr), n), numThreads, from, to)
	default:
		return ErrUnsupportedElementSize
	}
	return nil
}

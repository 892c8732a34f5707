// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "golang.org/x/sys/cpu"

// writeBuffer is one worker's write-combining scatter buffer: a 256xB
// region of pending keys per bucket, and a fill-level counter per bucket.
// cnt[b] is always in [0, B]; reaching B triggers a flush of bucket b and
// resets cnt[b] to 0.
type writeBuffer[T Key] struct {
	buf [buckets][]T
	cnt [buckets]uint8
	_   cpu.CacheLinePad
}

func newWriteBuffer[T Key](blockSize int) *writeBuffer[T] {
	wb := &writeBuffer[T]{}
	for b := range wb.buf {
		wb.buf[b] = make([]T, blockSize)
	}
	return wb
}

// scatter moves every key in src to dst[row.offsets[digit(key,d)]++], via
// the write-combining policy: buffer up to blockSize keys per bucket, flush
// a bucket's full buffer with one sequential copy, and flush every bucket's
// partial tail once src is exhausted. This turns 256 streams of scattered
// single-key stores into sequential block writes.
func scatter[T Key](src []T, dst []T, d int, row *offsetRow, wb *writeBuffer[T], blockSize int) {
	for i := range wb.cnt {
		wb.cnt[i] = 0
	}

	for _, k := range src {
		b := digit(k, d)
		wb.buf[b][wb.cnt[b]] = k
		wb.cnt[b]++
		if int(wb.cnt[b]) == blockSize {
			copy(dst[row.offsets[b]:], wb.buf[b])
			row.offsets[b] += blockSize
			wb.cnt[b] = 0
		}
	}

	for b := 0; b < buckets; b++ {
		if wb.cnt[b] == 0 {
			continue
		}
		copy(dst[row.offsets[b]:], wb.buf[b][:wb.cnt[b]])
		row.offsets[b] += int(wb.cnt[b])
		wb.cnt[b] = 0
	}
}

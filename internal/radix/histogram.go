// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package radix

import "golang.org/x/sys/cpu"

const buckets = 256

// histogram is one worker's byte-occurrence table for a single digit pass:
// histogram.counts[v] is the number of keys in that worker's slice whose
// current digit equals v. Padded to a cache line so that two workers'
// histograms, sitting in the same backing slice, never false-share.
type histogram struct {
	counts [buckets]uint64
	_      cpu.CacheLinePad
}

// computeHistogram fills h with H[v] = |{k in src : digit(k, d) == v}|.
// Pure function of src; no reads from or writes to any destination.
func computeHistogram[T Key](src []T, d int, h *histogram) {
	h.counts = [buckets]uint64{}
	for _, k := range src {
		h.counts[digit(k, d)]++
	}
}

// offsetRow is one worker's per-bucket destination starting offset for the
// current digit pass, advanced in place by scatter as buffers flush.
type offsetRow struct {
	offsets [buckets]int
	_       cpu.CacheLinePad
}

// prefixSum turns N per-worker histograms into N per-worker, per-bucket
// starting offsets into the destination array: first the bucket-major
// global prefix G[b] = sum over b' < b of the total count of bucket b'
// across all workers, then each worker's row is G[b] plus the counts of
// every worker before it in bucket b. Run single-threaded, between the
// histogram barrier and the scatter barrier; at O(256*N) it is negligible
// next to the O(len) scatter it feeds.
func prefixSum(hists []histogram, rows []offsetRow) {
	// global[b] = total count of bucket b across all workers, then turned
	// into an exclusive prefix so global[b] = sum of counts in buckets < b.
	var global [buckets]int
	for b := 0; b < buckets; b++ {
		for t := range hists {
			global[b] += int(hists[t].counts[b])
		}
	}
	prefix := 0
	for b := 0; b < buckets; b++ {
		total := global[b]
		global[b] = prefix
		prefix += total
	}

	// running[b] is the next free destination index in bucket b; each
	// worker, in order, claims running[b] as its offset then advances it
	// by its own count, so worker t+1 always starts where worker t ended.
	running := global
	for t := range hists {
		for b := 0; b < buckets; b++ {
			rows[t].offsets[b] = running[b]
			running[b] += int(hists[t].counts[b])
		}
	}
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"errors"
	"fmt"
)

// ErrUnsupportedElementSize is returned by the SortBytes* family when
// elemSize is not one of 2, 4, 8, or 16.
var ErrUnsupportedElementSize = errors.New("psort: unsupported element size")

// assertf panics with a formatted message if cond is false. Used at the
// public API boundary for caller contract violations (zero threads,
// out-of-range digit bounds) — programmer errors, not recoverable
// conditions.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"math/rand"
	"testing"
)

func TestSortFullEmpty16Bit(t *testing.T) {
	arr := []uint16{}
	SortFull(arr, 4)
	if len(arr) != 0 {
		t.Errorf("len(arr) = %d, want 0", len(arr))
	}
}

func TestSortFullSingleton32Bit(t *testing.T) {
	arr := []uint32{42}
	SortFull(arr, 4)
	if arr[0] != 42 {
		t.Errorf("arr[0] = %d, want 42", arr[0])
	}
}

func TestSortFull16BitFourElements(t *testing.T) {
	arr := []uint16{0x0201, 0x0102, 0xFFFF, 0x0000}
	SortFull(arr, 2)

	want := []uint16{0x0000, 0x0102, 0x0201, 0xFFFF}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("arr[%d] = %#x, want %#x", i, arr[i], want[i])
		}
	}
}

func TestSortFull64BitFiveElements(t *testing.T) {
	arr := []uint64{5, 3, 1, 4, 2}
	SortFull(arr, 2)

	want := []uint64{1, 2, 3, 4, 5}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("arr[%d] = %d, want %d", i, arr[i], want[i])
		}
	}
}

func TestSortPartialSingleByteStability(t *testing.T) {
	arr := []uint16{0x0100, 0x0001, 0x0101, 0x0000}
	SortPartial(arr, 1, 0, 1)

	wantLowByte := []uint16{0x00, 0x00, 0x01, 0x01}
	for i := range wantLowByte {
		if arr[i]&0xFF != wantLowByte[i] {
			t.Errorf("arr[%d] low byte = %#x, want %#x", i, arr[i]&0xFF, wantLowByte[i])
		}
	}

	// Relative order within each low-byte group is preserved from input.
	if !(arr[0] == 0x0100 && arr[1] == 0x0000 || arr[0] == 0x0000 && arr[1] == 0x0100) {
		t.Errorf("unexpected ordering among low-byte=0 entries: %v", arr[:2])
	}
	// Original relative order for low-byte=0 is 0x0100 before 0x0000.
	if !(arr[0] == 0x0100 && arr[1] == 0x0000) {
		t.Errorf("stability violated among low-byte=0 entries: got %#x, %#x", arr[0], arr[1])
	}
	if !(arr[2] == 0x0001 && arr[3] == 0x0101) {
		t.Errorf("stability violated among low-byte=1 entries: got %#x, %#x", arr[2], arr[3])
	}
}

func TestSortFullMillionUint64(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large sort in short mode")
	}
	r := rand.New(rand.NewSource(42))
	arr := make([]uint64, 1_000_000)
	for i := range arr {
		arr[i] = r.Uint64()
	}

	SortFull(arr, 8)

	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			t.Fatalf("not sorted at index %d", i)
		}
	}
}

func TestSortBytesUnsupportedElementSize(t *testing.T) {
	buf := make([]byte, 40) // 10 uint32s worth of bytes, but declared elemSize=3
	for i := range buf {
		buf[i] = byte(i)
	}
	original := append([]byte{}, buf...)

	err := SortBytesFull(buf, 3, 4)
	if err != ErrUnsupportedElementSize {
		t.Errorf("err = %v, want ErrUnsupportedElementSize", err)
	}
	for i := range buf {
		if buf[i] != original[i] {
			t.Errorf("buf[%d] = %d, want unchanged %d", i, buf[i], original[i])
		}
	}
}

func TestSortBytesFullMatchesSortFull(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	n := 500
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = r.Uint32()
	}

	buf := make([]byte, n*4)
	for i, v := range arr {
		buf[i*4+0] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v >> 16)
		buf[i*4+3] = byte(v >> 24)
	}

	SortFull(arr, 4)
	if err := SortBytesFull(buf, 4, 4); err != nil {
		t.Fatalf("SortBytesFull: %v", err)
	}

	for i := range arr {
		got := uint32(buf[i*4+0]) | uint32(buf[i*4+1])<<8 | uint32(buf[i*4+2])<<16 | uint32(buf[i*4+3])<<24
		if got != arr[i] {
			t.Errorf("element %d: SortBytesFull = %#x, want %#x", i, got, arr[i])
		}
	}
}

func TestSortBytesEmptyUnsupported(t *testing.T) {
	if err := SortBytesFull(nil, 3, 4); err != ErrUnsupportedElementSize {
		t.Errorf("err = %v, want ErrUnsupportedElementSize", err)
	}
	if err := SortBytesFull(nil, 4, 4); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestSortFullHalfEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(8))

	full := make([]uint32, 400)
	for i := range full {
		full[i] = r.Uint32()
	}
	partial := append([]uint32{}, full...)

	SortFull(full, 4)
	SortPartial(partial, 4, 0, 4)

	for i := range full {
		if full[i] != partial[i] {
			t.Errorf("SortFull vs SortPartial(0,4) differ at %d: %#x vs %#x", i, full[i], partial[i])
		}
	}

	half := append([]uint32{}, full...)
	halfPartial := append([]uint32{}, full...)
	SortHalf(half, 4)
	SortPartial(halfPartial, 4, 0, 2)
	for i := range half {
		if half[i] != halfPartial[i] {
			t.Errorf("SortHalf vs SortPartial(0,2) differ at %d: %#x vs %#x", i, half[i], halfPartial[i])
		}
	}
}

func TestSortPartialInvalidRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for invalid digit range")
		}
	}()
	arr := []uint32{1, 2, 3}
	SortPartial(arr, 4, 2, 1) // from > to
}

func TestSortPartialZeroThreadsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for zero threads")
		}
	}()
	arr := []uint32{1, 2, 3}
	SortPartial(arr, 0, 0, 4)
}

// Copyright 2026 go-pixmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pix

import "unsafe"

// Batched byte scaling: scale every byte of a buffer by one 8-bit factor,
// bit-identical to applying scalePost to each byte, but several bytes per
// machine word. The word kernels split the buffer on the runtime address
// into an unaligned head, a word-aligned middle, and a trailing tail; head
// and tail take the scalar path, the middle is processed as packed lanes.
//
// The lane trick: mask out alternating bytes so each occupies its own 16-bit
// field, multiply the whole word by the 9-bit scalar (factor+1), shift the
// products down by 8, and re-mask. No lane's partial product can carry into
// its neighbor (255*256 fits in 16 bits), so one wide multiply performs four
// (or eight) independent byte scalings. Lane-to-byte placement differs
// between endiannesses, but every byte stays inside its own field either
// way, so the result is identical on both.

// Below this length the word kernels cost more than they save and the
// scalar path is used unconditionally.
const batchMinLen = 8

// BatchScaleBytes scales every byte of x by scale, treating scale exactly
// like the post-increment scalar: out = (in * (scale+1)) >> 8. A zero-length
// buffer is a no-op. The output is identical for every kernel, length,
// alignment, and factor.
func BatchScaleBytes(x []byte, scale uint8) {
	scalar := uint16(scale) + 1
	if len(x) <= batchMinLen {
		scaleBytesScalar(x, scalar)
		return
	}
	switch batchKernel {
	case KernelWord64:
		batchScale64(x, scalar)
	case KernelWord32:
		batchScale32(x, scalar)
	default:
		scaleBytesScalar(x, scalar)
	}
}

// scalePost scales one byte by a 9-bit post-incremented scalar.
func scalePost(i byte, scalar uint16) byte {
	return byte((uint16(i) * scalar) >> 8)
}

func scaleBytesScalar(x []byte, scalar uint16) {
	for i := range x {
		x[i] = scalePost(x[i], scalar)
	}
}

func batchScale32(x []byte, scalar uint16) {
	head, mid, tail := splitAlign32(x)
	scaleBytesScalar(head, scalar)
	s := uint32(scalar)
	for i := range mid {
		mid[i] = scaleWord32(mid[i], s)
	}
	scaleBytesScalar(tail, scalar)
}

func batchScale64(x []byte, scalar uint16) {
	head, mid, tail := splitAlign64(x)
	scaleBytesScalar(head, scalar)
	s := uint64(scalar)
	for i := range mid {
		mid[i] = scaleWord64(mid[i], s)
	}
	scaleBytesScalar(tail, scalar)
}

// scaleWord32 scales four byte lanes at once. The even lanes are multiplied
// in place; the odd lanes are shifted down into their own fields first, and
// their products are re-masked in the high byte of each field, which is the
// same as shifting down by 8 and back up again.
func scaleWord32(w, scalar uint32) uint32 {
	even := w & 0x00FF00FF
	odd := (w & 0xFF00FF00) >> 8
	even = (even * scalar >> 8) & 0x00FF00FF
	odd = (odd * scalar) & 0xFF00FF00
	return even | odd
}

// scaleWord64 is scaleWord32 widened to eight lanes.
func scaleWord64(w, scalar uint64) uint64 {
	even := w & 0x00FF00FF00FF00FF
	odd := (w & 0xFF00FF00FF00FF00) >> 8
	even = (even * scalar >> 8) & 0x00FF00FF00FF00FF
	odd = (odd * scalar) & 0xFF00FF00FF00FF00
	return even | odd
}

// splitAlign32 partitions x into a head that brings the pointer up to 4-byte
// alignment, a 4-byte-aligned middle viewed as words, and the remaining
// tail. The split is computed from the length and the pointer's low bits, so
// the three regions always cover exactly len(x) bytes. The caller guarantees
// len(x) > batchMinLen.
func splitAlign32(x []byte) ([]byte, []uint32, []byte) {
	ptr := uintptr(unsafe.Pointer(&x[0]))
	headLen := int(-ptr & 3)
	midLen := (len(x) - headLen) &^ 3
	mid := unsafe.Slice((*uint32)(unsafe.Pointer(&x[headLen])), midLen/4)
	return x[:headLen], mid, x[headLen+midLen:]
}

// splitAlign64 is splitAlign32 for 8-byte words.
func splitAlign64(x []byte) ([]byte, []uint64, []byte) {
	ptr := uintptr(unsafe.Pointer(&x[0]))
	headLen := int(-ptr & 7)
	midLen := (len(x) - headLen) &^ 7
	mid := unsafe.Slice((*uint64)(unsafe.Pointer(&x[headLen])), midLen/8)
	return x[:headLen], mid, x[headLen+midLen:]
}

// Pixel must stay exactly three bytes with no padding for pixelBytes to be
// sound; either array blows up at compile time if the layout changes.
var (
	_ [unsafe.Sizeof(Pixel{}) - 3]byte
	_ [3 - unsafe.Sizeof(Pixel{})]byte
)

// pixelBytes reinterprets a pixel slice as its flat byte representation:
// len(p)*3 bytes in R,G,B channel order. This is the only place the package
// crosses the typed-slice boundary, and the view never extends past the
// original buffer's byte extent.
func pixelBytes(p []Pixel) []byte {
	if len(p) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&p[0])), len(p)*3)
}

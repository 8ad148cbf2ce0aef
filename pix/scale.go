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

// This file provides the scalar fixed-point operators: scaling, dimming,
// brightening, and blending. The 8-bit and 16-bit families share one generic
// implementation; all intermediate math runs in uint64, which has headroom
// for the widest blend partials.

// ScaleInt is the constraint for the fixed-point operand widths.
type ScaleInt interface {
	~uint8 | ~uint16
}

// bitsOf returns the operand width in bits (8 or 16).
func bitsOf[T ScaleInt]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}

// Scale scales i by s, where s is the numerator of a fraction whose
// denominator is one past the type maximum. The +1 bias makes full scale an
// exact identity: Scale(x, MAX) == x and Scale(x, 0) == 0 for all x.
func Scale[T ScaleInt](i, s T) T {
	return T((uint64(i) * (1 + uint64(s))) >> bitsOf[T]())
}

// ScaleVideo is the "video" version of Scale: the output is zero if and only
// if at least one input is zero. Dimming never collapses a lit channel to
// fully off, at the cost of a couple of extra operations.
func ScaleVideo[T ScaleInt](i, s T) T {
	x := T((uint64(i) * uint64(s)) >> bitsOf[T]())
	if i != 0 && s != 0 {
		x++
	}
	return x
}

// DimRaw dims x by scaling it with itself, approximating the eye's
// non-linear response: the perceptual midpoint sits near the numeric
// midpoint after squaring in the fixed-point domain.
func DimRaw[T ScaleInt](x T) T {
	return Scale(x, x)
}

// DimVideo is DimRaw in video mode: the output is zero only for zero input.
func DimVideo[T ScaleInt](x T) T {
	return ScaleVideo(x, x)
}

// DimLin dims like DimRaw above the half-range threshold and halves
// (rounding up, so only zero maps to zero) below it.
func DimLin[T ScaleInt](x T) T {
	topBit := T(1) << (bitsOf[T]() - 1)
	if x&topBit != 0 {
		return Scale(x, x)
	}
	return (x + 1) / 2
}

// BrightenRaw is the exact functional inverse of DimRaw:
// BrightenRaw(x) == MAX - DimRaw(MAX-x).
func BrightenRaw[T ScaleInt](x T) T {
	ix := ^x
	return ^DimRaw(ix)
}

// BrightenVideo is the inverse of DimVideo.
func BrightenVideo[T ScaleInt](x T) T {
	ix := ^x
	return ^DimVideo(ix)
}

// BrightenLin is the inverse of DimLin.
func BrightenLin[T ScaleInt](x T) T {
	ix := ^x
	return ^DimLin(ix)
}

// Blend interpolates from a to b by amountOfB. The +a +b bias rounds
// symmetrically toward both endpoints, so Blend(a, b, 0) == a and
// Blend(a, b, MAX) == b exactly.
func Blend[T ScaleInt](a, b, amountOfB T) T {
	amountOfA := uint64(^amountOfB)
	partial := uint64(a)*amountOfA + uint64(a) + uint64(b)*uint64(amountOfB) + uint64(b)
	return T(partial >> bitsOf[T]())
}

// NScale scales a single value in place.
func NScale[T ScaleInt](x *T, s T) {
	*x = Scale(*x, s)
}

// NScale2 scales two co-located values by the same factor in place.
func NScale2[T ScaleInt](a, b *T, s T) {
	scaler := 1 + uint64(s)
	sh := bitsOf[T]()
	*a = T(uint64(*a) * scaler >> sh)
	*b = T(uint64(*b) * scaler >> sh)
}

// NScale3 scales three co-located values by the same factor in place. This
// is the building block for scaling all channels of a pixel together.
func NScale3[T ScaleInt](a, b, c *T, s T) {
	scaler := 1 + uint64(s)
	sh := bitsOf[T]()
	*a = T(uint64(*a) * scaler >> sh)
	*b = T(uint64(*b) * scaler >> sh)
	*c = T(uint64(*c) * scaler >> sh)
}

// NScale4 scales four co-located values by the same factor in place.
func NScale4[T ScaleInt](a, b, c, d *T, s T) {
	scaler := 1 + uint64(s)
	sh := bitsOf[T]()
	*a = T(uint64(*a) * scaler >> sh)
	*b = T(uint64(*b) * scaler >> sh)
	*c = T(uint64(*c) * scaler >> sh)
	*d = T(uint64(*d) * scaler >> sh)
}

// Scale16By8 scales a 16-bit value by an 8-bit factor with the same
// full-scale-identity bias as Scale.
func Scale16By8(i uint16, s uint8) uint16 {
	return uint16((uint32(i) * (1 + uint32(s))) >> 8)
}

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

//go:generate go run -tags pixmath_lowmem github.com/ajroetker/go-pixmath/cmd/pixgen -table sin8 -output trig_table.go

// Fast integer trigonometry for wave-based animations. A full circle is the
// whole input range: 256 steps for the byte variants, 65536 for the 16-bit
// ones. Outputs are approximate piecewise-linear sines, accurate to a couple
// of ULPs, which is plenty for brightness and motion curves.

// Sin8 returns an approximate sine of theta, mapped to 0..255 with the zero
// crossing at 128. One full wave spans the whole input byte.
func Sin8(theta uint8) uint8 {
	return sin8(theta)
}

// Cos8 returns an approximate cosine of theta on the same scale as Sin8.
func Cos8(theta uint8) uint8 {
	return Sin8(theta + 64)
}

// Sin16 returns an approximate sine of theta as a signed value in
// -32767..32767. One full wave spans the whole 16-bit input.
func Sin16(theta uint16) int16 {
	offset := (theta & 0x3FFF) >> 3
	if theta&0x4000 != 0 {
		offset = 2047 - offset
	}

	section := offset / 256
	b := sin16Base[section]
	m := uint16(sin16Slope[section])

	secoffset8 := uint16(uint8(offset) / 2)
	y := int16(m*secoffset8 + b)
	if theta&0x8000 != 0 {
		y = -y
	}
	return y
}

// Cos16 returns an approximate cosine of theta on the same scale as Sin16.
func Cos16(theta uint16) int16 {
	return Sin16(theta + 16384)
}

var (
	sin16Base  = [8]uint16{0, 6393, 12539, 18204, 23170, 27245, 30273, 32137}
	sin16Slope = [8]uint8{49, 48, 44, 38, 31, 23, 14, 4}
)

// sin8Interleave holds the per-section (base, slope*16) pairs for one
// quarter wave of the byte sine.
var sin8Interleave = [8]uint8{0, 49, 49, 41, 90, 27, 117, 10}

// sin8Compute evaluates the byte sine directly from the quarter-wave
// sections. The second and fourth quarters mirror the offset; the back half
// negates the result before re-biasing around 128.
func sin8Compute(theta uint8) uint8 {
	offset := theta
	if theta&0x40 != 0 {
		offset = 255 - offset
	}
	offset &= 0x3F

	secOffset := offset & 0x0F
	if theta&0x40 != 0 {
		secOffset++
	}

	section := (offset >> 4) * 2
	b := sin8Interleave[section]
	m16 := sin8Interleave[section+1]
	// The slope product needs 10 bits before the shift; a byte-width
	// multiply here would wrap and garble the wave.
	mx := uint8((uint16(m16) * uint16(secOffset)) >> 4)

	y := int8(mx + b)
	if theta&0x80 != 0 {
		y = -y
	}
	return uint8(y) + 128
}

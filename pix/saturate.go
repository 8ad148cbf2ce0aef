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

// Packed saturating arithmetic: four 8-bit lanes or two 16-bit lanes in one
// 32-bit word, the portable equivalent of the ARM DSP UQADD8/UQSUB8 and
// UQADD16/UQSUB16 instructions. The scalar helpers below are the reference
// semantics the packed forms are tested against.

const (
	low7Mask = 0x7F7F7F7F
	msb8Mask = 0x80808080

	low15Mask = 0x7FFF7FFF
	msb16Mask = 0x80008000
)

// satAdd8x4 adds four byte lanes with per-lane saturation at 255.
func satAdd8x4(a, b uint32) uint32 {
	// Sum the low 7 bits of each lane; bit 7 of each lane then holds the
	// carry into the sign bit.
	low := (a & low7Mask) + (b & low7Mask)
	sum := low ^ ((a ^ b) & msb8Mask)
	// Carry out of bit 7 means the lane overflowed.
	over := ((a & b) | ((a | b) & low)) & msb8Mask
	return sum | (over>>7)*0xFF
}

// satSub8x4 subtracts four byte lanes with per-lane saturation at 0.
// max(0, a-b) == ^min(255, ^a+b), so it reuses the saturating add.
func satSub8x4(a, b uint32) uint32 {
	return ^satAdd8x4(^a, b)
}

// satAdd16x2 adds two 16-bit lanes with per-lane saturation at 65535.
func satAdd16x2(a, b uint32) uint32 {
	low := (a & low15Mask) + (b & low15Mask)
	sum := low ^ ((a ^ b) & msb16Mask)
	over := ((a & b) | ((a | b) & low)) & msb16Mask
	return sum | (over>>15)*0xFFFF
}

// satSub16x2 subtracts two 16-bit lanes with per-lane saturation at 0.
func satSub16x2(a, b uint32) uint32 {
	return ^satAdd16x2(^a, b)
}

// pack8x3 places a pixel's channels in the low three lanes of a word.
func pack8x3(p Pixel) uint32 {
	return uint32(p.R) | uint32(p.G)<<8 | uint32(p.B)<<16
}

func unpack8x3(w uint32) Pixel {
	return Pixel{R: uint8(w), G: uint8(w >> 8), B: uint8(w >> 16)}
}

func broadcast8x4(v uint8) uint32 {
	return uint32(v) * 0x01010101
}

// satAdd8 is the scalar reference for one 8-bit lane.
func satAdd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// satSub8 is the scalar reference for one 8-bit lane.
func satSub8(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

// satAdd16 is the scalar reference for one 16-bit lane.
func satAdd16(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > 0xFFFF {
		return 0xFFFF
	}
	return uint16(s)
}

// satSub16 is the scalar reference for one 16-bit lane.
func satSub16(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

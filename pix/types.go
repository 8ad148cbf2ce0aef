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

// Package pix is a fixed-point color-math kernel for addressable LED strips.
//
// Every operation works on 8/16/32-bit integer arithmetic with bounded cycle
// counts and no allocation, so the package is safe to call from tight control
// loops. Arithmetic saturates at the channel bounds instead of wrapping,
// except where wraparound is the intended hue semantic (documented per
// operation).
//
// Basic usage:
//
//	leds := make([]pix.Pixel, 60)
//	pix.FillRainbowSingleCycle(leds, 0)
//	pix.FadeToBlack(leds, 32)
//	pix.Blur(leds, 64)
//
// Whole-buffer operations mutate the caller's slice in place and never retain
// a reference after returning. They require exclusive access for their
// duration; the package performs no internal synchronization.
package pix

// Pixel is an RGB color with one byte per channel, stored contiguously with
// no padding. It is a plain value type; all operations return new values or
// mutate through an explicit pointer/slice.
type Pixel struct {
	R, G, B uint8
}

// HSV is a hue/saturation/value color with one byte per field. Hue is a
// circular angle: the full [0,256) range maps to [0°,360°), and hue
// arithmetic wraps intentionally.
type HSV struct {
	H, S, V uint8
}

// RGB constructs a Pixel from three channel bytes.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// PixelFromCode constructs a Pixel from a 24-bit packed color code:
// bits 16-23 red, 8-15 green, 0-7 blue.
func PixelFromCode(code uint32) Pixel {
	return Pixel{
		R: uint8(code >> 16),
		G: uint8(code >> 8),
		B: uint8(code),
	}
}

// HSVFromCode constructs an HSV from a 24-bit packed code:
// bits 16-23 hue, 8-15 saturation, 0-7 value.
func HSVFromCode(code uint32) HSV {
	return HSV{
		H: uint8(code >> 16),
		S: uint8(code >> 8),
		V: uint8(code),
	}
}

// Code returns the pixel as a 24-bit packed color code.
func (p Pixel) Code() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Add returns the channel-wise saturating sum of two pixels.
func (p Pixel) Add(o Pixel) Pixel {
	return unpack8x3(satAdd8x4(pack8x3(p), pack8x3(o)))
}

// AddAll returns p with v added to every channel, saturating at 255.
func (p Pixel) AddAll(v uint8) Pixel {
	return unpack8x3(satAdd8x4(pack8x3(p), broadcast8x4(v)))
}

// Sub returns the channel-wise saturating difference of two pixels.
func (p Pixel) Sub(o Pixel) Pixel {
	return unpack8x3(satSub8x4(pack8x3(p), pack8x3(o)))
}

// SubAll returns p with v subtracted from every channel, saturating at 0.
func (p Pixel) SubAll(v uint8) Pixel {
	return unpack8x3(satSub8x4(pack8x3(p), broadcast8x4(v)))
}

// Max returns the channel-wise maximum of two pixels.
func (p Pixel) Max(o Pixel) Pixel {
	return Pixel{R: max(p.R, o.R), G: max(p.G, o.G), B: max(p.B, o.B)}
}

// Min returns the channel-wise minimum of two pixels.
func (p Pixel) Min(o Pixel) Pixel {
	return Pixel{R: min(p.R, o.R), G: min(p.G, o.G), B: min(p.B, o.B)}
}

// Mul returns p with every channel multiplied by v, saturating at 255.
func (p Pixel) Mul(v uint8) Pixel {
	return Pixel{R: satMul8(p.R, v), G: satMul8(p.G, v), B: satMul8(p.B, v)}
}

// Div returns p with every channel divided by v. v must be nonzero.
func (p Pixel) Div(v uint8) Pixel {
	return Pixel{R: p.R / v, G: p.G / v, B: p.B / v}
}

// Shr returns p with every channel shifted right by n bits.
func (p Pixel) Shr(n uint8) Pixel {
	return Pixel{R: p.R >> n, G: p.G >> n, B: p.B >> n}
}

// Invert returns the channel-wise negation 255-c.
func (p Pixel) Invert() Pixel {
	return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
}

// IsOn reports whether any channel is nonzero.
func (p Pixel) IsOn() bool {
	return p.R != 0 || p.G != 0 || p.B != 0
}

// Sum returns the sum of the three channels. Pixels are ordered by this sum.
func (p Pixel) Sum() uint16 {
	return uint16(p.R) + uint16(p.G) + uint16(p.B)
}

// Cmp compares two pixels by channel sum: -1 if p is darker than o,
// +1 if brighter, 0 if equal.
func (p Pixel) Cmp(o Pixel) int {
	ps, os := p.Sum(), o.Sum()
	switch {
	case ps < os:
		return -1
	case ps > os:
		return 1
	}
	return 0
}

// Scale scales every channel by s using the biased fixed-point multiply, so
// Scale(255) is the identity and Scale(0) clears the pixel.
func (p Pixel) Scale(s uint8) Pixel {
	NScale3(&p.R, &p.G, &p.B, s)
	return p
}

// ScaleVideo scales every channel by s in video mode: channels that were
// nonzero stay nonzero for any nonzero s.
func (p Pixel) ScaleVideo(s uint8) Pixel {
	return Pixel{
		R: ScaleVideo(p.R, s),
		G: ScaleVideo(p.G, s),
		B: ScaleVideo(p.B, s),
	}
}

// BlendWith linearly interpolates each channel from p toward o by
// amountOfOther, with exact endpoints at 0 and 255.
func (p Pixel) BlendWith(o Pixel, amountOfOther uint8) Pixel {
	return Pixel{
		R: Blend(p.R, o.R, amountOfOther),
		G: Blend(p.G, o.G, amountOfOther),
		B: Blend(p.B, o.B, amountOfOther),
	}
}

// Luma returns the Rec.601-weighted brightness of the pixel.
func (p Pixel) Luma() uint8 {
	return Scale(p.R, 54) + Scale(p.G, 183) + Scale(p.B, 18)
}

// AvgLight returns the equal-weight average brightness of the pixel.
func (p Pixel) AvgLight() uint8 {
	return Scale(p.R, 85) + Scale(p.G, 85) + Scale(p.B, 85)
}

// MaximizeBrightness scales the pixel up so its brightest channel becomes
// 255, preserving the channel ratios. Black is returned unchanged.
func (p Pixel) MaximizeBrightness() Pixel {
	m := max(p.R, max(p.G, p.B))
	if m == 0 {
		return p
	}
	factor := uint16(255) * 256 / uint16(m)
	return Pixel{
		R: uint8(uint32(p.R) * uint32(factor) / 256),
		G: uint8(uint32(p.G) * uint32(factor) / 256),
		B: uint8(uint32(p.B) * uint32(factor) / 256),
	}
}

func satMul8(a, b uint8) uint8 {
	m := uint16(a) * uint16(b)
	if m > 255 {
		return 255
	}
	return uint8(m)
}

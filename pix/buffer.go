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

// Whole-strip operations over []Pixel and []HSV buffers.

// Fill sets every pixel in leds to color.
func Fill(leds []Pixel, color Pixel) {
	for i := range leds {
		leds[i] = color
	}
}

// FillHSV sets every element of leds to color.
func FillHSV(leds []HSV, color HSV) {
	for i := range leds {
		leds[i] = color
	}
}

// Clear sets every pixel in leds to black.
func Clear(leds []Pixel) {
	Fill(leds, Pixel{})
}

// FadeToBlack dims every channel of every pixel by amount out of 255, with
// the ordinary downscaling rounding. Amount 0 leaves the strip untouched,
// 255 clears it. The whole buffer is fed through the batch byte kernel.
func FadeToBlack(leds []Pixel, amount uint8) {
	BatchScaleBytes(pixelBytes(leds), 255-amount)
}

// Blur applies a single one-dimensional blur pass. Each pixel keeps
// 255-amount of itself and receives amount/2 of its right neighbor directly
// plus the same seepage carried over from the previous step, so total
// brightness never increases. Amounts up to 172 are smoothing; above that
// the pass smears.
func Blur(leds []Pixel, amount uint8) {
	keep := 255 - amount
	seep := amount >> 1
	var carry Pixel
	for i := range leds {
		cur := leds[i].Scale(keep).Add(carry)
		if i+1 < len(leds) {
			part := leds[i+1].Scale(seep)
			cur = cur.Add(part)
			carry = part
		}
		leds[i] = cur
	}
}

// BlendColor blends every pixel in leds toward color by amount out of 256.
// The blend is a truncating weighted average; color's contributions are
// hoisted out of the loop since they are the same for every pixel.
func BlendColor(leds []Pixel, color Pixel, amount uint8) {
	keep := uint16(255 - amount)
	amt := uint16(amount)
	pr := uint16(color.R) * amt
	pg := uint16(color.G) * amt
	pb := uint16(color.B) * amt
	for i := range leds {
		leds[i] = Pixel{
			R: uint8((uint16(leds[i].R)*keep + pr) >> 8),
			G: uint8((uint16(leds[i].G)*keep + pg) >> 8),
			B: uint8((uint16(leds[i].B)*keep + pb) >> 8),
		}
	}
}

// FillRainbow fills leds with a rainbow that starts at startHue and
// advances by hueDelta per pixel in 8.8 fixed point, so sub-unit hue steps
// spread a single wheel across long strips without banding.
func FillRainbow(leds []Pixel, startHue uint8, hueDelta uint16) {
	hue := uint16(startHue) << 8
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 8), S: 255, V: 255}.Rainbow()
		hue += hueDelta
	}
}

// FillRainbowSatVal is FillRainbow at the given saturation and value
// instead of full intensity.
func FillRainbowSatVal(leds []Pixel, startHue uint8, hueDelta uint16, sat, val uint8) {
	hue := uint16(startHue) << 8
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 8), S: sat, V: val}.Rainbow()
		hue += hueDelta
	}
}

// FillRainbowHSV is FillRainbow writing HSV values instead of converting
// them.
func FillRainbowHSV(leds []HSV, startHue uint8, hueDelta uint16) {
	hue := uint16(startHue) << 8
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 8), S: 255, V: 255}
		hue += hueDelta
	}
}

// FillRainbowSatValHSV is FillRainbowSatVal writing HSV values.
func FillRainbowSatValHSV(leds []HSV, startHue uint8, hueDelta uint16, sat, val uint8) {
	hue := uint16(startHue) << 8
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 8), S: sat, V: val}
		hue += hueDelta
	}
}

// FillRainbowSingleCycle fills leds with exactly one trip around the hue
// wheel, starting at startHue, regardless of the strip length. The hue
// accumulator runs in 8.24 fixed point so the per-pixel step stays exact
// for any length.
func FillRainbowSingleCycle(leds []Pixel, startHue uint8) {
	if len(leds) == 0 {
		return
	}
	hue := uint32(startHue) << 24
	delta := (uint32(255) << 24) / uint32(len(leds))
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 24), S: 255, V: 255}.Rainbow()
		hue += delta
	}
}

// FillRainbowSingleCycleHSV is FillRainbowSingleCycle writing HSV values.
func FillRainbowSingleCycleHSV(leds []HSV, startHue uint8) {
	if len(leds) == 0 {
		return
	}
	hue := uint32(startHue) << 24
	delta := (uint32(255) << 24) / uint32(len(leds))
	for i := range leds {
		leds[i] = HSV{H: uint8(hue >> 24), S: 255, V: 255}
		hue += delta
	}
}

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

//go:generate go run -tags pixmath_lowmem github.com/ajroetker/go-pixmath/cmd/pixgen -table rainbow -output hue_table.go

// Hue-to-RGB conversion. Two mappings are provided and both are preserved as
// distinct, selectable conversions:
//
//   - Rainbow: a visually-balanced wheel with equal perceptual spacing of
//     red/yellow/green/cyan/blue/magenta, built from 8 piecewise-linear
//     sections of 32 hue steps each.
//   - Spectrum: the classic mathematical HSV wheel (three 85-degree ramps);
//     uneven to the eye but exact.
//
// The rainbow mapping is either computed per call or served from a
// generated 256-entry table; the pixmath_lowmem build tag selects the
// computed path and both produce identical output.

// spectrumSection is the width of one of the three raw-spectrum ramps.
const spectrumSection = 0x40

// rainbowCompute maps a hue at full saturation and value onto the balanced
// rainbow wheel. The top three hue bits select the section, the low five
// bits (scaled to a byte) interpolate between the section's endpoints. The
// shoulder constants (171/85/170) keep adjacent sections connected.
func rainbowCompute(hue uint8) Pixel {
	offset8 := (hue & 0x1F) << 3
	third := Scale(offset8, 85)
	switch (hue & 0xE0) >> 5 {
	case 0:
		return Pixel{R: 255 - third, G: third, B: 0}
	case 1:
		return Pixel{R: 171, G: 85 + third, B: 0}
	case 2:
		twoThirds := Scale(offset8, 170)
		return Pixel{R: 171 - twoThirds, G: 170 + third, B: 0}
	case 3:
		return Pixel{R: 0, G: 255 - third, B: third}
	case 4:
		twoThirds := Scale(offset8, 170)
		return Pixel{R: 0, G: 171 - twoThirds, B: 85 + twoThirds}
	case 5:
		return Pixel{R: third, G: 0, B: 255 - third}
	case 6:
		return Pixel{R: 85 + third, G: 0, B: 171 - third}
	default:
		return Pixel{R: 170 + third, G: 0, B: 85 - third}
	}
}

// Rainbow converts the HSV color to RGB using the balanced rainbow wheel.
//
// Zero value short-circuits to black and zero saturation to gray at the
// color's value level, before any hue math runs.
func (c HSV) Rainbow() Pixel {
	if c.V == 0 {
		return Pixel{}
	}
	if c.S == 0 {
		return Pixel{R: c.V, G: c.V, B: c.V}
	}
	rgb := hueRainbow(c.H)

	if c.S != 255 {
		// Scale toward the desaturation floor, then add the floor back,
		// so low saturation tends to white rather than black.
		floor := DimRaw(255 - c.S)
		rgb = rgb.Scale(c.S)
		rgb.R += floor
		rgb.G += floor
		rgb.B += floor
	}
	if c.V != 255 {
		rgb = rgb.Scale(c.V)
	}
	return rgb
}

// Spectrum converts the HSV color to RGB on the mathematical wheel. The hue
// is pre-scaled into the raw transform's 0-191 domain, so the full byte
// range still sweeps the whole wheel.
func (c HSV) Spectrum() Pixel {
	c.H = Scale(c.H, 191)
	return c.SpectrumRaw()
}

// SpectrumRaw is the three-section piecewise-linear HSV-to-RGB transform.
// Its hue domain is 0-191 (three sections of 64); larger hues are clamped
// to 191 rather than producing an out-of-range section.
func (c HSV) SpectrumRaw() Pixel {
	hue := c.H
	if hue > 191 {
		hue = 191
	}

	// The brightness floor is the minimum every channel is set to; the
	// amplitude is what the hue ramps distribute on top of it.
	invsat := 255 - c.S
	floor := uint8(uint16(c.V) * uint16(invsat) / 256)
	amplitude := c.V - floor

	offset := hue % spectrumSection
	rampup := offset
	rampdown := (spectrumSection - 1) - offset

	up := uint8(uint16(rampup)*uint16(amplitude)/64) + floor
	down := uint8(uint16(rampdown)*uint16(amplitude)/64) + floor

	switch hue / spectrumSection {
	case 0:
		return Pixel{R: floor, G: down, B: up}
	case 1:
		return Pixel{R: up, G: floor, B: down}
	default:
		return Pixel{R: down, G: up, B: floor}
	}
}

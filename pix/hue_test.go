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

import "testing"

func TestRainbowTableMatchesCompute(t *testing.T) {
	for h := 0; h < 256; h++ {
		want := rainbowCompute(uint8(h))
		if got := hueRainbow(uint8(h)); got != want {
			t.Fatalf("hueRainbow(%d): got %+v, want %+v", h, got, want)
		}
	}
}

func TestRainbowSectionAnchors(t *testing.T) {
	cases := []struct {
		hue  uint8
		want Pixel
	}{
		{0, Pixel{R: 255, G: 0, B: 0}},
		{32, Pixel{R: 171, G: 85, B: 0}},
		{64, Pixel{R: 171, G: 170, B: 0}},
		{96, Pixel{R: 0, G: 255, B: 0}},
		{128, Pixel{R: 0, G: 171, B: 85}},
		{160, Pixel{R: 0, G: 0, B: 255}},
		{192, Pixel{R: 85, G: 0, B: 171}},
		{224, Pixel{R: 170, G: 0, B: 85}},
	}
	for _, c := range cases {
		if got := rainbowCompute(c.hue); got != c.want {
			t.Errorf("rainbowCompute(%d): got %+v, want %+v", c.hue, got, c.want)
		}
	}
}

func TestRainbowShortCircuits(t *testing.T) {
	// Zero value is black whatever the hue and saturation say.
	for h := 0; h < 256; h += 51 {
		if got := (HSV{H: uint8(h), S: 200, V: 0}).Rainbow(); got != (Pixel{}) {
			t.Fatalf("V=0: got %+v, want black", got)
		}
	}
	// Zero saturation is gray at the value level.
	for v := 1; v < 256; v += 51 {
		want := Pixel{R: uint8(v), G: uint8(v), B: uint8(v)}
		if got := (HSV{H: 77, S: 0, V: uint8(v)}).Rainbow(); got != want {
			t.Fatalf("S=0 V=%d: got %+v, want %+v", v, got, want)
		}
	}
}

func TestRainbowFullSaturationValue(t *testing.T) {
	for h := 0; h < 256; h++ {
		want := hueRainbow(uint8(h))
		if got := (HSV{H: uint8(h), S: 255, V: 255}).Rainbow(); got != want {
			t.Fatalf("hue %d: got %+v, want %+v", h, got, want)
		}
	}
}

func TestRainbowDesaturationRaisesFloor(t *testing.T) {
	// Dropping saturation must never darken the dimmest channel.
	sat := (HSV{H: 0, S: 255, V: 255}).Rainbow()
	desat := (HSV{H: 0, S: 128, V: 255}).Rainbow()
	if desat.B <= sat.B || desat.G <= sat.G {
		t.Errorf("desaturated: got %+v from %+v", desat, sat)
	}
}

func TestRainbowValueScalesDown(t *testing.T) {
	full := (HSV{H: 96, S: 255, V: 255}).Rainbow()
	half := (HSV{H: 96, S: 255, V: 128}).Rainbow()
	if half.G >= full.G {
		t.Errorf("half value not darker: %+v vs %+v", half, full)
	}
	if half.R != 0 || half.B != 0 {
		t.Errorf("off channels moved: %+v", half)
	}
}

func TestSpectrumRawSections(t *testing.T) {
	// Full saturation and value: the active ramp pair spans the section
	// while the third channel sits on the floor.
	got := (HSV{H: 0, S: 255, V: 255}).SpectrumRaw()
	if got.R != 0 || got.G == 0 || got.B != 0 {
		t.Errorf("section 0 start: got %+v", got)
	}
	got = (HSV{H: 64, S: 255, V: 255}).SpectrumRaw()
	if got.R != 0 || got.G != 0 || got.B == 0 {
		t.Errorf("section 1 start: got %+v", got)
	}
	got = (HSV{H: 128, S: 255, V: 255}).SpectrumRaw()
	if got.R == 0 || got.G != 0 || got.B != 0 {
		t.Errorf("section 2 start: got %+v", got)
	}
}

func TestSpectrumRawClampsHue(t *testing.T) {
	want := (HSV{H: 191, S: 255, V: 255}).SpectrumRaw()
	for h := 192; h < 256; h++ {
		if got := (HSV{H: uint8(h), S: 255, V: 255}).SpectrumRaw(); got != want {
			t.Fatalf("hue %d: got %+v, want clamp to %+v", h, got, want)
		}
	}
}

func TestSpectrumPrescalesHue(t *testing.T) {
	for h := 0; h < 256; h += 3 {
		c := HSV{H: uint8(h), S: 200, V: 220}
		want := HSV{H: Scale(c.H, 191), S: c.S, V: c.V}.SpectrumRaw()
		if got := c.Spectrum(); got != want {
			t.Fatalf("hue %d: got %+v, want %+v", h, got, want)
		}
	}
}

func TestSpectrumValueBounds(t *testing.T) {
	// No output channel may exceed the value.
	for h := 0; h < 256; h += 7 {
		for v := 0; v < 256; v += 15 {
			got := (HSV{H: uint8(h), S: 255, V: uint8(v)}).Spectrum()
			if got.R > uint8(v) || got.G > uint8(v) || got.B > uint8(v) {
				t.Fatalf("hue %d value %d: %+v exceeds value", h, v, got)
			}
		}
	}
}

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

func randomPixels(n int, seed uint32) []Pixel {
	rng := xorshift32(seed)
	leds := make([]Pixel, n)
	for i := range leds {
		leds[i] = unpack8x3(rng.next())
	}
	return leds
}

func bufferSum(leds []Pixel) uint64 {
	var sum uint64
	for i := range leds {
		sum += uint64(leds[i].Sum())
	}
	return sum
}

func TestFillAndClear(t *testing.T) {
	leds := randomPixels(17, 1)
	Fill(leds, Pixel{R: 9, G: 8, B: 7})
	for i := range leds {
		if leds[i] != (Pixel{R: 9, G: 8, B: 7}) {
			t.Fatalf("leds[%d]: got %+v", i, leds[i])
		}
	}
	Clear(leds)
	for i := range leds {
		if leds[i] != (Pixel{}) {
			t.Fatalf("leds[%d] not cleared: %+v", i, leds[i])
		}
	}

	hsv := make([]HSV, 5)
	FillHSV(hsv, HSV{H: 1, S: 2, V: 3})
	for i := range hsv {
		if hsv[i] != (HSV{H: 1, S: 2, V: 3}) {
			t.Fatalf("hsv[%d]: got %+v", i, hsv[i])
		}
	}
}

// Fading the whole strip must be bit-identical to scaling every pixel.
func TestFadeToBlackMatchesScale(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 8, 9, 60, 300} {
		for _, amount := range []uint8{0, 1, 16, 128, 254, 255} {
			leds := randomPixels(n, uint32(n)*31+uint32(amount))
			want := make([]Pixel, n)
			for i := range leds {
				want[i] = leds[i].Scale(255 - amount)
			}
			FadeToBlack(leds, amount)
			for i := range leds {
				if leds[i] != want[i] {
					t.Fatalf("n=%d amount=%d: leds[%d] got %+v, want %+v",
						n, amount, i, leds[i], want[i])
				}
			}
		}
	}
}

func TestFadeToBlackFullClears(t *testing.T) {
	leds := randomPixels(100, 2)
	FadeToBlack(leds, 255)
	for i := range leds {
		if leds[i].IsOn() {
			t.Fatalf("leds[%d] still lit: %+v", i, leds[i])
		}
	}
}

func TestBlurFormula(t *testing.T) {
	orig := []Pixel{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}
	amount := uint8(128)
	keep := uint8(255 - 128)
	seep := uint8(128 >> 1)

	leds := append([]Pixel(nil), orig...)
	Blur(leds, amount)

	// First pixel: own keep plus the second pixel's seepage, no left carry.
	part0 := orig[1].Scale(seep)
	want0 := orig[0].Scale(keep).Add(part0)
	if leds[0] != want0 {
		t.Errorf("leds[0]: got %+v, want %+v", leds[0], want0)
	}
	// Middle pixel: keep, carry from the left, seepage from the right.
	part1 := orig[2].Scale(seep)
	want1 := orig[1].Scale(keep).Add(part0).Add(part1)
	if leds[1] != want1 {
		t.Errorf("leds[1]: got %+v, want %+v", leds[1], want1)
	}
	// Last pixel: keep plus carry only, nothing seeps back from beyond.
	want2 := orig[2].Scale(keep).Add(part1)
	if leds[2] != want2 {
		t.Errorf("leds[2]: got %+v, want %+v", leds[2], want2)
	}
}

func TestBlurNonDivergent(t *testing.T) {
	for _, amount := range []uint8{0, 1, 64, 172, 200, 255} {
		leds := randomPixels(64, uint32(amount)+3)
		prev := bufferSum(leds)
		for pass := 0; pass < 50; pass++ {
			Blur(leds, amount)
			sum := bufferSum(leds)
			if sum > prev {
				t.Fatalf("amount %d pass %d: brightness grew %d -> %d", amount, pass, prev, sum)
			}
			prev = sum
		}
	}
}

func TestBlurEmptyAndSingle(t *testing.T) {
	Blur(nil, 128)
	leds := []Pixel{{R: 200, G: 100, B: 50}}
	Blur(leds, 128)
	want := (Pixel{R: 200, G: 100, B: 50}).Scale(127)
	if leds[0] != want {
		t.Errorf("single: got %+v, want %+v", leds[0], want)
	}
}

func TestBlendColor(t *testing.T) {
	leds := randomPixels(33, 9)
	orig := append([]Pixel(nil), leds...)
	color := Pixel{R: 10, G: 200, B: 130}
	amount := uint8(77)
	BlendColor(leds, color, amount)
	for i := range leds {
		want := Pixel{
			R: uint8((uint16(orig[i].R)*uint16(255-amount) + uint16(color.R)*uint16(amount)) >> 8),
			G: uint8((uint16(orig[i].G)*uint16(255-amount) + uint16(color.G)*uint16(amount)) >> 8),
			B: uint8((uint16(orig[i].B)*uint16(255-amount) + uint16(color.B)*uint16(amount)) >> 8),
		}
		if leds[i] != want {
			t.Fatalf("leds[%d]: got %+v, want %+v", i, leds[i], want)
		}
	}
}

func TestFillRainbow(t *testing.T) {
	leds := make([]Pixel, 256)
	FillRainbow(leds, 42, 1<<8)
	for i := range leds {
		want := (HSV{H: uint8(42 + i), S: 255, V: 255}).Rainbow()
		if leds[i] != want {
			t.Fatalf("leds[%d]: got %+v, want %+v", i, leds[i], want)
		}
	}

	// Sub-unit deltas advance the hue fractionally.
	FillRainbow(leds, 0, 1<<7)
	for i := range leds {
		want := (HSV{H: uint8(i / 2), S: 255, V: 255}).Rainbow()
		if leds[i] != want {
			t.Fatalf("half delta leds[%d]: got %+v, want %+v", i, leds[i], want)
		}
	}
}

func TestFillRainbowSatVal(t *testing.T) {
	leds := make([]Pixel, 40)
	FillRainbowSatVal(leds, 10, 5<<8, 200, 150)
	for i := range leds {
		want := (HSV{H: uint8(10 + 5*i), S: 200, V: 150}).Rainbow()
		if leds[i] != want {
			t.Fatalf("leds[%d]: got %+v, want %+v", i, leds[i], want)
		}
	}

	hsv := make([]HSV, 40)
	FillRainbowSatValHSV(hsv, 10, 5<<8, 200, 150)
	for i := range hsv {
		want := HSV{H: uint8(10 + 5*i), S: 200, V: 150}
		if hsv[i] != want {
			t.Fatalf("hsv[%d]: got %+v, want %+v", i, hsv[i], want)
		}
	}
}

func TestFillRainbowHSV(t *testing.T) {
	leds := make([]HSV, 10)
	FillRainbowHSV(leds, 100, 3<<8)
	for i := range leds {
		want := HSV{H: uint8(100 + 3*i), S: 255, V: 255}
		if leds[i] != want {
			t.Fatalf("leds[%d]: got %+v, want %+v", i, leds[i], want)
		}
	}
}

func TestFillRainbowSingleCycle(t *testing.T) {
	FillRainbowSingleCycle(nil, 0)
	FillRainbowSingleCycleHSV(nil, 0)

	leds := make([]HSV, 100)
	FillRainbowSingleCycleHSV(leds, 7)
	if leds[0].H != 7 {
		t.Errorf("first hue: got %d, want 7", leds[0].H)
	}
	// The hue advances monotonically (mod 256) and nearly closes the wheel.
	total := 0
	for i := 1; i < len(leds); i++ {
		step := int(uint8(leds[i].H - leds[i-1].H))
		if step > 4 {
			t.Fatalf("hue jump of %d at %d", step, i)
		}
		total += step
	}
	if total < 250 || total > 255 {
		t.Errorf("total hue travel: got %d, want just under a full wheel", total)
	}

	rgb := make([]Pixel, 100)
	FillRainbowSingleCycle(rgb, 7)
	for i := range rgb {
		if want := leds[i].Rainbow(); rgb[i] != want {
			t.Fatalf("rgb[%d]: got %+v, want %+v", i, rgb[i], want)
		}
	}
}

func BenchmarkFadeToBlack(b *testing.B) {
	leds := randomPixels(300, 5)
	b.SetBytes(int64(len(leds) * 3))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FadeToBlack(leds, 10)
	}
}

func BenchmarkBlur(b *testing.B) {
	leds := randomPixels(300, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blur(leds, 64)
	}
}

func BenchmarkFillRainbow(b *testing.B) {
	leds := make([]Pixel, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FillRainbow(leds, uint8(i), 1<<8)
	}
}

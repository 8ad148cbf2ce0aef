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

func TestSin8TableMatchesCompute(t *testing.T) {
	for theta := 0; theta < 256; theta++ {
		want := sin8Compute(uint8(theta))
		if got := Sin8(uint8(theta)); got != want {
			t.Fatalf("Sin8(%d): got %d, want %d", theta, got, want)
		}
	}
}

func TestSin8KeyPoints(t *testing.T) {
	cases := []struct{ theta, want uint8 }{
		{0, 128},
		{64, 255},
		{128, 128},
		{192, 1},
	}
	for _, c := range cases {
		if got := Sin8(c.theta); got != c.want {
			t.Errorf("Sin8(%d): got %d, want %d", c.theta, got, c.want)
		}
	}
}

func TestSin8HalfWaveSymmetry(t *testing.T) {
	// The back half mirrors the front half around the midline, so the two
	// halves sum to zero mod 256.
	for theta := 0; theta < 128; theta++ {
		a := Sin8(uint8(theta))
		b := Sin8(uint8(theta + 128))
		if a+b != 0 {
			t.Fatalf("Sin8(%d) + Sin8(%d) = %d + %d, want 256 mod 256", theta, theta+128, a, b)
		}
	}
}

func TestCos8PhaseShift(t *testing.T) {
	for theta := 0; theta < 256; theta++ {
		if got, want := Cos8(uint8(theta)), Sin8(uint8(theta+64)); got != want {
			t.Fatalf("Cos8(%d): got %d, want %d", theta, got, want)
		}
	}
	if got := Cos8(0); got != 255 {
		t.Errorf("Cos8(0): got %d, want 255", got)
	}
}

func TestSin16KeyPoints(t *testing.T) {
	cases := []struct {
		theta uint16
		want  int16
	}{
		{0, 0},
		{8192, 23170},
		{16384, 32645},
		{32768, 0},
		{40960, -23170},
		{49152, -32645},
	}
	for _, c := range cases {
		if got := Sin16(c.theta); got != c.want {
			t.Errorf("Sin16(%d): got %d, want %d", c.theta, got, c.want)
		}
	}
}

func TestSin16QuarterMonotonic(t *testing.T) {
	prev := Sin16(0)
	for theta := 8; theta <= 16384; theta += 8 {
		got := Sin16(uint16(theta))
		if got < prev {
			t.Fatalf("Sin16(%d) = %d < Sin16(%d) = %d", theta, got, theta-8, prev)
		}
		prev = got
	}
}

func TestSin16OddSymmetry(t *testing.T) {
	for theta := 0; theta < 32768; theta += 97 {
		a := Sin16(uint16(theta))
		b := Sin16(uint16(theta + 32768))
		if b != -a {
			t.Fatalf("Sin16(%d) = %d, Sin16(%d) = %d, want negation", theta, a, theta+32768, b)
		}
	}
}

func TestCos16PhaseShift(t *testing.T) {
	for theta := 0; theta < 65536; theta += 1009 {
		if got, want := Cos16(uint16(theta)), Sin16(uint16(theta+16384)); got != want {
			t.Fatalf("Cos16(%d): got %d, want %d", theta, got, want)
		}
	}
	if got := Cos16(0); got != 32645 {
		t.Errorf("Cos16(0): got %d, want 32645", got)
	}
}

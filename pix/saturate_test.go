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

// The packed forms are checked against the scalar references for every pair
// of byte values, replicated across all four lanes with different neighbors
// so cross-lane carries would be caught.
func TestSatAdd8x4Exhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			pa := broadcast8x4(uint8(a)) ^ 0x00FF0000
			pb := broadcast8x4(uint8(b)) ^ 0x0000FF00
			got := satAdd8x4(pa, pb)
			for lane := 0; lane < 4; lane++ {
				la := uint8(pa >> (8 * lane))
				lb := uint8(pb >> (8 * lane))
				want := satAdd8(la, lb)
				if g := uint8(got >> (8 * lane)); g != want {
					t.Fatalf("satAdd8x4(%#x, %#x) lane %d: got %d, want %d", pa, pb, lane, g, want)
				}
			}
		}
	}
}

func TestSatSub8x4Exhaustive(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			pa := broadcast8x4(uint8(a)) ^ 0x00FF0000
			pb := broadcast8x4(uint8(b)) ^ 0x0000FF00
			got := satSub8x4(pa, pb)
			for lane := 0; lane < 4; lane++ {
				la := uint8(pa >> (8 * lane))
				lb := uint8(pb >> (8 * lane))
				want := satSub8(la, lb)
				if g := uint8(got >> (8 * lane)); g != want {
					t.Fatalf("satSub8x4(%#x, %#x) lane %d: got %d, want %d", pa, pb, lane, g, want)
				}
			}
		}
	}
}

func TestSat16x2(t *testing.T) {
	rng := xorshift32(0xCAFE_BABE)
	for i := 0; i < 200000; i++ {
		a, b := rng.next(), rng.next()
		add := satAdd16x2(a, b)
		sub := satSub16x2(a, b)
		for lane := 0; lane < 2; lane++ {
			la := uint16(a >> (16 * lane))
			lb := uint16(b >> (16 * lane))
			if g := uint16(add >> (16 * lane)); g != satAdd16(la, lb) {
				t.Fatalf("satAdd16x2(%#x, %#x) lane %d: got %d, want %d",
					a, b, lane, g, satAdd16(la, lb))
			}
			if g := uint16(sub >> (16 * lane)); g != satSub16(la, lb) {
				t.Fatalf("satSub16x2(%#x, %#x) lane %d: got %d, want %d",
					a, b, lane, g, satSub16(la, lb))
			}
		}
	}
}

func TestSat16x2Edges(t *testing.T) {
	cases := []struct{ a, b uint32 }{
		{0x0000_0000, 0x0000_0000},
		{0xFFFF_FFFF, 0x0000_0001},
		{0xFFFF_FFFF, 0xFFFF_FFFF},
		{0x8000_8000, 0x8000_8000},
		{0x7FFF_7FFF, 0x0001_0001},
		{0x0001_FFFF, 0xFFFF_0001},
	}
	for _, c := range cases {
		add := satAdd16x2(c.a, c.b)
		for lane := 0; lane < 2; lane++ {
			la := uint16(c.a >> (16 * lane))
			lb := uint16(c.b >> (16 * lane))
			if g := uint16(add >> (16 * lane)); g != satAdd16(la, lb) {
				t.Errorf("satAdd16x2(%#x, %#x) lane %d: got %d, want %d",
					c.a, c.b, lane, g, satAdd16(la, lb))
			}
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	p := Pixel{R: 1, G: 2, B: 3}
	if got := unpack8x3(pack8x3(p)); got != p {
		t.Fatalf("round trip: got %+v, want %+v", got, p)
	}
	if w := pack8x3(Pixel{R: 0xAA, G: 0xBB, B: 0xCC}); w != 0x00CCBBAA {
		t.Errorf("pack8x3: got %#x, want 0x00CCBBAA", w)
	}
	if w := broadcast8x4(0x5A); w != 0x5A5A5A5A {
		t.Errorf("broadcast8x4: got %#x, want 0x5A5A5A5A", w)
	}
}

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

// Lerp3 drives a three-channel fixed-point linear interpolation. Each
// channel holds an 8.8 accumulator and a signed per-step delta; one Next
// call yields the current triple and advances every accumulator by its
// delta with wrapping addition. Wraparound is intentional: it models cyclic
// hue motion and is benign for the other channels when the endpoints are
// well-formed.
//
// A Lerp3 is consumed by iteration and lives only for the duration of one
// fill; it is not restartable.
type Lerp3 struct {
	Delta [3]int16
	Accum [3]uint16
}

// SetFromDiff configures channel ch to run from start to end. The distance
// is derived as (end-start)<<7, leaving headroom so deltas stay within
// int16 after scaling.
func (l *Lerp3) SetFromDiff(ch int, start, end uint8) {
	distance := (int16(end) - int16(start)) << 7
	l.SetFromDistance(ch, start, distance)
}

// SetFromDistance configures channel ch with a raw starting value and a
// signed total distance in <<7 fixed point. Hue channels use this form so a
// direction-resolved wrapping distance can be supplied directly.
func (l *Lerp3) SetFromDistance(ch int, start uint8, distance int16) {
	l.Delta[ch] = distance
	l.Accum[ch] = uint16(start) << 8
}

// DivideDeltas converts the total distances into true 8.8 per-step deltas
// for the given step count: divide by the count, then double to compensate
// for the <<7 headroom. The doubling wraps intentionally.
func (l *Lerp3) DivideDeltas(steps int) {
	for ch := range l.Delta {
		l.Delta[ch] = (l.Delta[ch] / int16(steps)) * 2
	}
}

// Next returns the current triple (the top byte of each accumulator) and
// advances all three channels by their deltas with wrapping addition.
func (l *Lerp3) Next() (a, b, c uint8) {
	a = uint8(l.Accum[0] >> 8)
	b = uint8(l.Accum[1] >> 8)
	c = uint8(l.Accum[2] >> 8)
	for ch := range l.Accum {
		l.Accum[ch] += uint16(l.Delta[ch])
	}
	return a, b, c
}

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

// HueDirection selects which way around the hue circle a gradient travels.
type HueDirection uint8

const (
	// HueForward walks hue upward (with wraparound at 255).
	HueForward HueDirection = iota
	// HueBackwards walks hue downward (with wraparound at 0).
	HueBackwards
)

// GradientDirection is a HueDirection or a rule for choosing one from the
// two endpoints.
type GradientDirection uint8

const (
	// GradientForward always walks hue upward.
	GradientForward GradientDirection = iota
	// GradientBackwards always walks hue downward.
	GradientBackwards
	// GradientShortest takes whichever way around the circle is shorter,
	// preferring forward on a tie.
	GradientShortest
	// GradientLongest takes whichever way around the circle is longer,
	// preferring backward on a tie.
	GradientLongest
)

// resolve collapses a rule direction into a concrete HueDirection for the
// given hue endpoints.
func (d GradientDirection) resolve(start, end uint8) HueDirection {
	switch d {
	case GradientBackwards:
		return HueBackwards
	case GradientShortest:
		if end-start > 127 {
			return HueBackwards
		}
		return HueForward
	case GradientLongest:
		if end-start < 128 {
			return HueBackwards
		}
		return HueForward
	default:
		return HueForward
	}
}

// HueDistance returns the signed <<7 fixed-point hue distance from start to
// end in the given direction. Forward distances are non-negative, backward
// non-positive; equal endpoints yield zero either way.
func HueDistance(start, end uint8, dir HueDirection) int16 {
	if dir == HueBackwards {
		return -(int16(uint8(start-end)) << 7)
	}
	return int16(end-start) << 7
}

// fillGradientHSV is the shared HSV gradient core. It resolves the hue
// direction, handles degenerate endpoints, and hands each interpolated
// triple to emit. The fill is end-exclusive.
func fillGradientHSV(n int, start, end HSV, dir GradientDirection, emit func(i int, c HSV)) {
	if n == 0 {
		return
	}

	// A saturation- or value-less endpoint has no meaningful hue of its
	// own; borrow the other endpoint's so the hue channel stays put.
	if start.S == 0 || start.V == 0 {
		start.H = end.H
	}
	if end.S == 0 || end.V == 0 {
		end.H = start.H
	}

	huedist := HueDistance(start.H, end.H, dir.resolve(start.H, end.H))

	var l Lerp3
	l.SetFromDistance(0, start.H, huedist)
	l.SetFromDiff(1, start.S, end.S)
	l.SetFromDiff(2, start.V, end.V)
	l.DivideDeltas(n)

	for i := 0; i < n; i++ {
		h, s, v := l.Next()
		emit(i, HSV{H: h, S: s, V: v})
	}
}

// FillGradientHSV fills out with an end-exclusive HSV gradient from start
// toward end, interpolating hue in the given direction.
func FillGradientHSV(out []HSV, start, end HSV, dir GradientDirection) {
	fillGradientHSV(len(out), start, end, dir, func(i int, c HSV) {
		out[i] = c
	})
}

// FillGradientHSVInclusive fills out with an HSV gradient whose last element
// is exactly end. The remaining elements are the end-exclusive gradient over
// one fewer step.
func FillGradientHSVInclusive(out []HSV, start, end HSV, dir GradientDirection) {
	if len(out) == 0 {
		return
	}
	out[len(out)-1] = end
	FillGradientHSV(out[:len(out)-1], start, end, dir)
}

// FillGradientPixelHSV fills out with an end-exclusive gradient computed in
// HSV space and converted to RGB through the rainbow wheel.
func FillGradientPixelHSV(out []Pixel, start, end HSV, dir GradientDirection) {
	fillGradientHSV(len(out), start, end, dir, func(i int, c HSV) {
		out[i] = c.Rainbow()
	})
}

// FillGradientPixelHSVInclusive is FillGradientPixelHSV with the last
// element pinned to end's exact conversion.
func FillGradientPixelHSVInclusive(out []Pixel, start, end HSV, dir GradientDirection) {
	if len(out) == 0 {
		return
	}
	out[len(out)-1] = end.Rainbow()
	FillGradientPixelHSV(out[:len(out)-1], start, end, dir)
}

// FillGradientRGB fills out with an end-exclusive gradient interpolated
// directly in RGB space, one linear ramp per channel.
func FillGradientRGB(out []Pixel, start, end Pixel) {
	if len(out) == 0 {
		return
	}
	var l Lerp3
	l.SetFromDiff(0, start.R, end.R)
	l.SetFromDiff(1, start.G, end.G)
	l.SetFromDiff(2, start.B, end.B)
	l.DivideDeltas(len(out))

	for i := range out {
		r, g, b := l.Next()
		out[i] = Pixel{R: r, G: g, B: b}
	}
}

// FillGradientRGBInclusive is FillGradientRGB with the last element pinned
// to exactly end.
func FillGradientRGBInclusive(out []Pixel, start, end Pixel) {
	if len(out) == 0 {
		return
	}
	out[len(out)-1] = end
	FillGradientRGB(out[:len(out)-1], start, end)
}

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

// PowerProfile describes the power draw of one LED package: milliwatts per
// full-scale unit of each channel, plus the idle draw of the controller chip
// with all channels off.
type PowerProfile struct {
	RmW    uint32
	GmW    uint32
	BmW    uint32
	IdlemW uint32
}

// DefaultPowerProfile models a typical 5V WS2812-class pixel:
// 16mA/11mA/15mA per channel and 1mA idle.
var DefaultPowerProfile = PowerProfile{
	RmW:    16 * 5,
	GmW:    11 * 6,
	BmW:    15 * 5,
	IdlemW: 1 * 5,
}

// Estimate returns the estimated draw of a single pixel in milliwatts,
// including the idle draw.
func (p PowerProfile) Estimate(c Pixel) uint32 {
	return p.IdlemW + p.EstimateNoIdle(c)
}

// EstimateNoIdle returns the channel-proportional draw of a single pixel in
// milliwatts. A full-scale channel contributes (nearly) its full
// per-channel rating; darker values scale linearly.
func (p PowerProfile) EstimateNoIdle(c Pixel) uint32 {
	return (uint32(c.R)*p.RmW + uint32(c.G)*p.GmW + uint32(c.B)*p.BmW) >> 8
}

// EstimateStrand returns the estimated draw of a whole strand in
// milliwatts. Channel bytes are summed first so the multiplies happen once
// per channel rather than once per pixel.
func (p PowerProfile) EstimateStrand(leds []Pixel) uint32 {
	var r, g, b uint32
	for i := range leds {
		r += uint32(leds[i].R)
		g += uint32(leds[i].G)
		b += uint32(leds[i].B)
	}
	return (r*p.RmW+g*p.GmW+b*p.BmW)>>8 + uint32(len(leds))*p.IdlemW
}

// MaxBrightness returns the highest global brightness, at most target, that
// keeps the strand's estimated draw within budgetmW. The strand content is
// taken as-is; brightness scales the estimate by target/256.
func (p PowerProfile) MaxBrightness(leds []Pixel, target uint8, budgetmW uint32) uint8 {
	full := p.EstimateStrand(leds)
	current := full * uint32(target) / 256
	if current > budgetmW {
		return uint8(uint32(target) * budgetmW / current)
	}
	return target
}

// MaxBrightnessAV is MaxBrightness with the budget given as a supply
// current and voltage in milliamps and millivolts.
func (p PowerProfile) MaxBrightnessAV(leds []Pixel, target uint8, maxmA, maxmV uint32) uint8 {
	return p.MaxBrightness(leds, target, maxmA*maxmV/1000)
}

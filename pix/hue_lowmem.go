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

//go:build pixmath_lowmem

package pix

// Memory-constrained targets trade the 768-byte lookup table for a few
// extra cycles per conversion. Output is identical to the table path.

func hueRainbow(hue uint8) Pixel {
	return rainbowCompute(hue)
}

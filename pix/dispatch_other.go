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

//go:build !amd64 && !arm64

package pix

import "math/bits"

func init() {
	if NoBatchEnv() {
		setScalarMode()
		return
	}
	// On 32-bit targets (Cortex-M class included) the 32-bit word kernel
	// is the sweet spot; wider words would need two loads per step.
	if bits.UintSize >= 64 {
		batchKernel = KernelWord64
		batchName = "word64"
	} else {
		batchKernel = KernelWord32
		batchName = "word32"
	}
}

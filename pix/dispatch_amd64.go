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

//go:build amd64

package pix

import "golang.org/x/sys/cpu"

func init() {
	if NoBatchEnv() {
		setScalarMode()
		return
	}
	// 64-bit registers and cheap unaligned loads: always take the wide
	// kernel. The detected vector extension is reported for diagnostics;
	// the compiler may use it when unrolling the word loop.
	batchKernel = KernelWord64
	switch {
	case cpu.X86.HasAVX2:
		batchName = "amd64/avx2"
	case cpu.X86.HasSSE2:
		batchName = "amd64/sse2"
	default:
		batchName = "amd64"
	}
}

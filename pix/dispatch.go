package pix

import (
	"os"
	"strconv"
)

// Kernel identifies the batch-scaling strategy selected at init time.
type Kernel int

const (
	// KernelScalar processes one byte at a time. This is the reference
	// implementation the word kernels must match bit for bit.
	KernelScalar Kernel = iota

	// KernelWord32 processes four byte lanes per 32-bit word.
	KernelWord32

	// KernelWord64 processes eight byte lanes per 64-bit word.
	KernelWord64
)

// String returns a human-readable name for the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelWord32:
		return "word32"
	case KernelWord64:
		return "word64"
	default:
		return "unknown"
	}
}

// batchKernel is the selected kernel for this runtime.
// Set by init() in dispatch_*.go files.
var batchKernel Kernel

// batchName is a human-readable description of the detected target.
// Set by init() in dispatch_*.go files.
var batchName string

// CurrentKernel returns the batch-scaling kernel in use.
func CurrentKernel() Kernel {
	return batchKernel
}

// CurrentName returns a human-readable name for the detected target,
// for example "amd64/avx2" or "scalar".
func CurrentName() string {
	return batchName
}

// NoBatchEnv checks the PIXMATH_NO_BATCH environment variable. When set,
// the scalar kernel is used regardless of the target, which is useful for
// testing and debugging.
func NoBatchEnv() bool {
	val := os.Getenv("PIXMATH_NO_BATCH")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	batchKernel = KernelScalar
	batchName = "scalar"
}

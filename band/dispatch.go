// Copyright 2025 go-highway Authors
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

package band

import (
	"os"
	"strconv"

	"golang.org/x/sys/cpu"
)

// Kernel identifies the implementation used by the saturated row kernels.
type Kernel int

const (
	// KernelScalar processes one sample at a time.
	KernelScalar Kernel = iota

	// KernelSWAR processes 8 samples per 64-bit word.
	KernelSWAR
)

// String returns a human-readable name for the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelSWAR:
		return "swar64"
	default:
		return "unknown"
	}
}

// Row kernels selected by init.
var (
	SaturatedAddInt8 func(dst, src []int8)
	SaturatedSubInt8 func(dst, src []int8)
)

var currentKernel Kernel

func init() {
	if NoSWAREnv() || strconv.IntSize < 64 {
		useKernel(KernelScalar)
		return
	}
	useKernel(KernelSWAR)
}

func useKernel(k Kernel) {
	currentKernel = k
	switch k {
	case KernelSWAR:
		SaturatedAddInt8 = SWARSaturatedAddInt8
		SaturatedSubInt8 = SWARSaturatedSubInt8
	default:
		SaturatedAddInt8 = BaseSaturatedAddInt8
		SaturatedSubInt8 = BaseSaturatedSubInt8
	}
}

// CurrentKernel returns the kernel the saturated joins run on.
func CurrentKernel() Kernel {
	return currentKernel
}

// NoSWAREnv checks if the BANDS_NO_SWAR environment variable is set.
// When set, the scalar kernels are used regardless of word size.
func NoSWAREnv() bool {
	val := os.Getenv("BANDS_NO_SWAR")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CPUFeatures lists the SIMD extensions reported by the host CPU.
// It is informational; kernel selection does not depend on it.
func CPUFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSSE3, "ssse3")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasAVX512BW, "avx512bw")
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasSVE, "sve")
	add(cpu.ARM64.HasSVE2, "sve2")
	return features
}

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

import "math"

// This file provides the scalar saturated row kernels.
// Saturated operations clamp results to [-128, 127] instead of wrapping.

// clampInt8 narrows a widened sum back to the int8 range.
func clampInt8(v int16) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// BaseSaturatedAddInt8 computes dst[i] = clamp(dst[i] + src[i]) for
// i < min(len(dst), len(src)).
func BaseSaturatedAddInt8(dst, src []int8) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = clampInt8(int16(dst[i]) + int16(src[i]))
	}
}

// BaseSaturatedSubInt8 computes dst[i] = clamp(dst[i] - src[i]) for
// i < min(len(dst), len(src)).
func BaseSaturatedSubInt8(dst, src []int8) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = clampInt8(int16(dst[i]) - int16(src[i]))
	}
}

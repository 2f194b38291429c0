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

// signOffset maps the signed sample range onto [0, 255].
const signOffset = -math.MinInt8

// ToUnsigned shifts a signed sample into [0, 255].
func ToUnsigned(s int8) uint8 {
	return uint8(int16(s) + signOffset)
}

// FromUnsigned is the inverse of ToUnsigned.
func FromUnsigned(u uint8) int8 {
	return int8(int16(u) - signOffset)
}

// PackRGB packs three signed samples into a 0x00RRGGBB word.
func PackRGB(r, g, b int8) uint32 {
	return uint32(ToUnsigned(r))<<16 |
		uint32(ToUnsigned(g))<<8 |
		uint32(ToUnsigned(b))
}

// UnpackRGB extracts the three signed samples from a packed word.
// Bits 24-31 are ignored.
func UnpackRGB(word uint32) (r, g, b int8) {
	r = FromUnsigned(uint8(word >> 16))
	g = FromUnsigned(uint8(word >> 8))
	b = FromUnsigned(uint8(word))
	return r, g, b
}

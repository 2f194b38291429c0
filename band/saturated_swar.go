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
	"encoding/binary"
	"unsafe"
)

// SWAR ("SIMD within a register") kernels process 8 int8 lanes per uint64.
// Lane operations are independent of byte order, so the little-endian loads
// are only a portable way to get at the words.

const (
	swarLanes = 8
	laneHigh  = 0x8080808080808080 // sign bit of every lane
	laneMax   = 0x7f7f7f7f7f7f7f7f // 127 in every lane
)

// bytesOf reinterprets an int8 slice as bytes.
func bytesOf(s []int8) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// saturate replaces the lanes flagged in ov (sign bit set) with 127 or -128,
// picking the bound from the sign of a.
func saturate(a, res, ov uint64) uint64 {
	m := (ov >> 7) * 0xff
	sat := laneMax + (a&laneHigh)>>7
	return res&^m | sat&m
}

// addLanes is a lane-wise signed saturating add.
func addLanes(a, b uint64) uint64 {
	s := ((a &^ laneHigh) + (b &^ laneHigh)) ^ ((a ^ b) & laneHigh)
	ov := ^(a ^ b) & (a ^ s) & laneHigh
	return saturate(a, s, ov)
}

// subLanes is a lane-wise signed saturating subtract.
func subLanes(a, b uint64) uint64 {
	d := ((a | laneHigh) - (b &^ laneHigh)) ^ ((a ^ ^b) & laneHigh)
	ov := (a ^ b) & (a ^ d) & laneHigh
	return saturate(a, d, ov)
}

// SWARSaturatedAddInt8 is the word-at-a-time form of BaseSaturatedAddInt8.
func SWARSaturatedAddInt8(dst, src []int8) {
	swarApply(dst, src, addLanes, BaseSaturatedAddInt8)
}

// SWARSaturatedSubInt8 is the word-at-a-time form of BaseSaturatedSubInt8.
func SWARSaturatedSubInt8(dst, src []int8) {
	swarApply(dst, src, subLanes, BaseSaturatedSubInt8)
}

func swarApply(dst, src []int8, op func(a, b uint64) uint64, tail func(dst, src []int8)) {
	n := min(len(dst), len(src))
	d := bytesOf(dst[:n])
	s := bytesOf(src[:n])

	i := 0
	// Process full words
	for ; i+swarLanes <= n; i += swarLanes {
		a := binary.LittleEndian.Uint64(d[i:])
		b := binary.LittleEndian.Uint64(s[i:])
		binary.LittleEndian.PutUint64(d[i:], op(a, b))
	}

	// Handle tail elements
	if i < n {
		tail(dst[i:n], src[i:n])
	}
}

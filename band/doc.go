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

// Package band provides pixel-band algebra over signed 8-bit image planes.
//
// The core type is Image[T], a contiguous row-major plane with no padding.
// Gray8 holds signed 8-bit samples in [-128, 127], Gray32 holds wider data
// and RGB holds packed 0x00RRGGBB words.
//
// # Sign Convention
//
// Gray samples are signed. Whenever a sample is packed into a wider word it
// is shifted into [0, 255] first:
//
//	ToUnsigned(s) = s + 128
//	FromUnsigned(u) = u - 128
//
// # Operators
//
//	rgb, err := band.Merge3(red, green, blue)  // three planes -> packed RGB
//	r, g, b := band.Split3(rgb)                // packed RGB -> three planes
//	err = band.AddInto(dst, src)               // dst = clamp(dst + src)
//
// SaturatingAdd and SaturatingSub implement Joiner, the two-image combine
// capability consumed by multi-level folds. A join mutates and returns its
// first operand.
//
// # Masked Images
//
// Masked pairs a data image with a Gray8 mask. A mask sample equal to
// MaskUnmasked (-128) marks the pixel as unmasked; every other value masks it.
package band

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
	"fmt"

	"github.com/ajroetker/go-bands/band/contrib/workerpool"
)

// Merge3 combines three gray planes into one packed RGB image.
// Each sample is shifted into [0, 255] with ToUnsigned before packing, so
// red lands in bits 16-23, green in 8-15 and blue in 0-7.
// The inputs are not modified.
func Merge3(red, green, blue *Gray8) (*RGB, error) {
	return Merge3Pool(nil, red, green, blue)
}

// Merge3Pool is Merge3 with rows split across pool. A nil pool runs on the
// calling goroutine.
func Merge3Pool(pool *workerpool.Pool, red, green, blue *Gray8) (*RGB, error) {
	if red == nil || green == nil || blue == nil {
		return nil, fmt.Errorf("band: merge: %w: nil plane", ErrTypeMismatch)
	}
	if !SameSize(red, green) || !SameSize(green, blue) {
		return nil, fmt.Errorf("band: merge: %w: %s, %s, %s",
			ErrDimensionMismatch, red, green, blue)
	}

	rgb := NewRGB(red.width, red.height)
	pool.ParallelFor(red.height, func(y0, y1 int) {
		lo, hi := y0*red.width, y1*red.width
		r, g, b := red.data[lo:hi], green.data[lo:hi], blue.data[lo:hi]
		out := rgb.data[lo:hi]
		for i := range out {
			out[i] = PackRGB(r[i], g[i], b[i])
		}
	})
	return rgb, nil
}

// Split3 is the inverse of Merge3: it unpacks an RGB image into three gray
// planes. Bits 24-31 of each word are ignored.
func Split3(rgb *RGB) (red, green, blue *Gray8) {
	return Split3Pool(nil, rgb)
}

// Split3Pool is Split3 with rows split across pool.
func Split3Pool(pool *workerpool.Pool, rgb *RGB) (red, green, blue *Gray8) {
	w, h := rgb.width, rgb.height
	red, green, blue = NewGray8(w, h), NewGray8(w, h), NewGray8(w, h)
	pool.ParallelFor(h, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			red.data[i], green.data[i], blue.data[i] = UnpackRGB(rgb.data[i])
		}
	})
	return red, green, blue
}

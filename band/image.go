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
)

// Sample is a constraint for the element types an Image can hold.
type Sample interface {
	~int8 | ~int32 | ~uint32
}

// Plane is the view of an image that is available when its sample type is
// only known at runtime.
type Plane interface {
	Width() int
	Height() int
	String() string
}

// Image is a single-channel 2D array stored row-major without padding.
type Image[T Sample] struct {
	data   []T
	width  int
	height int
}

// Gray8 is a plane of signed 8-bit samples.
type Gray8 = Image[int8]

// Gray32 is a plane of signed 32-bit samples.
type Gray32 = Image[int32]

// RGB is a plane of packed 0x00RRGGBB words.
type RGB = Image[uint32]

// NewImage creates a zero-filled image with the specified dimensions.
// Non-positive dimensions yield an empty 0x0 image.
func NewImage[T Sample](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}
	return &Image[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}
}

// NewGray8 creates a zero-filled Gray8 image.
func NewGray8(width, height int) *Gray8 { return NewImage[int8](width, height) }

// NewGray32 creates a zero-filled Gray32 image.
func NewGray32(width, height int) *Gray32 { return NewImage[int32](width, height) }

// NewRGB creates a zero-filled RGB image.
func NewRGB(width, height int) *RGB { return NewImage[uint32](width, height) }

// FromData wraps data as a width x height image without copying it.
// The image and the caller share the backing array.
func FromData[T Sample](width, height int, data []T) (*Image[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("band: from data: %w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("band: from data: %w: %dx%d needs %d samples, got %d",
			ErrInvalidDimensions, width, height, width*height, len(data))
	}
	if width == 0 || height == 0 {
		return &Image[T]{}, nil
	}
	return &Image[T]{data: data, width: width, height: height}, nil
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Len returns the number of samples, Width()*Height().
func (img *Image[T]) Len() int {
	return len(img.data)
}

// Data returns the backing sample slice. Writes through it are visible to the
// image.
func (img *Image[T]) Data() []T {
	return img.data
}

// Row returns a mutable slice for row y, or nil when y is out of range.
func (img *Image[T]) Row(y int) []T {
	if y < 0 || y >= img.height {
		return nil
	}
	start := y * img.width
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y), or zero when out of range.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		var zero T
		return zero
	}
	return img.data[y*img.width+x]
}

// Set sets the value at position (x, y). Out of range writes are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.data[y*img.width+x] = value
}

// Fill sets all pixels to value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Clear sets all pixels to zero.
func (img *Image[T]) Clear() {
	clear(img.data)
}

// Clone creates a deep copy of the image.
func (img *Image[T]) Clone() *Image[T] {
	if img.data == nil {
		return &Image[T]{}
	}
	clone := &Image[T]{
		data:   make([]T, len(img.data)),
		width:  img.width,
		height: img.height,
	}
	copy(clone.data, img.data)
	return clone
}

// CopyFrom overwrites the samples of img with those of src.
func (img *Image[T]) CopyFrom(src *Image[T]) error {
	if !SameSize(img, src) {
		return fmt.Errorf("band: copy: %w: %s, %s", ErrDimensionMismatch, img, src)
	}
	copy(img.data, src.data)
	return nil
}

// Rect defines a rectangular region within an image.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Bounds returns the bounding rectangle of the image.
func (img *Image[T]) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: img.width, Y1: img.height}
}

// String describes the image kind and size, e.g. "Gray8 640x480".
func (img *Image[T]) String() string {
	return fmt.Sprintf("%s %dx%d", kindName[T](), img.width, img.height)
}

func kindName[T Sample]() string {
	var zero T
	switch any(zero).(type) {
	case int8:
		return "Gray8"
	case int32:
		return "Gray32"
	case uint32:
		return "RGB"
	default:
		return fmt.Sprintf("Image[%T]", zero)
	}
}

// SameSize returns true if both planes have the same dimensions.
func SameSize(a, b Plane) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}

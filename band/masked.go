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
	"math"
)

const (
	// MaskUnmasked is the only mask value that marks a pixel as unmasked.
	MaskUnmasked int8 = math.MinInt8

	// MaskFillZero is the default fill of a freshly allocated mask. It is not
	// MaskUnmasked, so a new Masked image starts fully masked.
	MaskFillZero int8 = 0
)

// Masked pairs a data image with a Gray8 mask of the same size.
// The two always have equal dimensions; there is no way to resize either.
type Masked[T Sample] struct {
	data *Image[T]
	mask *Gray8
}

// MaskOption configures NewMasked.
type MaskOption func(*maskConfig)

type maskConfig struct {
	fill int8
}

// WithMaskFill sets the value a new mask is filled with.
// WithMaskFill(MaskUnmasked) creates a fully unmasked image.
func WithMaskFill(v int8) MaskOption {
	return func(c *maskConfig) { c.fill = v }
}

// NewMasked creates a zero-filled data image and a mask of the same size.
// The mask is filled with MaskFillZero unless WithMaskFill says otherwise.
func NewMasked[T Sample](width, height int, opts ...MaskOption) *Masked[T] {
	cfg := maskConfig{fill: MaskFillZero}
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Masked[T]{
		data: NewImage[T](width, height),
		mask: NewGray8(width, height),
	}
	if cfg.fill != 0 {
		m.mask.Fill(cfg.fill)
	}
	return m
}

// NewMaskedFrom pairs data with mask. The data samples are copied; mask is
// retained as is and belongs to the returned image from then on.
func NewMaskedFrom[T Sample](data *Image[T], mask *Gray8) (*Masked[T], error) {
	if data == nil || mask == nil {
		return nil, fmt.Errorf("band: masked: %w: nil data or mask", ErrTypeMismatch)
	}
	if !SameSize(data, mask) {
		return nil, fmt.Errorf("band: masked: %w: %s, %s", ErrDimensionMismatch, data, mask)
	}
	return &Masked[T]{
		data: data.Clone(),
		mask: mask,
	}, nil
}

// Clone returns an independent copy: data and mask are both deep copies.
func (m *Masked[T]) Clone() *Masked[T] {
	return &Masked[T]{
		data: m.data.Clone(),
		mask: m.mask.Clone(),
	}
}

// Image returns the data image.
func (m *Masked[T]) Image() *Image[T] {
	return m.data
}

// Mask returns the mask image.
func (m *Masked[T]) Mask() *Gray8 {
	return m.mask
}

// MaskData returns the live mask samples for bulk inspection or rewriting.
func (m *Masked[T]) MaskData() []int8 {
	return m.mask.data
}

// Width returns the image width in pixels.
func (m *Masked[T]) Width() int {
	return m.data.width
}

// Height returns the image height in pixels.
func (m *Masked[T]) Height() int {
	return m.data.height
}

// IsMasked reports whether (x, y) is masked. Out of range pixels are masked.
func (m *Masked[T]) IsMasked(x, y int) bool {
	if x < 0 || x >= m.mask.width || y < 0 || y >= m.mask.height {
		return true
	}
	return m.mask.data[y*m.mask.width+x] != MaskUnmasked
}

// SetMasked marks (x, y) as masked or unmasked. Masked pixels get
// MaskFillZero.
func (m *Masked[T]) SetMasked(x, y int, masked bool) {
	v := MaskUnmasked
	if masked {
		v = MaskFillZero
	}
	m.mask.Set(x, y, v)
}

// UnmaskAll marks every pixel as unmasked.
func (m *Masked[T]) UnmaskAll() {
	m.mask.Fill(MaskUnmasked)
}

// MaskAll marks every pixel as masked.
func (m *Masked[T]) MaskAll() {
	m.mask.Fill(MaskFillZero)
}

// CountUnmasked returns the number of unmasked pixels.
func (m *Masked[T]) CountUnmasked() int {
	n := 0
	for _, v := range m.mask.data {
		if v == MaskUnmasked {
			n++
		}
	}
	return n
}

// String describes the data image together with its size.
func (m *Masked[T]) String() string {
	return fmt.Sprintf("Masked(%s) (%dx%d)", m.data, m.data.width, m.data.height)
}

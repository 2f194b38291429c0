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

// Joiner combines two images into one. Implementations may write the result
// into first and return it; callers that need first unchanged must Clone it
// beforehand.
type Joiner interface {
	Join(first, second Plane) (Plane, error)
}

// JoinFunc adapts an ordinary function to the Joiner interface.
type JoinFunc func(first, second Plane) (Plane, error)

// Join calls f(first, second).
func (f JoinFunc) Join(first, second Plane) (Plane, error) {
	return f(first, second)
}

// joinRows is the row batch handed to each pool worker.
const joinRows = 16

// SaturatingAdd joins two Gray8 planes by clamped addition. The sum is
// written into the first operand, which is returned.
type SaturatingAdd struct {
	// Pool splits rows across workers when non-nil.
	Pool *workerpool.Pool
}

// Join implements Joiner.
func (j SaturatingAdd) Join(first, second Plane) (Plane, error) {
	dst, src, err := grayOperands("add", first, second)
	if err != nil {
		return nil, err
	}
	if err := AddIntoPool(j.Pool, dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// SaturatingSub joins two Gray8 planes by clamped subtraction of the second
// from the first. The difference is written into the first operand.
type SaturatingSub struct {
	Pool *workerpool.Pool
}

// Join implements Joiner.
func (j SaturatingSub) Join(first, second Plane) (Plane, error) {
	dst, src, err := grayOperands("sub", first, second)
	if err != nil {
		return nil, err
	}
	if err := SubIntoPool(j.Pool, dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func grayOperands(op string, first, second Plane) (*Gray8, *Gray8, error) {
	dst, ok1 := first.(*Gray8)
	src, ok2 := second.(*Gray8)
	if !ok1 || !ok2 || dst == nil || src == nil {
		return nil, nil, fmt.Errorf("band: %s: %w: want Gray8 operands, got %s, %s",
			op, ErrTypeMismatch, describe(first), describe(second))
	}
	return dst, src, nil
}

// describe renders a Plane for error messages, tolerating nil values.
func describe(p Plane) string {
	switch v := p.(type) {
	case nil:
		return "<nil>"
	case *Gray8:
		if v == nil {
			return "<nil Gray8>"
		}
	}
	return fmt.Sprintf("%s (%T)", p, p)
}

// AddInto sets dst[i] = clamp(dst[i] + src[i], -128, 127). src is only read.
// Nothing is written unless both planes have the same width and height.
func AddInto(dst, src *Gray8) error {
	return AddIntoPool(nil, dst, src)
}

// AddIntoPool is AddInto with rows split across pool.
func AddIntoPool(pool *workerpool.Pool, dst, src *Gray8) error {
	return applyRows(pool, "add", dst, src, SaturatedAddInt8)
}

// SubInto sets dst[i] = clamp(dst[i] - src[i], -128, 127). src is only read.
func SubInto(dst, src *Gray8) error {
	return SubIntoPool(nil, dst, src)
}

// SubIntoPool is SubInto with rows split across pool.
func SubIntoPool(pool *workerpool.Pool, dst, src *Gray8) error {
	return applyRows(pool, "sub", dst, src, SaturatedSubInt8)
}

func applyRows(pool *workerpool.Pool, op string, dst, src *Gray8, kernel func(dst, src []int8)) error {
	if dst == nil || src == nil {
		return fmt.Errorf("band: %s: %w: nil operand", op, ErrTypeMismatch)
	}
	if dst.width != src.width || dst.height != src.height {
		return fmt.Errorf("band: %s: %w: %s, %s", op, ErrDimensionMismatch, dst, src)
	}
	w := dst.width
	pool.ParallelForBatched(dst.height, joinRows, func(y0, y1 int) {
		kernel(dst.data[y0*w:y1*w], src.data[y0*w:y1*w])
	})
	return nil
}

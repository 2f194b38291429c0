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
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// randomGray8 returns a w x h plane filled with values from rng.
func randomGray8(rng *rand.Rand, w, h int) *Gray8 {
	img := NewGray8(w, h)
	for i := range img.Data() {
		img.Data()[i] = int8(rng.Intn(256) - 128)
	}
	return img
}

func TestNewImage(t *testing.T) {
	img := NewGray8(100, 50)

	if img.Width() != 100 {
		t.Errorf("Width: got %d, want 100", img.Width())
	}
	if img.Height() != 50 {
		t.Errorf("Height: got %d, want 50", img.Height())
	}
	if img.Len() != 5000 {
		t.Errorf("Len: got %d, want 5000", img.Len())
	}
	for i, v := range img.Data() {
		if v != 0 {
			t.Fatalf("Data[%d]: got %d, want 0", i, v)
		}
	}
}

func TestNewImage_ZeroDimensions(t *testing.T) {
	img := NewRGB(0, 0)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", img.Width(), img.Height())
	}

	img = NewRGB(-1, 10)
	if img.Width() != 0 || img.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", img.Width(), img.Height())
	}
}

func TestFromData(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	img, err := FromData(3, 2, data)
	if err != nil {
		t.Fatalf("FromData: %v", err)
	}
	if got := img.At(2, 1); got != 6 {
		t.Errorf("At(2,1): got %d, want 6", got)
	}

	// FromData shares the backing array
	data[0] = 42
	if got := img.At(0, 0); got != 42 {
		t.Errorf("At(0,0) after caller write: got %d, want 42", got)
	}

	if _, err := FromData(4, 2, data); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("short data: got %v, want ErrInvalidDimensions", err)
	}
	if _, err := FromData(-3, -2, data); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative dims: got %v, want ErrInvalidDimensions", err)
	}
}

func TestImage_Row(t *testing.T) {
	img := NewGray8(10, 5)

	row := img.Row(2)
	if len(row) != 10 {
		t.Fatalf("Row length: got %d, want 10", len(row))
	}
	row[3] = 7
	if got := img.At(3, 2); got != 7 {
		t.Errorf("At(3,2) after row write: got %d, want 7", got)
	}

	if img.Row(-1) != nil {
		t.Error("Row(-1) should return nil")
	}
	if img.Row(5) != nil {
		t.Error("Row(5) should return nil")
	}
}

func TestImage_AtSet(t *testing.T) {
	img := NewGray8(10, 10)

	img.Set(5, 7, -42)
	if got := img.At(5, 7); got != -42 {
		t.Errorf("At(5,7): got %v, want -42", got)
	}

	// Out of bounds should return zero
	if got := img.At(-1, 0); got != 0 {
		t.Errorf("At(-1,0): got %v, want 0", got)
	}
	if got := img.At(10, 0); got != 0 {
		t.Errorf("At(10,0): got %v, want 0", got)
	}

	// Set out of bounds should be no-op
	img.Set(-1, 0, 99)
	img.Set(10, 0, 99)
}

func TestImage_Clone(t *testing.T) {
	img := NewGray8(10, 10)
	img.Set(5, 5, 42)

	clone := img.Clone()
	if !SameSize(clone, img) {
		t.Error("Clone dimensions differ")
	}
	if diff := cmp.Diff(img.Data(), clone.Data()); diff != "" {
		t.Errorf("Clone data mismatch (-want +got):\n%s", diff)
	}

	clone.Set(5, 5, 0)
	if img.At(5, 5) != 42 {
		t.Error("Modifying clone affected original")
	}

	empty := NewGray8(0, 0).Clone()
	if empty.Width() != 0 || empty.Len() != 0 {
		t.Errorf("Clone of empty image: got %s", empty)
	}
}

func TestImage_FillClear(t *testing.T) {
	img := NewGray8(4, 3)
	img.Fill(-5)
	for i, v := range img.Data() {
		if v != -5 {
			t.Fatalf("Fill: Data[%d] = %d, want -5", i, v)
		}
	}
	img.Clear()
	for i, v := range img.Data() {
		if v != 0 {
			t.Fatalf("Clear: Data[%d] = %d, want 0", i, v)
		}
	}
}

func TestImage_CopyFrom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	src := randomGray8(rng, 6, 4)
	dst := NewGray8(6, 4)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if diff := cmp.Diff(src.Data(), dst.Data()); diff != "" {
		t.Errorf("CopyFrom mismatch (-want +got):\n%s", diff)
	}

	if err := NewGray8(6, 5).CopyFrom(src); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("CopyFrom mismatched: got %v, want ErrDimensionMismatch", err)
	}
}

func TestImage_String(t *testing.T) {
	tests := []struct {
		img  Plane
		want string
	}{
		{NewGray8(4, 3), "Gray8 4x3"},
		{NewGray32(640, 480), "Gray32 640x480"},
		{NewRGB(1, 1), "RGB 1x1"},
	}
	for _, tt := range tests {
		if got := tt.img.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}

func TestSameSize(t *testing.T) {
	if !SameSize(NewGray8(3, 4), NewRGB(3, 4)) {
		t.Error("SameSize across sample types: got false, want true")
	}
	if SameSize(NewGray8(3, 4), NewGray8(4, 3)) {
		t.Error("SameSize transposed: got true, want false")
	}
}

func TestBounds(t *testing.T) {
	r := NewGray8(7, 3).Bounds()
	if r.Width() != 7 || r.Height() != 3 {
		t.Errorf("Bounds: got %dx%d, want 7x3", r.Width(), r.Height())
	}
}

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

package bandio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bands/band"
)

func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: uint8((x*31 + y*17) % 256)})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{".tiff", FormatTIFF, false},
		{"webp", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTIFF, FormatFromPath("out/merged.TIF", FormatPNG))
	assert.Equal(t, FormatPNG, FormatFromPath("merged.raw", FormatPNG))
	assert.Equal(t, FormatBMP, FormatFromPath("merged", FormatBMP))
}

func TestGrayConversionRoundTrip(t *testing.T) {
	src := gradient(9, 5)
	g := GrayFromImage(src)
	require.Equal(t, 9, g.Width())
	require.Equal(t, 5, g.Height())

	// Luma 0 maps to the bottom of the signed range.
	assert.Equal(t, int8(-128), g.At(0, 0))
	assert.Equal(t, src.Pix, GrayToImage(g).Pix)
}

func TestGrayFromImage_OffsetBounds(t *testing.T) {
	src := gradient(8, 8).SubImage(image.Rect(2, 3, 6, 8))
	g := GrayFromImage(src)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 5, g.Height())

	want := src.(*image.Gray).GrayAt(2, 3).Y
	assert.Equal(t, band.FromUnsigned(want), g.At(0, 0))
}

func TestRGBConversionRoundTrip(t *testing.T) {
	red := GrayFromImage(gradient(6, 4))
	green := band.NewGray8(6, 4)
	green.Fill(-1)
	blue := band.NewGray8(6, 4)
	blue.Fill(127)

	rgb, err := band.Merge3(red, green, blue)
	require.NoError(t, err)

	img := RGBToImage(rgb)
	c := img.RGBAAt(1, 2)
	assert.Equal(t, band.ToUnsigned(red.At(1, 2)), c.R)
	assert.Equal(t, uint8(127), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Equal(t, uint8(255), c.A)

	back := RGBFromImage(img)
	assert.Equal(t, rgb.Data(), back.Data())
}

func TestEncodeDecode(t *testing.T) {
	g := GrayFromImage(gradient(7, 3))
	for _, f := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, GrayToImage(g), f))

			img, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, g.Data(), GrayFromImage(img).Data())
		})
	}

	err := Encode(&bytes.Buffer{}, GrayToImage(g), Format("gif"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plane.png")

	g := GrayFromImage(gradient(5, 5))
	require.NoError(t, WriteFile(path, GrayToImage(g), FormatPNG))

	got, err := ReadGray(path)
	require.NoError(t, err)
	assert.Equal(t, g.Data(), got.Data())

	rgb, err := ReadRGB(path)
	require.NoError(t, err)
	r, gg, b := band.Split3(rgb)
	assert.Equal(t, g.Data(), r.Data())
	assert.Equal(t, g.Data(), gg.Data())
	assert.Equal(t, g.Data(), b.Data())

	_, err = ReadGray(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

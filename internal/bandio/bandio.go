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

// Package bandio converts between band planes and encoded image files.
package bandio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-bands/band"
)

// Format is an output file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ErrUnknownFormat is returned for formats other than png, bmp and tiff.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the extension of path, falling back
// to def when the extension is not recognized.
func FormatFromPath(path string, def Format) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f
	}
	return def
}

// GrayFromImage converts img to a Gray8 plane using its luma, shifted into
// the signed sample range.
func GrayFromImage(img image.Image) *band.Gray8 {
	b := img.Bounds()
	gray := band.NewGray8(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Row(y)
		for x := range row {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			row[x] = band.FromUnsigned(c.Y)
		}
	}
	return gray
}

// GrayToImage converts a Gray8 plane to an 8-bit grayscale image.
func GrayToImage(g *band.Gray8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		dst := img.Pix[y*img.Stride : y*img.Stride+g.Width()]
		for x, s := range g.Row(y) {
			dst[x] = band.ToUnsigned(s)
		}
	}
	return img
}

// RGBToImage converts packed words to an opaque RGBA image.
func RGBToImage(rgb *band.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rgb.Width(), rgb.Height()))
	for y := 0; y < rgb.Height(); y++ {
		pix := img.Pix[y*img.Stride:]
		for x, w := range rgb.Row(y) {
			pix[4*x+0] = uint8(w >> 16)
			pix[4*x+1] = uint8(w >> 8)
			pix[4*x+2] = uint8(w)
			pix[4*x+3] = 0xff
		}
	}
	return img
}

// RGBFromImage packs the color channels of img into words.
func RGBFromImage(img image.Image) *band.RGB {
	b := img.Bounds()
	rgb := band.NewRGB(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := rgb.Row(y)
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
		}
	}
	return rgb
}

// Decode reads any registered image format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("encode: %w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// ReadGray loads the file at path as a Gray8 plane.
func ReadGray(path string) (*band.Gray8, error) {
	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return GrayFromImage(img), nil
}

// ReadRGB loads the file at path as packed RGB words.
func ReadRGB(path string) (*band.RGB, error) {
	img, err := readImage(path)
	if err != nil {
		return nil, err
	}
	return RGBFromImage(img), nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// WriteFile encodes img to path in format f.
func WriteFile(path string, img image.Image, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Encode(out, img, f)
}

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

package main

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/ajroetker/go-spatial/hwy/contrib/spatial"
	"github.com/ajroetker/go-spatial/hwy/contrib/workerpool"
)

// readImage decodes a PNG or TIFF file and reports its format name.
func readImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "open input")
	}
	defer f.Close()

	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", errors.Wrapf(err, "decode %s", path)
	}
	return img, format, nil
}

// writeImage encodes img to path in the format named by its extension.
func writeImage(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	w := bufio.NewWriter(f)
	if err := encode(w, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrap(w.Flush(), "flush output")
}

type encoder func(w io.Writer, img image.Image) error

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode, nil
	case ".tif", ".tiff":
		return encodeTIFF, nil
	default:
		return nil, errors.Errorf("unsupported output extension %q, want .png, .tif or .tiff", ext)
	}
}

// isWide reports whether img carries more than 8 bits per channel.
func isWide(img image.Image) bool {
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return true
	}
	return false
}

// toGray returns img as 8-bit gray, converting through the gray color model
// when it is not gray already.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// toGray16 is like toGray for 16-bit gray.
func toGray16(img image.Image) *image.Gray16 {
	if g, ok := img.(*image.Gray16); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// graySamples copies the visible pixels of g into a row-major plane.
func graySamples(g *image.Gray) (samples []uint8, width, height int) {
	b := g.Bounds()
	width, height = b.Dx(), b.Dy()
	samples = make([]uint8, width*height)
	for y := range height {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		copy(samples[y*width:(y+1)*width], g.Pix[off:off+width])
	}
	return samples, width, height
}

// gray16Samples copies the visible pixels of g into a row-major plane.
// Gray16 stores samples big-endian.
func gray16Samples(g *image.Gray16) (samples []uint16, width, height int) {
	b := g.Bounds()
	width, height = b.Dx(), b.Dy()
	samples = make([]uint16, width*height)
	for y := range height {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		row := samples[y*width : (y+1)*width]
		for x := range row {
			row[x] = binary.BigEndian.Uint16(g.Pix[off+2*x:])
		}
	}
	return samples, width, height
}

func grayFromSamples(samples []uint8, width, height int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, width, height))
	copy(g.Pix, samples)
	return g
}

func gray16FromSamples(samples []uint16, width, height int) *image.Gray16 {
	g := image.NewGray16(image.Rect(0, 0, width, height))
	for i, v := range samples {
		binary.BigEndian.PutUint16(g.Pix[2*i:], v)
	}
	return g
}

// filterGray applies stat to an 8-bit image and returns a new image.
func filterGray(pool *workerpool.Pool, g *image.Gray, radius int, stat spatial.Statistic) (*image.Gray, error) {
	samples, width, height := graySamples(g)
	if err := spatial.ApplyWithPool(pool, samples, samples, radius, width, height, stat); err != nil {
		return nil, err
	}
	return grayFromSamples(samples, width, height), nil
}

// filterGray16 applies stat to a 16-bit image and returns a new image.
func filterGray16(pool *workerpool.Pool, g *image.Gray16, radius int, stat spatial.Statistic) (*image.Gray16, error) {
	samples, width, height := gray16Samples(g)
	if err := spatial.ApplyWithPool(pool, samples, samples, radius, width, height, stat); err != nil {
		return nil, err
	}
	return gray16FromSamples(samples, width, height), nil
}

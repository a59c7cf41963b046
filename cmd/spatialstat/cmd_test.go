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
	"bytes"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-spatial/hwy/contrib/spatial"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

// writeGrid writes the 3x3 plane 1..9 as an 8-bit PNG.
func writeGrid(t *testing.T, path string) {
	t.Helper()
	g := image.NewGray(image.Rect(0, 0, 3, 3))
	for i := range g.Pix {
		g.Pix[i] = uint8(i + 1)
	}
	require.NoError(t, writeImage(path, g))
}

func TestRoot_Filters(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeGrid(t, in)

	tests := []struct {
		args []string
		want []uint8
	}{
		{[]string{"-s", "max"}, []uint8{5, 6, 6, 8, 9, 9, 8, 9, 9}},
		{[]string{"--statistic", "minimum", "-w", "1"}, []uint8{1, 1, 2, 1, 1, 2, 4, 4, 5}},
		{nil, []uint8{2, 3, 3, 4, 5, 5, 6, 7, 7}},
		{[]string{"-r", "0", "-s", "gradient"}, make([]uint8, 9)},
	}
	for _, tt := range tests {
		out := filepath.Join(dir, "out.png")
		args := append([]string{"-i", in, "-o", out}, tt.args...)
		_, err := execute(t, args...)
		require.NoError(t, err, "%v", tt.args)

		img, _, err := readImage(out)
		require.NoError(t, err)
		samples, _, _ := graySamples(toGray(img))
		assert.Equal(t, tt.want, samples, "%v", tt.args)
	}
}

func TestRoot_Depth16(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.tiff")
	writeGrid(t, in)

	_, err := execute(t, "-i", in, "-o", out, "--depth", "16", "-s", "max", "-v")
	require.NoError(t, err)

	img, _, err := readImage(out)
	require.NoError(t, err)
	g, ok := img.(*image.Gray16)
	require.True(t, ok, "decoded %T, want *image.Gray16", img)
	// 8-bit 9 widens to 9*257 through the color model.
	assert.Equal(t, color.Gray16{Y: 9 * 257}, g.Gray16At(1, 1))
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writeGrid(t, in)
	out := filepath.Join(dir, "out.png")

	_, err := execute(t, "-i", in, "-o", out, "-s", "median")
	assert.True(t, errors.Is(err, spatial.ErrInvalidStatisticName), "got %v", err)

	_, err = execute(t, "-i", in, "-o", out, "-r", "-1")
	assert.True(t, errors.Is(err, spatial.ErrRadiusOutOfRange), "got %v", err)

	_, err = execute(t, "-i", in, "-o", out, "--depth", "12")
	assert.ErrorContains(t, err, "--depth")

	_, err = execute(t, "-o", out)
	assert.ErrorContains(t, err, "input")

	_, err = execute(t, "-i", filepath.Join(dir, "missing.png"), "-o", out)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, alias := range spatial.Aliases() {
		assert.Contains(t, out, alias)
	}
	assert.Contains(t, out, "maximum    maximum, max")
}

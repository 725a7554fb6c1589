package cmd

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/pion/yuv2bgra/pkg/convert/base"
)

// writeI420 writes frames of random I420 content and returns the raw bytes.
func writeI420(t *testing.T, path string, width, height, frames int) []byte {
	t.Helper()
	raw := make([]byte, frames*width*height*3/2)
	rand.New(rand.NewSource(7)).Read(raw)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return raw
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot(context.Background(), "deadbeef")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef\n", out)
}

func TestConvertRaw(t *testing.T) {
	const (
		width  = 34
		height = 6
	)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yuv")
	raw := writeI420(t, in, width, height, 2)
	out := filepath.Join(dir, "out.bgra")

	_, err := run(t, "convert", "--in", in, "--out", out, "--width", "34", "--height", "6", "--alpha", "7")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	frameSize := width * height * 3 / 2
	expected := make([]byte, 0, 2*4*width*height)
	for i := 0; i < 2; i++ {
		f := raw[i*frameSize:]
		y, u, v := f[:width*height], f[width*height:width*height*5/4], f[width*height*5/4:frameSize]
		bgra := make([]byte, 4*width*height)
		base.YUV420pToBGRA(y, width, u, width/2, v, width/2, width, height, bgra, 4*width, 7)
		expected = append(expected, bgra...)
	}
	assert.Equal(t, expected, got)
}

func TestConvertImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yuv")
	writeI420(t, in, 32, 4, 3)

	cases := map[string]func(*os.File) (image.Image, error){
		"out.png": func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.bmp": func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
	}
	for name, decode := range cases {
		name, decode := name, decode
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			_, err := run(t, "convert", in, "-o", out, "--width", "32", "--height", "4", "--frame", "2")
			require.NoError(t, err)

			f, err := os.Open(out)
			require.NoError(t, err)
			defer f.Close()
			img, err := decode(f)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 32, 4), img.Bounds())
		})
	}

	_, err := run(t, "convert", in, "-o", filepath.Join(dir, "missing.png"), "--width", "32", "--height", "4", "--frame", "3")
	assert.ErrorContains(t, err, "not found")
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yuv")
	writeI420(t, in, 32, 4, 1)
	out := filepath.Join(dir, "out.bgra")

	_, err := run(t, "convert", "--out", out)
	assert.Error(t, err)

	_, err = run(t, "convert", in, "--out", out, "--width", "32", "--height", "4", "--format", "YUY2")
	assert.Error(t, err)

	// 32x4 I420 is 192 bytes, so a 33x4 I444 frame is truncated.
	_, err = run(t, "convert", in, "--out", out, "--width", "33", "--height", "4", "--format", "i444")
	assert.ErrorContains(t, err, "truncated")

	_, err = run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestVerifyRandom(t *testing.T) {
	for _, format := range []string{"I420", "I444"} {
		out, err := run(t, "verify", "--format", format, "--width", "50", "--height", "6", "--frames", "3", "--seed", "3")
		require.NoError(t, err, out)
		assert.Equal(t, 3, strings.Count(out, " ok\n"), out)
		assert.NotContains(t, out, "MISMATCH")
	}
}

func TestVerifyColorBars(t *testing.T) {
	out, err := run(t, "verify", "--source", "bars", "--width", "64", "--height", "8", "--frames", "2")
	require.NoError(t, err, out)
	assert.Equal(t, 2, strings.Count(out, " ok\n"), out)

	_, err = run(t, "verify", "--source", "webcam")
	assert.ErrorContains(t, err, "unknown frame source")
}

func TestVerifyFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yuv")
	writeI420(t, in, 48, 8, 2)

	out, err := run(t, "verify", "-i", in, "--width", "48", "--height", "8")
	require.NoError(t, err, out)
	assert.Equal(t, 2, strings.Count(out, " ok\n"), out)

	_, err = run(t, "verify", "-i", in, "--width", "16", "--height", "8", "--format", "NV12")
	assert.ErrorContains(t, err, "at least")
}

package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeWebPReencodesPNG(t *testing.T) {
	data := pngBytes(t, 64, 48)

	out, err := EncodeWebP(data, DefaultWebPOptions())
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestEncodeWebPDownscalesToBounds(t *testing.T) {
	data := pngBytes(t, 400, 200)

	out, err := EncodeWebP(data, WebPOptions{MaxW: 100, MaxH: 100, Quality: 80})
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 100)
	assert.LessOrEqual(t, img.Bounds().Dy(), 100)
	// Aspect ratio survives the fit.
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestEncodeWebPRejectsNonImage(t *testing.T) {
	_, err := EncodeWebP([]byte("%PDF-1.4 not an image"), DefaultWebPOptions())
	assert.Error(t, err)
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, IsImageContentType("image/png"))
	assert.True(t, IsImageContentType(" IMAGE/JPEG "))
	assert.False(t, IsImageContentType("application/pdf"))
	assert.False(t, IsImageContentType(""))
}

func TestWebPFilename(t *testing.T) {
	assert.Equal(t, "logo.webp", WebPFilename("logo.png"))
	assert.Equal(t, "team.photo.webp", WebPFilename("team.photo.jpeg"))
	assert.Equal(t, "noext.webp", WebPFilename("noext"))
}

package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Image uploads get re-encoded to bounded WebP before they hit the bucket;
// marketing pages should never serve a 12MB camera original.

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}
}

func IsImageContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "image/")
}

func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(data))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported image type %q", ct)
	}
}

// EncodeWebP decodes jpeg/png/webp input, downscales to fit the bounds
// keeping aspect ratio, and re-encodes lossy WebP.
func EncodeWebP(data []byte, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	if opt.MaxW <= 0 {
		opt.MaxW = 1600
	}
	if opt.MaxH <= 0 {
		opt.MaxH = 1600
	}
	if opt.Quality <= 0 || opt.Quality > 100 {
		opt.Quality = 80
	}

	b := img.Bounds()
	if b.Dx() > opt.MaxW || b.Dy() > opt.MaxH {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// WebPFilename swaps the extension so the object key matches the stored
// encoding.
func WebPFilename(original string) string {
	ext := filepath.Ext(original)
	return strings.TrimSuffix(original, ext) + ".webp"
}

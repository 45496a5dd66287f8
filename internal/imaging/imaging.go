// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging produces resized JPEG previews of stored images for the
// media preview endpoint. Source images decode from JPEG, PNG, GIF, or
// WebP; output is always JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// maxImagePixels guards against decompression bombs.
	maxImagePixels = 50_000_000

	// MaxDimension caps a requested preview edge.
	MaxDimension = 2048

	// DefaultQuality is the JPEG quality used when the request doesn't
	// specify one.
	DefaultQuality = 80
)

// Resize scales an image to fit within width x height, preserving aspect
// ratio, and encodes it as JPEG at the given quality. A zero width or
// height leaves that axis unconstrained. If the image already fits, it is
// re-encoded without scaling.
func Resize(src io.ReadSeeker, width, height, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if width > MaxDimension {
		width = MaxDimension
	}
	if height > MaxDimension {
		height = MaxDimension
	}

	// Decode config first to check dimensions without full decode.
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxImagePixels)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	newWidth, newHeight := fit(cfg.Width, cfg.Height, width, height)
	if newWidth != cfg.Width || newHeight != cfg.Height {
		dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// fit returns the largest dimensions within maxW x maxH that preserve the
// source aspect ratio, never upscaling. Zero constraints are ignored.
func fit(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if s := float64(maxH) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return w, h
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return newW, newH
}

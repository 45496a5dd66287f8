// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a solid-color image of the given size.
func testPNG(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestResizeDownscales(t *testing.T) {
	out, err := Resize(testPNG(t, 800, 400), 200, 0, 80)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 200 || h != 100 {
		t.Errorf("size = %dx%d, want 200x100", w, h)
	}
}

func TestResizeHonorsBothConstraints(t *testing.T) {
	// Height is the tighter constraint here.
	out, err := Resize(testPNG(t, 800, 400), 600, 100, 80)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 200 || h != 100 {
		t.Errorf("size = %dx%d, want 200x100", w, h)
	}
}

func TestResizeNeverUpscales(t *testing.T) {
	out, err := Resize(testPNG(t, 100, 50), 400, 400, 80)
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 100 || h != 50 {
		t.Errorf("size = %dx%d, want the original 100x50", w, h)
	}
}

func TestResizeRejectsGarbage(t *testing.T) {
	if _, err := Resize(bytes.NewReader([]byte("not an image")), 100, 100, 80); err == nil {
		t.Error("expected error for undecodable input")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		maxW, maxH     int
		wantW, wantH   int
	}{
		{"no constraints", 800, 600, 0, 0, 800, 600},
		{"width only", 800, 600, 400, 0, 400, 300},
		{"height only", 800, 600, 0, 300, 400, 300},
		{"already fits", 200, 100, 400, 400, 200, 100},
		{"tiny result floors at 1", 1000, 2, 10, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := fit(tt.w, tt.h, tt.maxW, tt.maxH)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("fit = %dx%d, want %dx%d", gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

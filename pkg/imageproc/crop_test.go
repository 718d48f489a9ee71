package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func decodeResult(t *testing.T, dataURL string) image.Image {
	t.Helper()
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Fatalf("result is not a jpeg data URI: %.40s", dataURL)
	}
	img, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return img
}

func TestCroppedDataURL_SmallCropKeepsDimensions(t *testing.T) {
	src := pngBytes(t, 1200, 800)

	got, err := CroppedDataURL(src, CropRect{X: 100, Y: 50, Width: 500, Height: 400}, 0, Flip{})
	if err != nil {
		t.Fatalf("CroppedDataURL: %v", err)
	}

	img := decodeResult(t, got)
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 400 {
		t.Errorf("dimensions = %dx%d, want 500x400", b.Dx(), b.Dy())
	}
}

func TestCroppedDataURL_DownscalesToCap(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		crop         CropRect
		wantW, wantH int
	}{
		{"wide over cap", 2000, 1000, CropRect{Width: 2000, Height: 1000}, 960, 480},
		{"tall over cap", 1000, 2000, CropRect{Width: 1000, Height: 2000}, 480, 960},
		{"exactly at cap", 960, 960, CropRect{Width: 960, Height: 960}, 960, 960},
		{"under cap untouched", 800, 600, CropRect{Width: 800, Height: 600}, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := pngBytes(t, tt.srcW, tt.srcH)
			got, err := CroppedDataURL(src, tt.crop, 0, Flip{})
			if err != nil {
				t.Fatalf("CroppedDataURL: %v", err)
			}
			img := decodeResult(t, got)
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensions = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCroppedDataURL_RotationSwapsAxes(t *testing.T) {
	src := pngBytes(t, 800, 400)

	// After a 90° rotation the bounding box is 400x800; crop it whole.
	got, err := CroppedDataURL(src, CropRect{Width: 400, Height: 800}, 90, Flip{})
	if err != nil {
		t.Fatalf("CroppedDataURL: %v", err)
	}
	img := decodeResult(t, got)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 800 {
		t.Errorf("dimensions = %dx%d, want 400x800", b.Dx(), b.Dy())
	}
}

func TestCroppedDataURL_Failures(t *testing.T) {
	src := pngBytes(t, 100, 100)

	if _, err := CroppedDataURL([]byte("not an image"), CropRect{Width: 10, Height: 10}, 0, Flip{}); err == nil {
		t.Error("malformed source must fail, not crash")
	}
	if _, err := CroppedDataURL(src, CropRect{Width: 0, Height: 10}, 0, Flip{}); err == nil {
		t.Error("empty crop must fail")
	}
	if _, err := CroppedDataURL(src, CropRect{X: 500, Y: 500, Width: 10, Height: 10}, 0, Flip{}); err == nil {
		t.Error("crop outside the image must fail")
	}
}

func TestRawFromDataURL(t *testing.T) {
	if _, err := RawFromDataURL("https://example.com/photo.jpg"); err == nil {
		t.Error("plain URL is not a data URI")
	}
	raw, err := RawFromDataURL("data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("RawFromDataURL: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("raw = %q", raw)
	}
}

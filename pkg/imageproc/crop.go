// Package imageproc turns a user-supplied image plus an interactive
// crop/rotation selection into a compact JPEG data URI small enough to be
// stored inline in the invitation document.
package imageproc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	// MaxDimension caps either output axis so the base64 payload stays
	// well under the 1 MB document limit.
	MaxDimension = 960

	// JPEGQuality trades size for fidelity the same way the builder's
	// preview does.
	JPEGQuality = 70
)

var ErrEmptyCrop = errors.New("imageproc: crop region is empty or outside the image")

// CropRect is the requested crop rectangle in pixel coordinates of the
// rotated bounding box.
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
}

// Flip mirrors the source about its center before rotation.
type Flip struct {
	Horizontal bool `json:"horizontal"`
	Vertical   bool `json:"vertical"`
}

// CroppedDataURL renders src onto the rotated bounding box, extracts the
// crop rectangle, downscales so neither axis exceeds MaxDimension, and
// returns the result as a data:image/jpeg;base64 URI.
//
// Any failure returns an empty string and an error; callers keep the prior
// image untouched.
func CroppedDataURL(src []byte, crop CropRect, rotation float64, flip Flip) (string, error) {
	if crop.Width <= 0 || crop.Height <= 0 {
		return "", ErrEmptyCrop
	}

	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("imageproc: decode: %w", err)
	}

	if flip.Horizontal {
		img = imaging.FlipH(img)
	}
	if flip.Vertical {
		img = imaging.FlipV(img)
	}

	// The crop selection is expressed in coordinates of the rotated
	// bounding box, so rotate first. imaging rotates counter-clockwise
	// for positive angles while the selection UI reports clockwise.
	if rotation != 0 {
		img = imaging.Rotate(img, -rotation, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}

	rect := image.Rect(crop.X, crop.Y, crop.X+crop.Width, crop.Y+crop.Height)
	cropped := imaging.Crop(img, rect)
	if cropped.Bounds().Empty() {
		return "", ErrEmptyCrop
	}

	out := image.Image(cropped)
	b := cropped.Bounds()
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		out = imaging.Fit(cropped, MaxDimension, MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return "", fmt.Errorf("imageproc: encode: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL parses a data:image/...;base64 URI back into an image. Used
// when an inline payload has to be re-processed or offloaded to object
// storage.
func DecodeDataURL(dataURL string) (image.Image, error) {
	raw, err := RawFromDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imageproc: decode payload: %w", err)
	}
	return img, nil
}

// RawFromDataURL strips the data URI header and returns the decoded bytes.
func RawFromDataURL(dataURL string) ([]byte, error) {
	const marker = ";base64,"
	idx := bytes.Index([]byte(dataURL), []byte(marker))
	if idx < 0 {
		return nil, errors.New("imageproc: not a base64 data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(marker):])
	if err != nil {
		return nil, fmt.Errorf("imageproc: base64: %w", err)
	}
	return raw, nil
}

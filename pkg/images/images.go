// Package images holds the profile-photo pipeline: a base64 image comes in,
// a bounded JPEG data URI comes out.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	MaxWidth    = 200
	MaxHeight   = 200
	JPEGQuality = 85
)

// ProcessImage decodes a base64 image (with or without a data-URI header),
// scales it down so neither dimension exceeds maxWidth x maxHeight while
// preserving aspect ratio, flattens any alpha onto white, and re-encodes it
// as a JPEG data URI. Small images are not upscaled. Callers treat an error
// as "keep the existing photo".
func ProcessImage(data string, maxWidth, maxHeight, quality int) (string, error) {
	if strings.HasPrefix(data, "data:image") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data URI")
		}
		data = parts[1]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	// JPEG has no alpha channel; composite over white instead of letting the
	// encoder drop transparency to black.
	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBase64(t *testing.T, width, height int, fill color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if fill != nil {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.Set(x, y, fill)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeResult(t *testing.T, dataURI string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURI, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	img, format, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	return img
}

func TestProcessImageResizesAndKeepsAspect(t *testing.T) {
	data := "data:image/png;base64," + pngBase64(t, 400, 300, color.NRGBA{R: 200, G: 40, B: 40, A: 255})

	out, err := ProcessImage(data, MaxWidth, MaxHeight, JPEGQuality)
	require.NoError(t, err)

	img := decodeResult(t, out)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestProcessImageDoesNotUpscale(t *testing.T) {
	data := "data:image/png;base64," + pngBase64(t, 50, 40, color.NRGBA{R: 10, G: 120, B: 10, A: 255})

	out, err := ProcessImage(data, MaxWidth, MaxHeight, JPEGQuality)
	require.NoError(t, err)

	img := decodeResult(t, out)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestProcessImageAcceptsBareBase64(t *testing.T) {
	out, err := ProcessImage(pngBase64(t, 10, 10, color.White), MaxWidth, MaxHeight, JPEGQuality)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
}

func TestProcessImageFlattensTransparencyOntoWhite(t *testing.T) {
	// Fully transparent source; a naive JPEG encode would turn it black.
	data := pngBase64(t, 20, 20, nil)

	out, err := ProcessImage(data, MaxWidth, MaxHeight, JPEGQuality)
	require.NoError(t, err)

	img := decodeResult(t, out)
	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestProcessImageRejectsInvalidInput(t *testing.T) {
	_, err := ProcessImage("%%%not-base64%%%", MaxWidth, MaxHeight, JPEGQuality)
	assert.Error(t, err)

	notAnImage := base64.StdEncoding.EncodeToString([]byte("plain text"))
	_, err = ProcessImage(notAnImage, MaxWidth, MaxHeight, JPEGQuality)
	assert.Error(t, err)

	_, err = ProcessImage("data:image/png;base64", MaxWidth, MaxHeight, JPEGQuality)
	assert.Error(t, err)
}

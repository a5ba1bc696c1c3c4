package devserver

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	zxqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCodeID = "0192f1a0-7c1e-7d43-9a10-3b6a3f1c2d4e"

func decodeCodeImage(t *testing.T, encoded string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestRenderCode_DecodesAsPNG(t *testing.T) {
	encoded, err := RenderCode(sampleCodeID)
	require.NoError(t, err)

	img := decodeCodeImage(t, encoded)
	assert.Equal(t, CodeImageSize, img.Bounds().Dx())
	assert.Equal(t, CodeImageSize, img.Bounds().Dy())
}

func TestRenderCode_ScansBackToCodeID(t *testing.T) {
	encoded, err := RenderCode(sampleCodeID)
	require.NoError(t, err)

	bmp, err := gozxing.NewBinaryBitmapFromImage(decodeCodeImage(t, encoded))
	require.NoError(t, err)

	result, err := zxqr.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleCodeID, result.GetText())
}

func TestRenderCode_Deterministic(t *testing.T) {
	a, err := RenderCode("code-a")
	require.NoError(t, err)
	again, err := RenderCode("code-a")
	require.NoError(t, err)
	b, err := RenderCode("code-b")
	require.NoError(t, err)

	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
}

func TestRenderCode_EmptyID(t *testing.T) {
	_, err := RenderCode("")
	assert.ErrorIs(t, err, ErrInvalidItem)
}

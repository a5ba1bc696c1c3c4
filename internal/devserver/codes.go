package devserver

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// CodeImageSize is the side of a rendered code image in pixels.
const CodeImageSize = 300

// RenderCode encodes codeID as a QR code and returns the PNG image
// base64-encoded. Equal ids always produce equal images.
func RenderCode(codeID string) (string, error) {
	if codeID == "" {
		return "", fmt.Errorf("%w: empty code id", ErrInvalidItem)
	}

	png, err := qrcode.Encode(codeID, qrcode.Medium, CodeImageSize)
	if err != nil {
		return "", fmt.Errorf("encode code image: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

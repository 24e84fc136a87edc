package qrcode

import (
	"encoding/base64"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 256

// EmergencyURL builds the public break-glass URL for a username,
// e.g. https://emergency.crisislink.cv/alice.
func EmergencyURL(domain, username string) string {
	return fmt.Sprintf("https://%s/%s", domain, username)
}

// GenerateDataURL encodes the emergency URL as a PNG QR code and returns it
// as an in-band data URL. High error correction so a damaged sticker or
// bracelet still scans.
func GenerateDataURL(emergencyURL string) (string, error) {
	png, err := qr.Encode(emergencyURL, qr.High, imageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

package qrcode

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmergencyURL(t *testing.T) {
	url := EmergencyURL("emergency.crisislink.cv", "joao-silva")
	assert.Equal(t, "https://emergency.crisislink.cv/joao-silva", url)
}

func TestGenerateDataURL(t *testing.T) {
	dataURL, err := GenerateDataURL("https://emergency.crisislink.cv/joao-silva")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	// Payload must be valid base64 holding a PNG
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), raw[:4])
}

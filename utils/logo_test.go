package utils

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURI(mediaType string, size int) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", size)))
}

func TestValidateLogoURL_Accepted(t *testing.T) {
	tests := []struct {
		name string
		logo string
	}{
		{"small png data uri", dataURI("image/png", 64)},
		{"svg data uri", dataURI("image/svg+xml", 64)},
		{"object path", "/objects/uploads/3f1c2a9e-logo"},
		{"https url", "https://cdn.example.com/partners/royal-canin.png"},
		{"http url", "http://localhost:8080/public-objects/logos/purina.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateLogoURL(tt.logo))
		})
	}
}

func TestValidateLogoURL_Rejected(t *testing.T) {
	tests := []struct {
		name string
		logo string
		code string
	}{
		{"empty", "   ", "EMPTY_LOGO"},
		{"non image data uri", dataURI("text/html", 16), "INVALID_FILE_FORMAT"},
		{"not base64 encoded", "data:image/png,rawbytes", "INVALID_DATA_URI"},
		{"missing payload", "data:image/png;base64", "INVALID_DATA_URI"},
		{"corrupt base64", "data:image/png;base64,@@@@", "INVALID_DATA_URI"},
		{"too large", dataURI("image/png", MaxInlineLogoSize+1), "FILE_TOO_LARGE"},
		{"traversal object path", "/objects/../secrets", "INVALID_OBJECT_PATH"},
		{"relative path", "logos/purina.png", "INVALID_LOGO_URL"},
		{"ftp url", "ftp://example.com/logo.png", "INVALID_LOGO_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogoURL(tt.logo)
			require.Error(t, err)

			logoErr, ok := err.(*LogoError)
			require.True(t, ok, "error should be a *LogoError")
			assert.Equal(t, tt.code, logoErr.Code)
		})
	}
}

func TestValidateLogoURL_ExactlyMaxSize(t *testing.T) {
	assert.NoError(t, ValidateLogoURL(dataURI("image/png", MaxInlineLogoSize)))
}

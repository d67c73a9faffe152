package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

const (
	// MaxInlineLogoSize is the largest decoded data URI accepted as a partner logo
	MaxInlineLogoSize = 512 * 1024
	// ObjectPathPrefix prefixes every path served from private object storage
	ObjectPathPrefix = "/objects/"
)

// AllowedLogoTypes are the image media types accepted for inline logos
var AllowedLogoTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/webp":    true,
	"image/svg+xml": true,
	"image/gif":     true,
}

// LogoError describes why a logo reference was rejected
type LogoError struct {
	Code    string
	Message string
}

func (e *LogoError) Error() string {
	return e.Message
}

// ValidateLogoURL accepts a small base64 image data URI, an "/objects/..." path or an http(s) URL
func ValidateLogoURL(raw string) error {
	value := strings.TrimSpace(raw)
	switch {
	case value == "":
		return &LogoError{Code: "EMPTY_LOGO", Message: "logo reference is empty"}
	case strings.HasPrefix(value, "data:"):
		return validateDataURI(value)
	case strings.HasPrefix(value, ObjectPathPrefix):
		if _, err := CleanObjectPath(value); err != nil {
			return &LogoError{Code: "INVALID_OBJECT_PATH", Message: err.Error()}
		}
		return nil
	default:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &LogoError{Code: "INVALID_LOGO_URL", Message: "logo must be an image data URI, an /objects/ path or an http(s) URL"}
		}
		return nil
	}
}

func validateDataURI(value string) error {
	header, payload, found := strings.Cut(strings.TrimPrefix(value, "data:"), ",")
	if !found {
		return &LogoError{Code: "INVALID_DATA_URI", Message: "data URI has no payload"}
	}

	params := strings.Split(header, ";")
	mediaType := strings.ToLower(params[0])
	if !AllowedLogoTypes[mediaType] {
		return &LogoError{Code: "INVALID_FILE_FORMAT", Message: fmt.Sprintf("logo type %q is not an accepted image type", mediaType)}
	}
	if params[len(params)-1] != "base64" {
		return &LogoError{Code: "INVALID_DATA_URI", Message: "data URI must be base64 encoded"}
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxInlineLogoSize+2 {
		return &LogoError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("inline logo exceeds the maximum size of %d KB", MaxInlineLogoSize/1024),
		}
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return &LogoError{Code: "INVALID_DATA_URI", Message: "data URI payload is not valid base64"}
	}
	if len(decoded) > MaxInlineLogoSize {
		return &LogoError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("inline logo exceeds the maximum size of %d KB", MaxInlineLogoSize/1024),
		}
	}
	return nil
}

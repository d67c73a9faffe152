package utils

import (
	"errors"
	"net/url"
	"path"
	"strings"
)

// ErrInvalidObjectPath is returned for object references that cannot be served
var ErrInvalidObjectPath = errors.New("invalid object path")

// CleanObjectPath validates an "/objects/<entity>" path and returns it unchanged.
// Traversal segments and empty entity ids are rejected.
func CleanObjectPath(objectPath string) (string, error) {
	if !strings.HasPrefix(objectPath, ObjectPathPrefix) {
		return "", ErrInvalidObjectPath
	}
	entity := strings.TrimPrefix(objectPath, ObjectPathPrefix)
	if err := checkRelative(entity); err != nil {
		return "", err
	}
	return objectPath, nil
}

// ObjectKey maps an "/objects/<entity>" path to its bucket key under privateDir
func ObjectKey(privateDir, objectPath string) (string, error) {
	clean, err := CleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}
	return privateDir + "/" + strings.TrimPrefix(clean, ObjectPathPrefix), nil
}

// PublicKey joins a public search directory with a requested file path
func PublicKey(searchDir, filePath string) (string, error) {
	relative := strings.TrimPrefix(filePath, "/")
	if err := checkRelative(relative); err != nil {
		return "", err
	}
	return strings.Trim(searchDir, "/") + "/" + relative, nil
}

// NormalizeObjectURL turns a storage URL for an uploaded object into its servable "/objects/..." path.
// Both virtual-hosted ("https://<bucket>.s3...amazonaws.com/<key>") and path-style
// ("https://<endpoint>/<bucket>/<key>") URLs are accepted, with or without a presign query.
// Values that are already "/objects/..." paths are validated and returned as is.
func NormalizeObjectURL(raw, bucket, privateDir string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, ObjectPathPrefix) {
		return CleanObjectPath(raw)
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidObjectPath
	}

	var key string
	switch {
	case strings.HasPrefix(u.Host, bucket+"."):
		key = strings.TrimPrefix(u.Path, "/")
	case strings.HasPrefix(u.Path, "/"+bucket+"/"):
		key = strings.TrimPrefix(u.Path, "/"+bucket+"/")
	default:
		return "", ErrInvalidObjectPath
	}

	prefix := strings.Trim(privateDir, "/") + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", ErrInvalidObjectPath
	}
	return CleanObjectPath(ObjectPathPrefix + strings.TrimPrefix(key, prefix))
}

func checkRelative(p string) error {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return ErrInvalidObjectPath
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return ErrInvalidObjectPath
		}
	}
	if path.Clean(p) != p {
		return ErrInvalidObjectPath
	}
	return nil
}

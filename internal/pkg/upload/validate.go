package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// Invoice uploads are photos or scans; the same whitelist covers both.
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// ValidateInvoiceImage checks the filename extension and the first bytes
// of an uploaded invoice against the image whitelist. Returns the detected
// mime type or an error.
func ValidateInvoiceImage(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", errors.New("Only JPG, JPEG, PNG, WEBP and HEIC images are supported")
	}

	detected := http.DetectContentType(head)

	// Block scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("Invalid file type: HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML files are not supported")
	}

	// HEIC sniffs as octet-stream depending on Go version; allow by extension
	if detected == "application/octet-stream" && ext == ".heic" {
		return "image/heic", nil
	}

	if !strings.HasPrefix(detected, "image/") {
		return "", errors.New("Uploaded file is not an image")
	}

	return detected, nil
}

package storage

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// MIMEOctetStream is the fallback content type when detection fails.
const MIMEOctetStream = "application/octet-stream"

// mimeDetectionBytes is the amount http.DetectContentType inspects.
const mimeDetectionBytes = 512

// imageTypes contains the image MIME types treated as inline attachments.
var imageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
	"image/bmp":     {},
	"image/tiff":    {},
	"image/x-icon":  {},
	"image/heic":    {},
	"image/heif":    {},
	"image/avif":    {},
}

// DetectMIME returns the content type of a file from its magic bytes, with
// the filename extension as fallback when sniffing yields nothing specific.
func DetectMIME(content []byte, filename string) string {
	sample := content
	if len(sample) > mimeDetectionBytes {
		sample = sample[:mimeDetectionBytes]
	}

	detected := MIMEOctetStream
	if len(sample) > 0 {
		detected = http.DetectContentType(sample)
	}

	// Sniffing only recognizes a fixed set of signatures; fall back to the
	// extension for everything it reports as generic.
	if normalizeMIME(detected) == MIMEOctetStream || strings.HasPrefix(detected, "text/plain") {
		if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
			return byExt
		}
	}

	return detected
}

// IsImageMIME reports whether the content type is a recognized image type.
func IsImageMIME(mimeType string) bool {
	_, ok := imageTypes[normalizeMIME(mimeType)]
	return ok
}

// normalizeMIME extracts the base MIME type, removing parameters like
// charset. Returns the lowercase MIME type.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

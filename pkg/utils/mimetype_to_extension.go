package utils

import "strings"

// mimeTypeToExtension maps the MIME types the feedback API accepts to their
// typical file extensions.
var mimeTypeToExtension = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/heic":      ".heic",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"video/mpeg":      ".mpeg",
	"video/ogg":       ".ogv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/png; charset=utf-8")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}

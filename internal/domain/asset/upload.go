package asset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brandvault/brandvault/internal/shared/errors"
)

// MaxFileSize is the upload ceiling in bytes.
const MaxFileSize int64 = 10 * 1024 * 1024

const (
	MIMEJPEG       = "image/jpeg"
	MIMEPNG        = "image/png"
	MIMESVG        = "image/svg+xml"
	MIMEWebP       = "image/webp"
	MIMEPDF        = "application/pdf"
	MIMEPostScript = "application/postscript"
)

var allowedMIMETypes = map[string]bool{
	MIMEJPEG:       true,
	MIMEPNG:        true,
	MIMESVG:        true,
	MIMEWebP:       true,
	MIMEPDF:        true,
	MIMEPostScript: true,
}

func IsAllowedMIMEType(contentType string) bool {
	return allowedMIMETypes[contentType]
}

// ValidateUpload enforces the MIME whitelist and size ceiling.
func ValidateUpload(contentType string, size int64) error {
	if !IsAllowedMIMEType(contentType) {
		return errors.NewValidationError("Invalid file type. Supported: JPG, PNG, SVG, WEBP, PDF, AI", contentType)
	}
	if size <= 0 {
		return errors.NewValidationError("File is empty")
	}
	if size > MaxFileSize {
		return errors.NewValidationError("File size must be less than 10MB")
	}
	return nil
}

// ParseTags splits a comma-delimited list, trimming entries and dropping blanks.
// Order is preserved.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-] with '_'.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// StorageKey builds "{companyId}/{category}/{unixMillis}-{sanitizedName}".
func StorageKey(companyID string, category Category, at time.Time, originalName string) string {
	return fmt.Sprintf("%s/%s/%d-%s", companyID, category.Slug(), at.UnixMilli(), SanitizeFilename(originalName))
}

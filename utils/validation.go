// utils/validation.go
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// SKU format: uppercase alphanumeric with dash separators, e.g. CAM-BAS-001
var skuRegexp = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{0,49}$`)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// NormalizeSKU trims and uppercases a SKU before validation and storage.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// ValidateSKU checks a normalized SKU against the allowed format.
func ValidateSKU(sku string) bool {
	return skuRegexp.MatchString(sku)
}

// SanitizeFilename strips path components and replaces characters that are
// unsafe in a stored file name.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxIDLength is the longest identifier accepted by [ValidateID].
const MaxIDLength = 128

// idRegex matches manifest identifiers: a letter, digit or underscore
// followed by letters, digits and the separators _ . : -
var idRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.:-]*$`)

// ValidateID validates an identifier used to reference nodes, edges and
// scopes inside a manifest.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidManifest, "id cannot be empty")
	}
	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidManifest, "id too long (max %d characters)", MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidManifest, "invalid id: %q", id)
	}
	return nil
}

// ValidateAttributeKey validates an attribute name. Keys are written to DOT
// output unquoted, so anything but a bare word would corrupt the document.
// Whether the name is known to Graphviz is not checked.
func ValidateAttributeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidManifest, "attribute name cannot be empty")
	}
	for _, r := range key {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidManifest, "invalid attribute name: %q", key)
		}
	}
	return nil
}

// ValidateAttributeValue rejects values that cannot be written between
// double quotes without escaping.
func ValidateAttributeValue(key, value string) error {
	if strings.Contains(value, `"`) {
		return New(ErrCodeInvalidManifest, "attribute %s: value cannot contain double quotes", key)
	}
	for _, r := range value {
		if r == '\x00' {
			return New(ErrCodeInvalidManifest, "attribute %s: value contains a null byte", key)
		}
	}
	return nil
}

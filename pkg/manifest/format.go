package manifest

import (
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/graphwiz/pkg/errors"
)

// Format is a manifest serialization.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = []Format{FormatTOML, FormatJSON, FormatYAML}

// Formats returns all supported manifest formats.
func Formats() []Format {
	return slices.Clone(formats)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "%s: unknown manifest extension (want .toml, .json, .yaml or .yml)", path)
}

// FormatFromContentType picks the format from an HTTP Content-Type header.
func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnsupported, err, "invalid content type %q", contentType)
	}
	switch mediaType {
	case "application/toml", "text/toml", "application/x-toml":
		return FormatTOML, nil
	case "application/json", "text/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported content type %q", mediaType)
}

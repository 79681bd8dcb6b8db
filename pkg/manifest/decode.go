package manifest

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/observability"
)

// Decode reads a manifest in the given format from r. Unknown keys are
// rejected so that typos do not silently drop attributes. Decode does not
// check references; see [Manifest.Build].
func Decode(r io.Reader, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown keys: %s", strings.Join(keys, ", "))
		}

	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode JSON")
		}
		var trailing any
		if err := dec.Decode(&trailing); err != io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "decode JSON: trailing data")
		}

	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode YAML")
		}

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown manifest format %q", format)
	}
	return &m, nil
}

// ReadFile decodes the manifest at path, choosing the format by extension.
func ReadFile(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load decodes a manifest and builds it, reporting the outcome to the
// observability pipeline hooks under the name source.
func Load(ctx context.Context, source string, r io.Reader, format Format) (*Manifest, *Built, error) {
	start := time.Now()
	m, err := Decode(r, format)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, nil, err
	}
	return build(ctx, source, start, m)
}

// LoadFile is [Load] for a file, choosing the format by extension.
func LoadFile(ctx context.Context, path string) (*Manifest, *Built, error) {
	start := time.Now()
	m, err := ReadFile(path)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, nil, err
	}
	return build(ctx, path, start, m)
}

func build(ctx context.Context, source string, start time.Time, m *Manifest) (*Manifest, *Built, error) {
	b, err := m.Build()
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, source, 0, time.Since(start), err)
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}
	observability.Pipeline().OnLoadComplete(ctx, source, b.Count(), time.Since(start), nil)
	return m, b, nil
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the hex SHA-256 of data, used to key layouts by their DOT
// source.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// layoutKey formats "layout:<engine>:<format>[+responsive]:<dotHash>".
// Redis keys stay readable; FileCache hashes them again for file names.
func layoutKey(dotHash string, opts LayoutKeyOpts) string {
	format := opts.Format
	if opts.Responsive {
		format += "+responsive"
	}
	return strings.Join([]string{"layout", opts.Engine, format, dotHash}, ":")
}

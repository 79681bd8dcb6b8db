package cache

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key of a rendered layout of the DOT source with
	// the given hash.
	LayoutKey(dotHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts holds everything besides the DOT source that changes the
// rendered bytes.
type LayoutKeyOpts struct {
	Engine string
	Format string
	// Responsive marks SVG output whose fixed size was replaced by a viewBox.
	Responsive bool
}

// DefaultKeyer produces unprefixed keys of the form
// "layout:<engine>:<format>:<sha256 of the DOT source>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(dotHash string, opts LayoutKeyOpts) string {
	return layoutKey(dotHash, opts)
}

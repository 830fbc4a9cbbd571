package cache

// ScopedKeyer wraps a Keyer with a prefix so separate namespaces never
// collide. The CLI scopes keys by build version, so upgrading the binary
// invalidates artifacts drawn by older code.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(figure string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(figure, opts)
}

// PackingKey generates a prefixed packing key.
func (k *ScopedKeyer) PackingKey(opts PackingKeyOpts) string {
	return k.prefix + k.inner.PackingKey(opts)
}

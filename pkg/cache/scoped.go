package cache

// ScopedKeyer wraps a Keyer with a prefix so that separate namespaces never
// share entries. The CLI scopes keys by release version, so a new release
// never reads placements written by an older layout engine.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
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

// PlacementKey generates a prefixed placement key.
func (k *ScopedKeyer) PlacementKey(netlistHash string, opts PlacementKeyOpts) string {
	return k.prefix + k.inner.PlacementKey(netlistHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(placementHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(placementHash, opts)
}

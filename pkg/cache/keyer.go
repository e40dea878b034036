package cache

// PlacementKeyOpts holds the layout options that change a placement.
type PlacementKeyOpts struct {
	Scale  float64 `json:"scale"`
	Strict bool    `json:"strict,omitempty"`
}

// ArtifactKeyOpts holds the render options that change an artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Engine      string  `json:"engine,omitempty"`
	DrawLabels  bool    `json:"draw_labels"`
	DrawNodes   bool    `json:"draw_nodes"`
	LabelNodes  bool    `json:"label_nodes"`
	PictureArgs string  `json:"picture_args,omitempty"`
	PNGScale    float64 `json:"png_scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PlacementKey returns the key of the placement of a netlist, given the
	// hash of its text.
	PlacementKey(netlistHash string, opts PlacementKeyOpts) string

	// ArtifactKey returns the key of a rendered artifact, given the hash of
	// the serialized placement it was drawn from.
	ArtifactKey(placementHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlacementKey implements Keyer.
func (DefaultKeyer) PlacementKey(netlistHash string, opts PlacementKeyOpts) string {
	return hashKey("placement", netlistHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(placementHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", placementHash, opts)
}

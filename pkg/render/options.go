package render

import "fmt"

// Output formats.
const (
	FormatTikZ = "tikz"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// SVG engines.
const (
	EngineNative   = "native"   // pkg/render/svg
	EngineGraphviz = "graphviz" // pkg/render/dot through go-graphviz
)

// ValidateEngine checks that engine names a known SVG engine.
func ValidateEngine(engine string) error {
	if engine != EngineNative && engine != EngineGraphviz {
		return fmt.Errorf("unknown svg engine %q (valid: native, graphviz)", engine)
	}
	return nil
}

// Formats lists every output format in the order shown to users.
var Formats = []string{FormatTikZ, FormatSVG, FormatDOT, FormatPDF, FormatPNG}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (valid: tikz, svg, dot, pdf, png)", format)
}

// Options configures what a renderer draws besides the element symbols.
type Options struct {
	// DrawLabels adds each element's automatic label unless it has an
	// explicit l, l^ or l_ option.
	DrawLabels bool

	// DrawNodes marks primary nodes with a filled dot. Port nodes are
	// always drawn as open circles.
	DrawNodes bool

	// LabelNodes writes the name of every primary node next to it.
	LabelNodes bool

	// PictureArgs is passed verbatim to the tikzpicture environment.
	PictureArgs string
}

// DefaultOptions returns options with labels, node markers and node names on.
func DefaultOptions() Options {
	return Options{DrawLabels: true, DrawNodes: true, LabelNodes: true}
}

// NodeMarkers returns the circuitikz terminal markers for an element whose
// terminals have the given flags: "o" for ports, "*" for primary nodes when
// drawNodes is set, nothing otherwise. The pair is joined with '-' and the
// result is empty when neither end is marked.
func NodeMarkers(port1, primary1, port2, primary2, drawNodes bool) string {
	marker := func(port, primary bool) string {
		switch {
		case port:
			return "o"
		case drawNodes && primary:
			return "*"
		}
		return ""
	}
	s := marker(port1, primary1) + "-" + marker(port2, primary2)
	if s == "-" {
		return ""
	}
	return s
}

package netlist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSize is the minimum element size when none is given.
const DefaultSize = 1.0

// AnnotationKeys are the recognized label, current and voltage options, in
// the order renderers emit them. The suffix selects the anchor side and
// arrow orientation.
var AnnotationKeys = []string{
	"i", "i_", "i^", "i_>", "i_<", "i^>", "i^<",
	"i>_", "i<_", "i>^", "i<^",
	"v", "v_", "v^", "v_>", "v_<", "v^>", "v^<",
	"l", "l^", "l_",
}

var annotationSet = func() map[string]bool {
	m := make(map[string]bool, len(AnnotationKeys))
	for _, k := range AnnotationKeys {
		m[k] = true
	}
	return m
}()

// IsAnnotationKey reports whether key is one of [AnnotationKeys].
func IsAnnotationKey(key string) bool { return annotationSet[key] }

// Options is the parsed option list of one element.
type Options struct {
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty" validate:"required"`
	Size      float64   `json:"size" yaml:"size" validate:"gt=0"`

	// Annotations holds label, current and voltage options keyed by one
	// of AnnotationKeys.
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	// Extra holds every other key=value hint, passed through to renderers.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Label returns the explicit label annotation, if any, and its key.
func (o Options) Label() (key, value string, ok bool) {
	for _, k := range []string{"l", "l^", "l_"} {
		if v, found := o.Annotations[k]; found {
			return k, v, true
		}
	}
	return "", "", false
}

// ParseOptions parses the text after ';' on a netlist line.
//
// Parts are separated by commas. "up", "down", "left" and "right" set the
// direction; "size=<number>" sets the minimum size; annotation keys go to
// Annotations; everything else goes to Extra. A key without '=' is stored
// with an empty value.
func ParseOptions(s string) (Options, error) {
	opts := Options{Size: DefaultSize}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if dir, ok := ParseDirection(part); ok {
			opts.Direction = dir
			continue
		}

		key, arg, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		arg = strings.TrimSpace(arg)

		switch {
		case key == "size":
			size, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return Options{}, fmt.Errorf("invalid size %q", arg)
			}
			if math.IsInf(size, 0) || math.IsNaN(size) {
				return Options{}, fmt.Errorf("size must be finite, got %q", arg)
			}
			if size <= 0 {
				return Options{}, fmt.Errorf("size must be positive, got %v", size)
			}
			opts.Size = size
		case IsAnnotationKey(key):
			if opts.Annotations == nil {
				opts.Annotations = make(map[string]string)
			}
			opts.Annotations[key] = arg
		default:
			if opts.Extra == nil {
				opts.Extra = make(map[string]string)
			}
			opts.Extra[key] = arg
		}
	}
	return opts, nil
}

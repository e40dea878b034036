package cli

import (
	"reflect"
	"testing"

	"github.com/matzehuels/schematic/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty keeps config", "", nil},
		{"single format", "tikz", []string{"tikz"}},
		{"multiple formats", "tikz,svg,png", []string{"tikz", "svg", "png"}},
		{"spaces and empties", " svg, ,dot ", []string{"svg", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid tikz", []string{"tikz"}, false},
		{"valid all", []string{"tikz", "svg", "dot", "pdf", "png"}, false},
		{"json is a layout format", []string{"json"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "amp.sch", "amp"},
		{"", "dir/amp.layout.json", "dir/amp"},
		{"out/fig.svg", "amp.sch", "out/fig"},
		{"", "-", "schematic"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	got := outputPaths([]string{"tikz"}, "amp.sch", "fig.txt")
	if got["tikz"] != "fig.txt" {
		t.Errorf("single format should use output verbatim, got %v", got)
	}

	got = outputPaths([]string{"tikz", "svg"}, "amp.sch", "")
	want := map[string]string{"tikz": "amp.tex", "svg": "amp.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("outputPaths = %v, want %v", got, want)
	}
}

func TestIsPlacementFile(t *testing.T) {
	for path, want := range map[string]bool{
		"amp.layout.json": true,
		"amp.yaml":        true,
		"amp.YML":         true,
		"amp.sch":         false,
		"amp":             false,
		"-":               false,
	} {
		if got := isPlacementFile(path); got != want {
			t.Errorf("isPlacementFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestLayoutOutputPath(t *testing.T) {
	if got := layoutOutputPath("amp.sch", ""); got != "amp.layout.json" {
		t.Errorf("got %q", got)
	}
	if got := layoutOutputPath("amp.sch", "amp.yaml"); got != "amp.yaml" {
		t.Errorf("got %q", got)
	}
	if got := layoutOutputPath("-", ""); got != "schematic.layout.json" {
		t.Errorf("got %q", got)
	}
}

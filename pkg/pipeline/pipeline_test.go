package pipeline

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/schematic/pkg/cache"
	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/observability"
	"github.com/matzehuels/schematic/pkg/render"
)

const divider = `V1 1 0; down
R1 1 2; right
C1 2 0_1; down
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "tikz"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Netlist: []byte(divider)}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.Source != "<stdin>" {
		t.Errorf("Source = %q, want <stdin>", opts.Source)
	}
	if opts.Scale != 2 {
		t.Errorf("Scale = %g, want 2", opts.Scale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("Formats = %v, want [%s]", opts.Formats, DefaultFormat)
	}
	if opts.Engine != render.EngineNative {
		t.Errorf("Engine = %q, want %q", opts.Engine, render.EngineNative)
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("PNGScale = %g, want %g", opts.PNGScale, DefaultPNGScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing netlist", Options{}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Netlist: []byte(divider), Scale: -1}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Netlist: []byte(divider), Formats: []string{"gif"}}, errors.ErrCodeInvalidInput},
		{"bad engine", Options{Netlist: []byte(divider), Engine: "cairo"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Engine: render.EngineGraphviz, PNGScale: 3, DrawNodes: true}

	if got := opts.ArtifactKeyOpts(render.FormatTikZ); got.Engine != "" || got.PNGScale != 0 {
		t.Errorf("tikz key should ignore engine and png scale: %+v", got)
	}
	if got := opts.ArtifactKeyOpts(render.FormatSVG); got.Engine != render.EngineGraphviz {
		t.Errorf("svg key engine = %q", got.Engine)
	}
	got := opts.ArtifactKeyOpts(render.FormatPNG)
	if got.Engine != render.EngineGraphviz || got.PNGScale != 3 || !got.DrawNodes {
		t.Errorf("png key = %+v", got)
	}
}

func TestParse(t *testing.T) {
	n, err := Parse(context.Background(), Options{Netlist: []byte(divider)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Len() != 3 {
		t.Errorf("elements = %d, want 3", n.Len())
	}
}

func TestParseDuplicates(t *testing.T) {
	src := []byte("R1 1 2\nR1 2 3\n")

	n, err := Parse(context.Background(), Options{Netlist: src})
	if err != nil {
		t.Fatalf("replace policy should not fail: %v", err)
	}
	if len(n.Warnings()) != 1 {
		t.Errorf("warnings = %d, want 1", len(n.Warnings()))
	}

	_, err = Parse(context.Background(), Options{Netlist: src, Strict: true})
	if !errors.Is(err, errors.ErrCodeDuplicateName) {
		t.Errorf("strict parse error = %v, want %s", err, errors.ErrCodeDuplicateName)
	}
}

func TestExecute(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, quietLogger())
	defer runner.Close()

	opts := Options{
		Source:    "divider.sch",
		Netlist:   []byte(divider),
		Formats:   []string{render.FormatTikZ, render.FormatDOT},
		DrawNodes: true,
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if first.Stats.ElementCount != 3 || first.Stats.NodeCount != 4 || first.Stats.WireCount != 1 {
		t.Errorf("stats = %+v", first.Stats)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss the cache: %+v", first.CacheInfo)
	}

	tikz := string(first.Artifacts[render.FormatTikZ])
	if got := strings.Count(tikz, `\draw (`); got != 4 {
		t.Errorf("tikz has %d element draws, want 4 (3 elements + 1 wire):\n%s", got, tikz)
	}
	if !strings.HasPrefix(string(first.Artifacts[render.FormatDOT]), "graph") {
		t.Errorf("dot output should start with graph:\n%s", first.Artifacts[render.FormatDOT])
	}

	node, ok := first.Placement.Node("2")
	if !ok || node.X != 2 || node.Y != 2 {
		t.Errorf("node 2 = %+v, want (2, 2)", node)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if !reflect.DeepEqual(first.Placement, second.Placement) {
		t.Errorf("cached placement differs:\n%+v\n%+v", first.Placement, second.Placement)
	}
	if !bytes.Equal(first.Artifacts[render.FormatTikZ], second.Artifacts[render.FormatTikZ]) {
		t.Error("cached tikz differs")
	}

	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh should bypass the cache: %+v", third.CacheInfo)
	}
}

func TestExecuteScaleChangesKey(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, quietLogger())

	opts := Options{Netlist: []byte(divider)}
	if _, err := runner.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Scale = 3
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("a different scale must not reuse the cached placement")
	}
	if result.Placement.Width != 3 {
		t.Errorf("width = %g, want 3", result.Placement.Width)
	}
}

func TestExecuteLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		netlist string
		code    errors.Code
	}{
		{
			name:    "inconsistent",
			netlist: "R1 1 2; right\nR2 2 1; right\n",
			code:    errors.ErrCodeInconsistent,
		},
		{
			name:    "malformed",
			netlist: "R1 1\n",
			code:    errors.ErrCodeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(nil, nil, quietLogger())
			result, err := runner.Execute(context.Background(), Options{Netlist: []byte(tt.netlist)})
			if err == nil {
				t.Fatal("expected error")
			}
			if result != nil {
				t.Error("failed runs must not return a result")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRenderSharesSVG(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	n, err := Parse(context.Background(), Options{Netlist: []byte(divider)})
	if err != nil {
		t.Fatal(err)
	}
	p, err := runner.Layout(context.Background(), n, Options{Netlist: []byte(divider)})
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := RenderFromPlacement(context.Background(), p, Options{
		Formats: []string{render.FormatSVG, render.FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 1 {
		t.Errorf("artifacts = %d, want 1", len(artifacts))
	}
	if !bytes.Contains(artifacts[render.FormatSVG], []byte("<svg")) {
		t.Error("svg output missing <svg element")
	}
}

func TestSortedFormats(t *testing.T) {
	got := SortedFormats(map[string][]byte{"png": nil, "tikz": nil, "dot": nil})
	want := []string{"tikz", "dot", "png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedFormats = %v, want %v", got, want)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnParseStart(context.Context, string) { h.record("parse") }
func (h *recordingHooks) OnLayoutComplete(_ context.Context, nodes int, _ time.Duration, err error) {
	if err == nil {
		h.record("layout")
	}
}
func (h *recordingHooks) OnRenderComplete(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.record("render:" + format)
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	runner := NewRunner(nil, nil, quietLogger())
	_, err := runner.Execute(context.Background(), Options{
		Netlist: []byte(divider),
		Formats: []string{render.FormatTikZ},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"parse", "layout", "render:tikz"}
	if !reflect.DeepEqual(hooks.events, want) {
		t.Errorf("events = %v, want %v", hooks.events, want)
	}
}

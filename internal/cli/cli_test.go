package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/errors"
	"github.com/matzehuels/schematic/pkg/graph"
	"github.com/matzehuels/schematic/pkg/netlist"
)

const divider = `# voltage divider
V1 1 0; down
R1 1 2; right
C1 2 0_1; down
`

// runCLI executes the root command with an isolated config and cache.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeNetlist(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "divider.sch")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLayoutCommand(t *testing.T) {
	input := writeNetlist(t, divider)

	if _, err := runCLI(t, "", "layout", input, "-q"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	p, err := graph.ReadFile(strings.TrimSuffix(input, ".sch") + ".layout.json")
	if err != nil {
		t.Fatalf("read placement: %v", err)
	}
	n, ok := p.Node("2")
	if !ok || n.X != 2 || n.Y != 2 {
		t.Errorf("node 2 = %+v, want (2, 2)", n)
	}
	if len(p.Wires) != 1 {
		t.Errorf("wires = %d, want 1", len(p.Wires))
	}
}

func TestLayoutCommandYAMLAndScale(t *testing.T) {
	input := writeNetlist(t, divider)
	output := filepath.Join(t.TempDir(), "divider.yaml")

	if _, err := runCLI(t, "", "layout", input, "-q", "--scale", "3", "-o", output); err != nil {
		t.Fatalf("layout: %v", err)
	}

	p, err := graph.ReadFile(output)
	if err != nil {
		t.Fatalf("read placement: %v", err)
	}
	if p.Width != 3 || p.Height != 3 {
		t.Errorf("size = %gx%g, want 3x3", p.Width, p.Height)
	}
}

func TestLayoutCommandConfig(t *testing.T) {
	input := writeNetlist(t, divider)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[layout]\nscale = 4\n\n[cache]\nbackend = \"none\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "", "--config", cfg, "layout", input, "-q"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	p, err := graph.ReadFile(strings.TrimSuffix(input, ".sch") + ".layout.json")
	if err != nil {
		t.Fatal(err)
	}
	if p.Scale != 4 || p.Width != 4 {
		t.Errorf("scale = %g width = %g, want 4", p.Scale, p.Width)
	}
}

func TestInvalidConfig(t *testing.T) {
	input := writeNetlist(t, divider)
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[layout]\nspacing = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "", "--config", cfg, "layout", input)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestStrictRejectsDuplicates(t *testing.T) {
	input := writeNetlist(t, "R1 1 2\nR1 2 3\n")

	if _, err := runCLI(t, "", "layout", input, "-q", "--no-cache"); err != nil {
		t.Fatalf("duplicates should be replaced by default: %v", err)
	}

	_, err := runCLI(t, "", "--strict", "layout", input, "-q", "--no-cache")
	if !errors.Is(err, errors.ErrCodeDuplicateName) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeDuplicateName)
	}
}

func TestRenderCommandFromStdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), "divider.tex")

	if _, err := runCLI(t, divider, "render", "-", "-f", "tikz", "-o", output); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	tikz := string(data)
	if !strings.HasPrefix(tikz, `\begin{tikzpicture}`) {
		t.Errorf("tikz output should open a tikzpicture:\n%s", tikz)
	}
	if got := strings.Count(tikz, `\draw (`); got != 4 {
		t.Errorf("tikz has %d draws, want 4:\n%s", got, tikz)
	}
}

func TestRenderCommandFromPlacement(t *testing.T) {
	input := writeNetlist(t, divider)
	if _, err := runCLI(t, "", "layout", input, "-q"); err != nil {
		t.Fatal(err)
	}
	placement := strings.TrimSuffix(input, ".sch") + ".layout.json"

	if _, err := runCLI(t, "", "render", placement, "-f", "svg,dot", "--nodes=false"); err != nil {
		t.Fatalf("render: %v", err)
	}

	base := strings.TrimSuffix(input, ".sch")
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg output missing <svg element")
	}
	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(dot, []byte("graph")) {
		t.Errorf("dot output = %q", dot)
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	input := writeNetlist(t, divider)
	_, err := runCLI(t, "", "render", input, "-f", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestCheckCommand(t *testing.T) {
	if _, err := runCLI(t, "", "check", writeNetlist(t, divider)); err != nil {
		t.Errorf("check of a valid netlist: %v", err)
	}

	_, err := runCLI(t, "", "check", writeNetlist(t, "R1 1 2; right\nR2 2 1; right\n"))
	if err == nil {
		t.Error("check should fail for opposing directions")
	}
}

func TestCheckAxes(t *testing.T) {
	n, err := netlist.Read(strings.NewReader("R1 1 2; right\nR2 2 1; right\nC1 1 3; down\n"))
	if err != nil {
		t.Fatal(err)
	}

	reports := checkAxes(n)
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}

	x, y := reports[0], reports[1]
	if !errors.Is(x.Err, errors.ErrCodeInconsistent) {
		t.Errorf("x axis error = %v, want %s", x.Err, errors.ErrCodeInconsistent)
	}
	if y.Err != nil {
		t.Fatalf("y axis should solve: %v", y.Err)
	}
	if y.Nodes != 2 || y.Length != 1 || y.WithSlack != 0 {
		t.Errorf("y axis report = %+v", y)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := runCLI(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), appName) {
		t.Errorf("cache path = %q", out)
	}
}

func TestCacheClearCommand(t *testing.T) {
	input := writeNetlist(t, divider)
	if _, err := runCLI(t, "", "layout", input, "-q"); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "", "cache", "clear"); err != nil {
		t.Errorf("cache clear: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCLI(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "bash completion") {
		t.Errorf("bash completion output missing header")
	}
}

func TestInputFileCompletion(t *testing.T) {
	tests := []struct {
		command string
		want    []string
	}{
		{"layout", []string{"sch", "net"}},
		{"check", []string{"sch"}},
		{"render", []string{"sch", "json", "yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out, err := runCLI(t, "", cobra.ShellCompRequestCmd, tt.command, "")
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			for _, ext := range tt.want {
				if !slices.Contains(lines, ext) {
					t.Errorf("completion for %s missing %q: %q", tt.command, ext, out)
				}
			}
			directive := fmt.Sprintf(":%d", cobra.ShellCompDirectiveFilterFileExt)
			if lines[len(lines)-1] != directive {
				t.Errorf("directive = %q, want %q", lines[len(lines)-1], directive)
			}
		})
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the CLI with args in an empty directory so no config file is
// picked up, and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCommand(&app{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFrameCommand(t *testing.T) {
	out, err := execute(t, "frame")
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 30 {
		t.Fatalf("got %d rows, want 30", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 60 {
			t.Errorf("row %d has %d cells, want 60", i, n)
		}
	}

	tests := []struct {
		x, y  int
		glyph rune
	}{
		{30, 15, '#'}, // far face
		{45, 15, '-'}, // lit +X side
		{14, 15, '*'}, // left outline
	}
	for _, tc := range tests {
		if got := []rune(lines[tc.y])[tc.x]; got != tc.glyph {
			t.Errorf("cell (%d, %d) = %q, want %q", tc.x, tc.y, got, tc.glyph)
		}
	}
}

func TestFrameCommandViewportFlags(t *testing.T) {
	out, err := execute(t, "frame", "--width", "40", "--height", "20")
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d rows, want 20", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 40 {
			t.Errorf("row %d has %d cells, want 40", i, n)
		}
	}
	// The side faces are slivers under the outline at this size.
	for _, glyph := range []string{"#", "*"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("frame has no %q", glyph)
		}
	}
}

func TestFrameCommandTicksChangeTheFrame(t *testing.T) {
	still, err := execute(t, "frame")
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	turned, err := execute(t, "frame", "--ticks", "20")
	if err != nil {
		t.Fatalf("frame --ticks: %v", err)
	}
	if still == turned {
		t.Error("20 ticks should rotate the cube")
	}
}

func TestFrameCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.png")
	if _, err := execute(t, "frame", "--png", path, "--no-color"); err != nil {
		t.Fatalf("frame --png: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("png not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("png is empty")
	}
}

func TestFrameCommandRejectsNegativeTicks(t *testing.T) {
	if _, err := execute(t, "frame", "--ticks=-1"); err == nil {
		t.Error("expected an error for negative ticks")
	}
}

func TestFrameCommandRejectsBadConfig(t *testing.T) {
	if _, err := execute(t, "frame", "--width", "0"); err == nil {
		t.Error("expected an error for a zero-width viewport")
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.glb")
	if _, err := execute(t, "export", path, "--ticks", "5"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("glb not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("glTF")) {
		t.Errorf("missing GLB magic, got %q", data[:min(4, len(data))])
	}
}

func TestExportCommandNeedsPath(t *testing.T) {
	if _, err := execute(t, "export"); err == nil {
		t.Error("expected an error without an output path")
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := execute(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{
		"Model: cube",
		"Vertices: 8",
		"Faces: 6",
		"Edges: 12",
		"Size: 1.00 x 1.00 x 1.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandPrints(t *testing.T) {
	out, err := execute(t, "config", "--zoom", "7")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "zoom: 7") {
		t.Errorf("config output should reflect the flag:\n%s", out)
	}
}

func TestConfigCommandSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "asciicube.yaml")
	out, err := execute(t, "config", "--save", "--path", path, "--shades", "ox.")
	if err != nil {
		t.Fatalf("config --save: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output should name the file, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "glyphs: ox.") {
		t.Errorf("saved config missing glyphs:\n%s", data)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "asciicube ") {
		t.Errorf("version output = %q", out)
	}
}

func TestBuildVersionPrefersLinkerValue(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.2.3"
	if got := buildVersion(); got != "v1.2.3" {
		t.Errorf("buildVersion() = %q, want v1.2.3", got)
	}
}

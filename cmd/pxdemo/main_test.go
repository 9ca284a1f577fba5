package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/px"
	"github.com/gogpu/px/ppm"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, tty bool, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { px.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr, tty).Run(append([]string{"pxdemo"}, args...))
	return stdout.String(), stderr.String(), err
}

func decodePPM(t *testing.T, path string) ([]uint32, int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	buf, w, h, err := ppm.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return buf, w, h
}

func TestDemos(t *testing.T) {
	for _, name := range demoNames() {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name+".ppm")
			_, stderr, err := run(t, false, "demo", "-o", out, "--size", "96", name)
			if err != nil {
				t.Fatalf("demo %s: %v", name, err)
			}
			if !strings.Contains(stderr, out) {
				t.Errorf("stderr %q does not mention the output file", stderr)
			}

			buf, w, h := decodePPM(t, out)
			if w != 96 || h != 96 {
				t.Fatalf("size = %dx%d, want 96x96", w, h)
			}
			colors := map[uint32]bool{}
			for _, v := range buf {
				colors[v] = true
			}
			if len(colors) < 3 {
				t.Errorf("demo %s uses only %d colors", name, len(colors))
			}
		})
	}
}

func TestDemoErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.ppm")
	tests := []struct {
		name string
		args []string
	}{
		{"unknown demo", []string{"demo", "-o", out, "spiral"}},
		{"missing name", []string{"demo", "-o", out}},
		{"missing output", []string{"demo", "sun"}},
		{"bad size", []string{"demo", "-o", out, "--size", "0", "sun"}},
		{"bad extension", []string{"demo", "-o", filepath.Join(t.TempDir(), "x.gif"), "sun"}},
		{"bad log level", []string{"--log-level", "loud", "colors"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, false, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRenderScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	doc := `
width: 20
height: 10
scale: 2
background: black
shapes:
  - {kind: rect, x: 0, y: 0, w: 10, h: 10, fill: red}
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		w, h int
	}{
		{"scene scale", nil, 40, 20},
		{"flag scale", []string{"--scale", "3"}, 60, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, tt.name+".ppm")
			args := append([]string{"render", "-o", out}, tt.args...)
			if _, _, err := run(t, false, append(args, path)...); err != nil {
				t.Fatalf("render: %v", err)
			}

			buf, w, h := decodePPM(t, out)
			if w != tt.w || h != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
			if buf[0] != uint32(px.Red) || buf[len(buf)-1] != uint32(px.Black) {
				t.Errorf("corners = %#x, %#x", buf[0], buf[len(buf)-1])
			}
		})
	}
}

func TestRenderScaleTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("width: 4\nheight: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.ppm")
	_, _, err := run(t, false, "render", "-o", out, "--scale", "1000000000000", path)
	if err == nil || !strings.Contains(err.Error(), "scale") {
		t.Errorf("error = %v, want a scale error", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written for a rejected scale: %v", err)
	}
}

func TestRenderInvalidScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: 0\nheight: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.ppm")
	_, _, err := run(t, false, "render", "-o", out, path)
	if err == nil || !strings.Contains(err.Error(), "width") {
		t.Errorf("error = %v, want a width error", err)
	}
}

func TestStdoutOutput(t *testing.T) {
	stdout, _, err := run(t, false, "demo", "-o", "-", "--size", "8", "sun")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "P6\n8 8\n255\n") || len(stdout) != len("P6\n8 8\n255\n")+8*8*3 {
		t.Errorf("stdout is not an 8x8 PPM (%d bytes)", len(stdout))
	}

	stdout, _, err = run(t, false, "demo", "-o", "-", "--format", "png", "--size", "8", "sun")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "\x89PNG") {
		t.Error("stdout is not a PNG")
	}
}

func TestStdoutTerminalRefused(t *testing.T) {
	stdout, _, err := run(t, true, "demo", "-o", "-", "--size", "8", "sun")
	if err == nil {
		t.Fatal("writing to a terminal should fail")
	}
	if stdout != "" {
		t.Error("nothing should be written to the terminal")
	}
}

func TestColors(t *testing.T) {
	stdout, _, err := run(t, false, "colors")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != len(px.ColorNames()) {
		t.Errorf("printed %d colors, want %d", len(lines), len(px.ColorNames()))
	}
	if !strings.Contains(stdout, "cornflowerblue") || !strings.Contains(stdout, "#6495ed") {
		t.Error("cornflowerblue missing from the list")
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, false, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, px.Version) {
		t.Errorf("version output %q", stdout)
	}
}

func TestDebugLogging(t *testing.T) {
	out := filepath.Join(t.TempDir(), "d.ppm")
	_, stderr, err := run(t, false, "--log-level", "debug", "demo", "-o", out, "--size", "16", "shapes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "px: canvas created") || !strings.Contains(stderr, "px: flood fill") {
		t.Errorf("library debug logs missing from stderr:\n%s", stderr)
	}
	if strings.Contains(stderr, "time=") {
		t.Error("log lines should not carry timestamps")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "error": slog.LevelError,
	} {
		if got, err := parseLevel(in); err != nil || got != want {
			t.Errorf("parseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := parseLevel("verbose"); err == nil {
		t.Error("parseLevel(verbose) should fail")
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelInfo, true)

	log.Debug("hidden")
	log.With("a", 1).WithGroup("g").Warn("careful", "b", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record printed at info level")
	}
	for _, want := range []string{colorYellow, "WARN", "careful", "a=" + colorReset + "1", "g.b=" + colorReset + "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !log.Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("error level should be enabled")
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/milk9111/screencam/levels"
	"github.com/milk9111/screencam/screen"
)

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-list"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "level01.yaml\n") || !strings.Contains(out.String(), "level02.tmx\n") {
		t.Fatalf("unexpected listing:\n%s", out.String())
	}
}

func TestRunPrintsGrid(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-level", "level01"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"level level01: 5x2 screens of 1280x720\n",
		"SHFXX\nXOFOH\n",
		"(4,1) H ",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunDumpsYAML(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-level", "level02", "-yaml"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	spec, err := levels.ParseSpec("dump", out.Bytes())
	if err != nil {
		t.Fatalf("ParseSpec: %v\n%s", err, out.String())
	}
	if strings.TrimRight(spec.Screens, "\n") != "FO\nOX\nSH" {
		t.Fatalf("screens = %q", spec.Screens)
	}
	if len(spec.Overrides) != 1 || spec.Overrides[0].Transition == nil || *spec.Overrides[0].Transition != screen.Hard {
		t.Fatalf("unexpected overrides %+v", spec.Overrides)
	}
}

func TestRunWalk(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "walk.yaml")
	if err := os.WriteFile(p, []byte("screen_width: 1280\nscreen_height: 720\nscreens: SO\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"-file", p, "-walk", "-640,0; 640,0"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	_, walk, ok := strings.Cut(out.String(), "walk:\n")
	if !ok {
		t.Fatalf("missing walk section:\n%s", out.String())
	}
	lines := strings.Split(strings.TrimRight(walk, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 walk lines, got %d:\n%s", len(lines), walk)
	}
	if lines[0] != "player (-640,0) camera (-640,0) offset 0 screen (0,0)" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "player (640,0) camera (") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"no_level", nil, errUsage},
		{"bad_flag", []string{"-bogus"}, errUsage},
		{"unknown_level", []string{"-level", "nope"}, levels.ErrUnknownLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(c.args, &out); !errors.Is(err, c.want) {
				t.Fatalf("run(%v) error = %v, want %v", c.args, err, c.want)
			}
		})
	}
}

func TestParseWalk(t *testing.T) {
	g, err := screen.NewGrid("XOX\nSOO\nXXX", 1280, 720)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	path, err := parseWalk("auto", g)
	if err != nil {
		t.Fatalf("parseWalk(auto): %v", err)
	}
	if len(path) != 4 || path[0] != g.Start().Center() {
		t.Fatalf("auto walk = %v", path)
	}

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		if _, err := parseWalk(bad, g); err == nil {
			t.Fatalf("parseWalk(%q) should fail", bad)
		}
	}
}

package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/milk9111/screencam/screen"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLevel     = errors.New("levels: unknown level")
	ErrNoScreens        = errors.New("levels: map has no Screens object group")
	ErrMisalignedScreen = errors.New("levels: screen object does not line up with the screen grid")
)

// Spec describes one level's camera grid.
//
//	name: level01
//	screen_width: 1280
//	screen_height: 720
//	screens: |
//	  SHFXX
//	  XOFOO
//	overrides:
//	  - {col: 4, row: 1, transition: hard}
type Spec struct {
	Name         string            `yaml:"name"`
	ScreenWidth  int               `yaml:"screen_width"`
	ScreenHeight int               `yaml:"screen_height"`
	Screens      string            `yaml:"screens"`
	Overrides    []screen.Override `yaml:"overrides,omitempty"`
}

// Grid builds the screen grid and applies the overrides.
func (s Spec) Grid() (*screen.Grid, error) {
	g, err := screen.NewGrid(s.Screens, s.ScreenWidth, s.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("levels: build %s: %w", s.Name, err)
	}
	if len(s.Overrides) == 0 {
		return g, nil
	}
	g, err = g.WithOverrides(s.Overrides...)
	if err != nil {
		return nil, fmt.Errorf("levels: build %s: %w", s.Name, err)
	}
	return g, nil
}

// ParseSpec decodes a yaml level. name is used when the file does not set one.
func ParseSpec(name string, data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return spec, nil
}

// Load reads a level by name from levels/ on disk or the embedded set.
func Load(name string) (Spec, error) {
	fsys, p, err := resolve(name)
	if err != nil {
		return Spec{}, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return loadFrom(fsys, p)
}

// LoadFile reads a level from an arbitrary path on disk.
func LoadFile(p string) (Spec, error) {
	dir, base := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	if !isLevelFile(base) {
		return Spec{}, fmt.Errorf("levels: load %s: %w", p, ErrUnknownLevel)
	}
	return loadFrom(os.DirFS(dir), base)
}

// LoadGrid is Load followed by Spec.Grid.
func LoadGrid(name string) (Spec, *screen.Grid, error) {
	spec, err := Load(name)
	if err != nil {
		return Spec{}, nil, err
	}
	g, err := spec.Grid()
	if err != nil {
		return Spec{}, nil, err
	}
	return spec, g, nil
}

func loadFrom(fsys fs.FS, p string) (Spec, error) {
	if strings.EqualFold(path.Ext(p), ".tmx") {
		return LoadTMX(fsys, p)
	}

	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Spec{}, fmt.Errorf("levels: load %s: %w", p, err)
	}
	return ParseSpec(levelName(p), data)
}

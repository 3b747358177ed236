package levels

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml *.tmx
var LevelsFS embed.FS

// Dir is where on-disk level overrides are looked up, relative to the working
// directory.
const Dir = "levels"

var levelExts = []string{".yaml", ".yml", ".tmx"}

// Names lists the embedded levels in load order.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// resolve finds a level by name, trying the on-disk copy before the embedded
// one. The extension is optional.
func resolve(name string) (fs.FS, string, error) {
	clean := cleanLevelPath(name)
	if clean == "" {
		return nil, "", ErrUnknownLevel
	}

	candidates := []string{clean}
	if path.Ext(clean) == "" {
		candidates = candidates[:0]
		for _, ext := range levelExts {
			candidates = append(candidates, clean+ext)
		}
	}

	disk := os.DirFS(Dir)
	for _, c := range candidates {
		if _, err := fs.Stat(disk, c); err == nil {
			return disk, c, nil
		}
		if _, err := fs.Stat(LevelsFS, c); err == nil {
			return LevelsFS, c, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}
	return nil, "", ErrUnknownLevel
}

func cleanLevelPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func isLevelFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, e := range levelExts {
		if ext == e {
			return true
		}
	}
	return false
}

func levelName(p string) string {
	base := path.Base(filepath.ToSlash(p))
	return strings.TrimSuffix(base, path.Ext(base))
}

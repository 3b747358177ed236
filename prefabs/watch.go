package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind tells a host what a changed file feeds.
type ChangeKind int

const (
	ChangeConfig ChangeKind = iota
	ChangeLevel
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeConfig:
		return "config"
	case ChangeLevel:
		return "level"
	default:
		return "unknown"
	}
}

type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to camera config and level files under the watched
// directories. Bursts of writes to the same file collapse into one Change.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- Change{Path: event.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// classify maps a path to the kind of reload it needs. Camera and player
// tuning live next to each other as yaml; anything else yaml or a Tiled map
// is a level.
func classify(path string) (ChangeKind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".tmx":
		return ChangeLevel, true
	case ".yaml", ".yml":
	default:
		return 0, false
	}

	base := strings.TrimSuffix(strings.ToLower(filepath.Base(path)), ext)
	switch base {
	case "camera", "player":
		return ChangeConfig, true
	}
	return ChangeLevel, true
}

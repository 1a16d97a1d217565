package banner

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// FileWatcher polls the YAML files under a directory and triggers a callback
// when any of them is added, removed or modified.
type FileWatcher struct {
	Dir      string
	Interval time.Duration
	onChange func(path string)
	log      *zap.Logger

	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for dir. A nil logger disables logging.
func NewFileWatcher(dir string, interval time.Duration, onChange func(string), log *zap.Logger) *FileWatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileWatcher{
		Dir:       dir,
		Interval:  interval,
		onChange:  onChange,
		log:       log,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	// prime cache
	w.scan(true)
	for {
		select {
		case <-ticker.C:
			w.scan(false)
		case <-ctx.Done():
			return
		}
	}
}

// scan checks mtimes and reports the first path that changed since the last scan.
func (w *FileWatcher) scan(prime bool) {
	var files []string
	for _, pattern := range []string{"*.yaml", filepath.Join("banners", "*.yaml")} {
		m, err := filepath.Glob(filepath.Join(w.Dir, pattern))
		if err != nil {
			w.log.Warn("watch glob failed", zap.String("pattern", pattern), zap.Error(err))
			continue
		}
		files = append(files, m...)
	}

	changed := ""
	seen := make(map[string]bool, len(files))
	for _, p := range files {
		fi, err := os.Stat(p)
		if err != nil {
			// removed between glob and stat; the next scan sees it gone
			continue
		}
		seen[p] = true
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok || mt.After(last) {
			w.lastMTime[p] = mt
			if changed == "" {
				changed = p
			}
		}
	}
	for p := range w.lastMTime {
		if !seen[p] {
			delete(w.lastMTime, p)
			if changed == "" {
				changed = p
			}
		}
	}

	if changed != "" && !prime && w.onChange != nil {
		w.log.Info("banner config changed", zap.String("path", changed))
		w.onChange(changed)
	}
}

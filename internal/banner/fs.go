package banner

import (
	"errors"
	"io/fs"
	"sort"
)

// Overlay returns an FS that resolves names in upper first and falls back to
// lower, so an on-disk banner directory only needs the files it changes.
func Overlay(upper, lower fs.FS) fs.FS {
	return overlay{upper: upper, lower: lower}
}

type overlay struct {
	upper, lower fs.FS
}

func (o overlay) Open(name string) (fs.File, error) {
	f, err := o.upper.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return o.lower.Open(name)
	}
	return f, err
}

func (o overlay) Glob(pattern string) ([]string, error) {
	seen := make(map[string]bool)
	for _, fsys := range []fs.FS{o.upper, o.lower} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			seen[m] = true
		}
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

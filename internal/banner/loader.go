package banner

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/xtding233/arona/internal/gacha"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// Embedded returns the catalog and banners shipped with the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultID is the banner served when none is configured.
const DefaultID = "2021-02-25-izuna"

const defaultName = "default"

var ErrUnknownBanner = errors.New("unknown banner")

// Paths helper for catalog/default/banner files, relative to the loader root.
type Paths struct{}

func (Paths) CatalogPath() string { return "students.yaml" }

func (Paths) DefaultPath() string { return path.Join("banners", defaultName+".yaml") }

func (Paths) BannerPath(id string) string { return path.Join("banners", id+".yaml") }

// Loader reads YAML configs and merges default → banner.
type Loader struct {
	fsys  fs.FS
	paths Paths
	rng   gacha.RandomSource

	mu      sync.RWMutex
	catalog *Catalog
	cache   map[string]RawBanner // key: banner id, value: merged
}

// NewLoader creates a loader over fsys. rng is shared by every banner built;
// nil means the crypto source.
func NewLoader(fsys fs.FS, rng gacha.RandomSource) *Loader {
	return &Loader{
		fsys:  fsys,
		rng:   rng,
		cache: make(map[string]RawBanner),
	}
}

// Catalog loads the student roster once.
func (l *Loader) Catalog() (*Catalog, error) {
	l.mu.RLock()
	c := l.catalog
	l.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	b, err := fs.ReadFile(l.fsys, l.paths.CatalogPath())
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err = ParseCatalog(b)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.catalog = c
	l.mu.Unlock()
	return c, nil
}

// IDs lists the available banners.
func (l *Loader) IDs() ([]string, error) {
	matches, err := fs.Glob(l.fsys, l.paths.BannerPath("*"))
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, m := range matches {
		id := strings.TrimSuffix(path.Base(m), ".yaml")
		if id != defaultName {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadMerged loads and merges default → banner.
func (l *Loader) LoadMerged(id string) (RawBanner, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[id]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	if id == "" || id == defaultName || strings.ContainsAny(id, `/\`) {
		return RawBanner{}, fmt.Errorf("%w: %q", ErrUnknownBanner, id)
	}
	defCfg, err := readYAML(l.fsys, l.paths.DefaultPath())
	if err != nil {
		return RawBanner{}, fmt.Errorf("read default: %w", err)
	}
	bannerCfg, err := readYAML(l.fsys, l.paths.BannerPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return RawBanner{}, fmt.Errorf("%w: %q", ErrUnknownBanner, id)
	}
	if err != nil {
		return RawBanner{}, fmt.Errorf("read banner %s: %w", id, err)
	}

	merged := mergeRaw(defCfg, bannerCfg)

	l.mu.Lock()
	l.cache[id] = merged
	l.mu.Unlock()
	return merged, nil
}

// Build merges, validates and resolves a banner into a ready gacha.Banner.
func (l *Loader) Build(id string) (*gacha.Banner, error) {
	cat, err := l.Catalog()
	if err != nil {
		return nil, err
	}
	raw, err := l.LoadMerged(id)
	if err != nil {
		return nil, err
	}
	if err := ValidateRaw(raw, cat); err != nil {
		return nil, fmt.Errorf("banner %s: %w", id, err)
	}

	rates := gacha.Rates{One: *raw.Rates.One, Two: *raw.Rates.Two, Three: *raw.Rates.Three}
	var priority []gacha.Priority
	for _, p := range raw.Priority {
		s, _ := cat.Lookup(p.Name)
		priority = append(priority, gacha.Priority{Student: s, Rate: p.Rate})
	}
	g, err := gacha.NewGacha(rates, resolvePool(raw.Pool, cat), priority, l.rng)
	if err != nil {
		return nil, fmt.Errorf("banner %s: %w", id, err)
	}

	b := &gacha.Banner{
		ID:           id,
		Name:         raw.Name,
		ImageURL:     raw.ImageURL,
		Translations: make(map[language.Tag]string, len(raw.Translations)),
		Gacha:        g,
	}
	for key, name := range raw.Translations {
		b.Translations[language.Make(key)] = name
	}
	for _, name := range raw.Sparkable {
		s, _ := cat.Lookup(name)
		b.Sparkable = append(b.Sparkable, s)
	}
	return b, nil
}

// Invalidate clears the catalog and merged-banner cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog = nil
	l.cache = make(map[string]RawBanner)
}

// resolvePool turns names into students; ValidateRaw has already checked them.
func resolvePool(p PoolConfig, cat *Catalog) []gacha.Student {
	if p.All {
		excluded := make(map[int]bool)
		for _, name := range p.Exclude {
			if s, ok := cat.Lookup(name); ok {
				excluded[s.ID] = true
			}
		}
		var out []gacha.Student
		for _, s := range cat.Students() {
			if !excluded[s.ID] {
				out = append(out, s)
			}
		}
		return out
	}
	var out []gacha.Student
	for _, names := range [][]string{p.Three, p.Two, p.One} {
		for _, name := range names {
			if s, ok := cat.Lookup(name); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

// readYAML loads a YAML file into RawBanner.
func readYAML(fsys fs.FS, name string) (RawBanner, error) {
	var cfg RawBanner
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return RawBanner{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawBanner{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b onto a: scalars and rates override when set, lists replace.
func mergeRaw(a, b RawBanner) RawBanner {
	out := a

	if b.Name != "" {
		out.Name = b.Name
	}
	if b.ImageURL != "" {
		out.ImageURL = b.ImageURL
	}
	if len(b.Translations) > 0 {
		out.Translations = make(map[string]string, len(a.Translations)+len(b.Translations))
		for k, v := range a.Translations {
			out.Translations[k] = v
		}
		for k, v := range b.Translations {
			out.Translations[k] = v
		}
	}

	switch {
	case out.Rates == nil && b.Rates != nil:
		c := *b.Rates
		out.Rates = &c
	case out.Rates != nil && b.Rates != nil:
		c := *out.Rates
		if b.Rates.One != nil {
			c.One = b.Rates.One
		}
		if b.Rates.Two != nil {
			c.Two = b.Rates.Two
		}
		if b.Rates.Three != nil {
			c.Three = b.Rates.Three
		}
		out.Rates = &c
	}

	if b.Pool.All || len(b.Pool.One)+len(b.Pool.Two)+len(b.Pool.Three) > 0 {
		out.Pool = b.Pool
	}
	if len(b.Priority) > 0 {
		out.Priority = append([]PriorityConfig(nil), b.Priority...)
	}
	if len(b.Sparkable) > 0 {
		out.Sparkable = append([]string(nil), b.Sparkable...)
	}
	return out
}

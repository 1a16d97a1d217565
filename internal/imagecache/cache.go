package imagecache

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Source hands out rasters for URLs. It never fails: anything that cannot be
// loaded comes back as a Placeholder of the requested size.
type Source interface {
	GetOrFetch(ctx context.Context, url string, w, h int) *image.NRGBA
}

// Cache is a Source that keeps every successfully decoded image, keyed by
// URL alone. The first resolution stored for a URL is the one returned for
// it afterwards, whatever size later callers ask for. Failures are not cached.
type Cache struct {
	fetcher  Fetcher
	store    Store
	log      *zap.Logger
	coalesce bool
	group    singleflight.Group
}

type Option func(*Cache)

// WithStore replaces the default MapStore.
func WithStore(s Store) Option {
	return func(c *Cache) { c.store = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCoalescing makes concurrent misses for the same URL and size share a
// single download. The download ignores the callers' cancellation and is
// bounded by the fetcher's own timeout.
func WithCoalescing() Option {
	return func(c *Cache) { c.coalesce = true }
}

func New(f Fetcher, opts ...Option) *Cache {
	c := &Cache{fetcher: f, store: NewMapStore(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns a private copy of the raster for url, downloading and
// decoding it on a miss. The store's lock is never held during I/O.
func (c *Cache) GetOrFetch(ctx context.Context, url string, w, h int) *image.NRGBA {
	if img, ok := c.store.Load(url); ok {
		c.log.Debug("image cache hit", zap.String("url", url))
		return imaging.Clone(img)
	}

	var (
		img *image.NRGBA
		err error
	)
	if c.coalesce {
		var v any
		shared := context.WithoutCancel(ctx)
		v, err, _ = c.group.Do(fmt.Sprintf("%s@%dx%d", url, w, h), func() (any, error) {
			return c.load(shared, url, w, h)
		})
		if err == nil {
			img = v.(*image.NRGBA)
		}
	} else {
		img, err = c.load(ctx, url, w, h)
	}
	if err != nil {
		c.log.Warn("image unavailable, using placeholder", zap.String("url", url), zap.Error(err))
		return Placeholder(w, h)
	}
	return imaging.Clone(img)
}

// Len reports how many images are stored.
func (c *Cache) Len() int { return c.store.Len() }

func (c *Cache) load(ctx context.Context, url string, w, h int) (*image.NRGBA, error) {
	start := time.Now()
	c.log.Info("downloading image", zap.String("url", url))
	data, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := DecodeResize(data, w, h)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h || len(img.Pix) != 4*w*h {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDecode, b.Dx(), b.Dy(), w, h)
	}
	c.log.Info("decoded image",
		zap.String("url", url),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)),
	)
	c.store.Save(url, img)
	return img, nil
}

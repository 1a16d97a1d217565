package main

import (
	"io/fs"
	"os"

	"github.com/xtding233/arona/internal/banner"
	"github.com/xtding233/arona/internal/config"
	"github.com/xtding233/arona/internal/gacha"
	"github.com/xtding233/arona/internal/imagecache"
	"github.com/xtding233/arona/internal/recruit"
	"github.com/xtding233/arona/internal/render"
	"go.uber.org/zap"
)

// app is everything a command needs besides the chat gateway.
type app struct {
	loader   *banner.Loader
	registry *banner.Registry
	cache    *imagecache.Cache
	flow     *recruit.Flow
}

func newApp(cfg config.Config, bannerID string, rng gacha.RandomSource, log *zap.Logger) (*app, error) {
	loader := banner.NewLoader(bannerFS(cfg), rng)
	if bannerID == "" {
		bannerID = cfg.Banner
	}
	registry, err := banner.NewRegistry(loader, bannerID, log)
	if err != nil {
		return nil, err
	}

	opts := []imagecache.Option{imagecache.WithLogger(log)}
	if cfg.CacheTTL > 0 {
		opts = append(opts, imagecache.WithStore(imagecache.NewTTLStore(cfg.CacheTTL)))
	}
	if cfg.CacheCoalesce {
		opts = append(opts, imagecache.WithCoalescing())
	}
	cache := imagecache.New(imagecache.NewHTTPFetcher(cfg.FetchTimeout, cfg.FetchRate), opts...)

	return &app{
		loader:   loader,
		registry: registry,
		cache:    cache,
		flow: &recruit.Flow{
			Banners:     registry,
			Images:      cache,
			Encoder:     render.JPEGEncoder{},
			Sparks:      gacha.NewSparkLedger(gacha.SparkThreshold),
			CDNRoot:     cfg.CDNRoot,
			Concurrency: cfg.FetchConcurrency,
			Logger:      log,
		},
	}, nil
}

// bannerFS layers ARONA_BANNER_DIR, when set, over the embedded data.
func bannerFS(cfg config.Config) fs.FS {
	if cfg.BannerDir == "" {
		return banner.Embedded()
	}
	return banner.Overlay(os.DirFS(cfg.BannerDir), banner.Embedded())
}

package banner

import (
	"sync/atomic"

	"github.com/xtding233/arona/internal/gacha"
	"go.uber.org/zap"
)

// Registry holds the active banner and swaps it atomically on reload, so
// in-flight rolls keep the banner they started with.
type Registry struct {
	loader  *Loader
	id      string
	log     *zap.Logger
	current atomic.Pointer[gacha.Banner]
}

// NewRegistry builds banner id and fails if it does not validate.
func NewRegistry(loader *Loader, id string, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if id == "" {
		id = DefaultID
	}
	r := &Registry{loader: loader, id: id, log: log}
	b, err := loader.Build(id)
	if err != nil {
		return nil, err
	}
	r.current.Store(b)
	return r, nil
}

// Current returns the active banner.
func (r *Registry) Current() *gacha.Banner {
	return r.current.Load()
}

// Reload rebuilds the banner from disk. On failure the previous banner stays
// active and the error is returned.
func (r *Registry) Reload() error {
	r.loader.Invalidate()
	b, err := r.loader.Build(r.id)
	if err != nil {
		r.log.Error("banner reload failed, keeping previous", zap.String("banner", r.id), zap.Error(err))
		return err
	}
	r.current.Store(b)
	r.log.Info("banner reloaded", zap.String("banner", r.id), zap.String("name", b.Name))
	return nil
}

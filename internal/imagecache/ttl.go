package imagecache

import (
	"image"
	"time"

	"github.com/patrickmn/go-cache"
)

// TTLStore expires entries after a fixed time since they were saved.
type TTLStore struct {
	c *cache.Cache
}

// NewTTLStore creates a store whose entries expire after ttl. Expired
// entries are purged every ttl/2.
func NewTTLStore(ttl time.Duration) *TTLStore {
	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	return &TTLStore{c: cache.New(ttl, cleanup)}
}

func (s *TTLStore) Load(url string) (*image.NRGBA, bool) {
	v, ok := s.c.Get(url)
	if !ok {
		return nil, false
	}
	img, ok := v.(*image.NRGBA)
	return img, ok
}

func (s *TTLStore) Save(url string, img *image.NRGBA) {
	s.c.SetDefault(url, img)
}

// Len counts entries, including expired ones not yet purged.
func (s *TTLStore) Len() int {
	return s.c.ItemCount()
}

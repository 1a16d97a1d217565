package imagecache

import (
	"image"
	"sync"
)

// Store keeps decoded rasters by URL. Implementations must be safe for
// concurrent use; rasters handed to Save are owned by the store afterwards.
type Store interface {
	Load(url string) (*image.NRGBA, bool)
	Save(url string, img *image.NRGBA)
	Len() int
}

// MapStore is an unbounded map guarded by a mutex. Entries live for the
// lifetime of the process.
type MapStore struct {
	mu sync.Mutex
	m  map[string]*image.NRGBA
}

func NewMapStore() *MapStore {
	return &MapStore{m: make(map[string]*image.NRGBA)}
}

func (s *MapStore) Load(url string) (*image.NRGBA, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.m[url]
	return img, ok
}

func (s *MapStore) Save(url string, img *image.NRGBA) {
	s.mu.Lock()
	s.m[url] = img
	s.mu.Unlock()
}

func (s *MapStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

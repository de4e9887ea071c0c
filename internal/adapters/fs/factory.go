package fs

import (
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
)

var _ ports.HasherFactory = (*Factory)(nil)

// Factory builds memoizing path hashers.
type Factory struct {
	walker    *Walker
	cacheSize int
}

// NewFactory creates a Factory whose hashers share walker.
func NewFactory(walker *Walker) *Factory {
	return &Factory{walker: walker, cacheSize: DefaultCacheSize}
}

// NewPathHasher returns a cached hasher for root using algo.
func (f *Factory) NewPathHasher(root string, algo domain.HashAlgorithm) (ports.PathHasher, error) {
	h, err := NewHasher(f.walker, root, algo)
	if err != nil {
		return nil, err
	}
	return NewCachedHasher(h, f.cacheSize)
}

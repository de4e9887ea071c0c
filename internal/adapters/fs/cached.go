package fs

import (
	iofs "io/fs"
	"os"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of file digests kept by a CachedHasher.
const DefaultCacheSize = 4096

var _ ports.PathHasher = (*CachedHasher)(nil)

// fileKey identifies one version of a file on disk.
type fileKey struct {
	path    string
	size    int64
	modTime int64
}

func keyOf(path string, info iofs.FileInfo) fileKey {
	return fileKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
}

// CachedHasher memoizes file digests so a resource shared by many jobs is read once.
// Entries are keyed by resolved path, size and modification time of the file
// that was actually read; directories are always rehashed because their own
// metadata does not track nested edits.
// It is safe for concurrent use.
type CachedHasher struct {
	next   *Hasher
	stat   func(string) (iofs.FileInfo, error)
	cache  *lru.Cache[fileKey, string]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedHasher wraps next with a bounded digest cache.
func NewCachedHasher(next *Hasher, size int) (*CachedHasher, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[fileKey, string](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create digest cache")
	}
	return &CachedHasher{next: next, stat: os.Stat, cache: cache}, nil
}

// HashPath returns the digest of path, serving unchanged files from the cache.
func (c *CachedHasher) HashPath(path string) (string, error) {
	full := c.next.Resolve(path)

	info, err := c.stat(full)
	if err != nil || info.IsDir() {
		// The wrapped hasher reports the error or walks the directory.
		return c.next.HashPath(path)
	}

	if digest, ok := c.cache.Get(keyOf(full, info)); ok {
		c.hits.Add(1)
		return digest, nil
	}
	c.misses.Add(1)

	digest, read, err := c.next.HashFile(full)
	if err != nil {
		return "", err
	}
	if read != nil {
		c.cache.Add(keyOf(full, read), digest)
	}
	return digest, nil
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedHasher) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

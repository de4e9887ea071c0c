package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathHasher = (*Hasher)(nil)

// Hasher computes content digests of cache resources.
type Hasher struct {
	walker *Walker
	root   string
	algo   domain.HashAlgorithm
}

// NewHasher creates a Hasher that resolves relative paths against root.
func NewHasher(walker *Walker, root string, algo domain.HashAlgorithm) (*Hasher, error) {
	if !algo.Valid() {
		return nil, errors.Join(domain.ErrUnknownHashAlgorithm, zerr.With(domain.ErrUnknownHashAlgorithm, "algorithm", string(algo)))
	}
	return &Hasher{walker: walker, root: root, algo: algo}, nil
}

// Algorithm returns the digest algorithm in use.
func (h *Hasher) Algorithm() domain.HashAlgorithm {
	return h.algo
}

// Resolve returns the filesystem path a declared resource refers to.
func (h *Hasher) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(h.root, path)
}

// HashPath returns the hex digest of the resource at path.
// Files hash their content. Directories hash a manifest of their files'
// slash-separated relative paths and content digests, in sorted order.
func (h *Hasher) HashPath(path string) (string, error) {
	full := h.Resolve(path)

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", errors.Join(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, domain.ErrResourceNotFound.Error()), "path", path))
		}
		return "", errors.Join(domain.ErrPathStatFailed, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path))
	}

	if info.IsDir() {
		return h.hashDir(full)
	}
	return h.ComputeFileHash(full)
}

// ComputeFileHash returns the hex digest of a file's content.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	digest, _, err := h.HashFile(path)
	return digest, err
}

// HashFile returns the hex digest of a file's content and the metadata of the
// file that was read. The metadata is nil when the file changed while it was
// being read.
func (h *Hasher) HashFile(path string) (string, iofs.FileInfo, error) {
	f, err := os.Open(path) //nolint:gosec // Path is a declared cache resource
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", nil, errors.Join(domain.ErrResourceNotFound, zerr.With(zerr.Wrap(err, domain.ErrResourceNotFound.Error()), "path", path))
		}
		return "", nil, errors.Join(domain.ErrFileOpenFailed, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	before, err := f.Stat()
	if err != nil {
		return "", nil, errors.Join(domain.ErrPathStatFailed, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path))
	}

	d := h.newDigest()
	if _, err := io.Copy(d, f); err != nil {
		return "", nil, errors.Join(domain.ErrFileHashFailed, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path))
	}
	digest := hex.EncodeToString(d.Sum(nil))

	after, err := f.Stat()
	if err != nil || !sameVersion(before, after) {
		return digest, nil, nil
	}
	return digest, before, nil
}

func sameVersion(a, b iofs.FileInfo) bool {
	return a.Size() == b.Size() && a.ModTime().Equal(b.ModTime())
}

func (h *Hasher) hashDir(dir string) (string, error) {
	type entry struct {
		rel  string
		path string
	}

	var entries []entry
	for path, err := range h.walker.WalkFiles(dir, nil) {
		if err != nil {
			return "", errors.Join(domain.ErrDirectoryWalkFailed, zerr.With(zerr.Wrap(err, domain.ErrDirectoryWalkFailed.Error()), "path", dir))
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", errors.Join(domain.ErrDirectoryWalkFailed, zerr.With(zerr.Wrap(err, domain.ErrDirectoryWalkFailed.Error()), "path", path))
		}
		entries = append(entries, entry{rel: filepath.ToSlash(rel), path: path})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.rel < b.rel:
			return -1
		case a.rel > b.rel:
			return 1
		default:
			return 0
		}
	})

	manifest := h.newDigest()
	for _, e := range entries {
		sum, err := h.ComputeFileHash(e.path)
		if err != nil {
			return "", err
		}
		_, _ = io.WriteString(manifest, e.rel)
		_, _ = manifest.Write([]byte{0})
		_, _ = io.WriteString(manifest, sum)
		_, _ = manifest.Write([]byte{0})
	}

	return hex.EncodeToString(manifest.Sum(nil)), nil
}

func (h *Hasher) newDigest() hash.Hash {
	if h.algo == domain.HashXX {
		return xxhash.New()
	}
	return sha256.New()
}

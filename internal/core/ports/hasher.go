// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cachekey/internal/core/domain"

// PathHasher hashes filesystem paths into stable digest strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type PathHasher interface {
	// HashPath returns the content digest of the file or directory at path.
	// It must return the same digest for identical content and an error if
	// the path cannot be read.
	HashPath(path string) (string, error)
}

// HasherFactory creates PathHashers for a root directory and algorithm.
type HasherFactory interface {
	// NewPathHasher returns a hasher that resolves relative paths against root.
	NewPathHasher(root string, algo domain.HashAlgorithm) (PathHasher, error)
}

package ports

import "go.trai.ch/ripple/internal/core/domain"

// RestoreStore remembers the archive last exploded into each package directory
// under a packages root. Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=restore_store.go -destination=mocks/mock_restore_store.go -package=mocks
type RestoreStore interface {
	// Get returns the record for the named package under root, or nil when
	// there is none or its directory no longer exists.
	Get(root, name string) (*domain.RestoreRecord, error)

	// Put records a restored package under root.
	Put(root string, record domain.RestoreRecord) error
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"io"

	"go.trai.ch/lfx/internal/core/domain"
)

// LockfileReader loads a pnpm-lock.yaml document.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileReader interface {
	// Read parses the lockfile at path.
	//
	// A missing file yields domain.ErrLockfileNotFound and malformed YAML yields
	// domain.ErrLockfileParseFailed.
	Read(path string) (*domain.Lockfile, error)
}

// LockfileEncoder writes a lockfile document back as YAML.
type LockfileEncoder interface {
	Encode(w io.Writer, doc *domain.Lockfile) error
}

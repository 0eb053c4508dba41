// Package lockfile reads and writes pnpm-lock.yaml documents.
package lockfile

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lfx/internal/adapters/fs"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.LockfileReader  = (*Reader)(nil)
	_ ports.LockfileEncoder = (*Reader)(nil)
)

// Reader implements ports.LockfileReader and ports.LockfileEncoder with gopkg.in/yaml.v3.
type Reader struct {
	fs     fs.FileSystem
	logger ports.Logger
}

// NewReader creates a new Reader reading through fsys.
func NewReader(fsys fs.FileSystem, logger ports.Logger) *Reader {
	return &Reader{fs: fsys, logger: logger}
}

// Read loads and parses the lockfile at path.
func (r *Reader) Read(path string) (*domain.Lockfile, error) {
	r.logger.Info("reading " + path)

	data, err := r.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(errors.Join(domain.ErrLockfileNotFound, err), "path", path)
		}
		return nil, zerr.With(errors.Join(domain.ErrLockfileReadFailed, err), "path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Parse decodes raw pnpm-lock.yaml bytes.
func Parse(data []byte) (*domain.Lockfile, error) {
	var raw Document
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(domain.ErrLockfileParseFailed, err)
	}

	doc := toDomain(&raw)
	doc.Digest = fmt.Sprintf("%016x", xxhash.Sum64(data))
	return doc, nil
}

// Encode writes doc as YAML. Importer declarations use the bare v5 form when the document
// is a v5 lockfile and the specifier/version mapping otherwise.
func (r *Reader) Encode(w io.Writer, doc *domain.Lockfile) error {
	major, err := domain.ShrinkwrapFileMajorVersion(doc.Version)
	bare := err == nil && major == domain.LockfileMajorV5

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromDomain(doc, bare)); err != nil {
		return errors.Join(domain.ErrLockfileEncodeFailed, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(domain.ErrLockfileEncodeFailed, err)
	}
	return nil
}

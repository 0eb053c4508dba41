// Package resolver extracts the direct dependencies of a project from a PNPM lockfile.
package resolver

import (
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyResolver = (*Resolver)(nil)

// Resolver loads lockfiles through a ports.LockfileReader and normalizes them to v5
// dependency paths before looking up importers.
type Resolver struct {
	reader ports.LockfileReader
	logger ports.Logger
}

// New creates a new Resolver.
func New(reader ports.LockfileReader, logger ports.Logger) *Resolver {
	return &Resolver{reader: reader, logger: logger}
}

// Resolve returns the direct dependencies of the importers whose key, resolved against
// projectFolder itself, is projectFolder.
func (r *Resolver) Resolve(lockfilePath, projectFolder string) (domain.DependencyDeclarations, error) {
	return r.ResolveDirectDependencies(lockfilePath, "", projectFolder)
}

// ResolveDirectDependencies implements ports.DependencyResolver.
// When no importer matches, a warning is logged and an empty map is returned.
func (r *Resolver) ResolveDirectDependencies(
	lockfilePath, importerRoot, projectFolder string,
) (domain.DependencyDeclarations, error) {
	doc, err := r.LoadNormalized(lockfilePath)
	if err != nil {
		return nil, err
	}

	deps := domain.DirectDependencies(doc, importerRoot, projectFolder)
	if len(deps) == 0 && len(domain.MatchingImporters(doc, importerRoot, projectFolder)) == 0 {
		r.logger.Warn("no importer in " + lockfilePath + " matches " + projectFolder)
	}
	return deps, nil
}

// LoadNormalized reads the lockfile and rewrites v6 dependency paths to v5.
func (r *Resolver) LoadNormalized(lockfilePath string) (*domain.Lockfile, error) {
	doc, err := r.reader.Read(lockfilePath)
	if err != nil {
		return nil, err
	}

	normalized, err := domain.NormalizeToV5(doc)
	if err != nil {
		return nil, zerr.With(err, "path", lockfilePath)
	}
	return normalized, nil
}

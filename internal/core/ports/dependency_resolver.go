package ports

import "go.trai.ch/lfx/internal/core/domain"

// DependencyResolver extracts the direct dependencies of a project from a lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=dependency_resolver.go -destination=mocks/mock_dependency_resolver.go -package=mocks
type DependencyResolver interface {
	// ResolveDirectDependencies loads and normalizes the lockfile at lockfilePath and merges the
	// declarations of every importer that resolves, against importerRoot, to projectFolder.
	// The result is empty when no importer matches.
	ResolveDirectDependencies(lockfilePath, importerRoot, projectFolder string) (domain.DependencyDeclarations, error)

	// LoadNormalized reads the lockfile at lockfilePath and rewrites it to v5 dependency paths.
	LoadNormalized(lockfilePath string) (*domain.Lockfile, error)
}

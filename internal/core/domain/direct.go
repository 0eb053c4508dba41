package domain

import (
	"maps"
	"path/filepath"
	"slices"
)

// DirectDependencies merges the declarations of every importer whose path, resolved against
// importerRoot, is exactly projectFolder. An empty importerRoot resolves against projectFolder.
// devDependencies are applied first so dependencies win on collision.
// The result is empty, never nil, when no importer matches.
func DirectDependencies(doc *Lockfile, importerRoot, projectFolder string) DependencyDeclarations {
	result := make(DependencyDeclarations)
	for _, key := range MatchingImporters(doc, importerRoot, projectFolder) {
		importer := doc.Importers[key]
		importer.mergeInto(result, importer.DevDependencies)
		importer.mergeInto(result, importer.Dependencies)
	}
	return result
}

// MatchingImporters returns the sorted importer keys that resolve to projectFolder.
// An empty importerRoot resolves against projectFolder.
func MatchingImporters(doc *Lockfile, importerRoot, projectFolder string) []string {
	target := filepath.Clean(projectFolder)
	if importerRoot == "" {
		importerRoot = target
	}

	var keys []string
	for _, key := range slices.Sorted(maps.Keys(doc.Importers)) {
		if ResolveImporterPath(importerRoot, key) == target {
			keys = append(keys, key)
		}
	}
	return keys
}

// ResolveImporterPath resolves an importer key against the importer root.
func ResolveImporterPath(importerRoot, key string) string {
	rel := filepath.FromSlash(key)
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(importerRoot, rel)
}

func (i Importer) mergeInto(dst, src DependencyDeclarations) {
	for name, decl := range src {
		if decl.Specifier == "" {
			decl.Specifier = i.Specifiers[name]
		}
		dst[name] = decl
	}
}

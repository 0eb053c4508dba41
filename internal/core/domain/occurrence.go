package domain

import (
	"cmp"
	"maps"
	"slices"
)

// DependencyOccurrence records where a dependency appears in a project's dependency tree.
type DependencyOccurrence struct {
	Project        string   `json:"project"`
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	DependencyPath string   `json:"dependencyPath,omitempty"`
	Direct         bool     `json:"direct"`
	Chain          []string `json:"chain,omitempty"`
}

type occurrenceVisit struct {
	name    string
	version string
	path    string
	chain   []string
}

// FindOccurrences walks the normalized packages graph breadth-first, starting from the direct
// dependencies of a project, and reports every distinct dependency path of the package named name.
// Each dependency path is visited once, so the reported chain is the shortest one.
func FindOccurrences(
	doc *Lockfile,
	project string,
	direct DependencyDeclarations,
	name string,
) []DependencyOccurrence {
	var occurrences []DependencyOccurrence
	visited := make(map[string]bool)
	queue := make([]occurrenceVisit, 0, len(direct))

	for _, depName := range slices.Sorted(maps.Keys(direct)) {
		decl := direct[depName]
		depPath, ok := DependencyPathFor(depName, decl.Version)
		if !ok {
			// Linked workspace packages have no packages entry to descend into.
			if depName == name {
				occurrences = append(occurrences, DependencyOccurrence{
					Project: project,
					Name:    depName,
					Version: decl.Version,
					Direct:  true,
				})
			}
			continue
		}
		queue = append(queue, occurrenceVisit{name: depName, version: decl.Version, path: depPath})
	}

	for len(queue) > 0 {
		visit := queue[0]
		queue = queue[1:]

		if visited[visit.path] {
			continue
		}
		visited[visit.path] = true

		chain := append(slices.Clone(visit.chain), visit.path)
		if visit.name == name {
			occurrences = append(occurrences, DependencyOccurrence{
				Project:        project,
				Name:           visit.name,
				Version:        visit.version,
				DependencyPath: visit.path,
				Direct:         len(visit.chain) == 0,
				Chain:          chain,
			})
		}

		pkg, ok := doc.Packages[visit.path]
		if !ok {
			continue
		}
		queue = appendChildren(queue, pkg.Dependencies, chain, visited)
		queue = appendChildren(queue, pkg.OptionalDependencies, chain, visited)
	}

	slices.SortFunc(occurrences, func(a, b DependencyOccurrence) int {
		return cmp.Or(
			cmp.Compare(a.DependencyPath, b.DependencyPath),
			cmp.Compare(a.Project, b.Project),
		)
	})

	return occurrences
}

func appendChildren(
	queue []occurrenceVisit,
	refs map[string]string,
	chain []string,
	visited map[string]bool,
) []occurrenceVisit {
	for _, child := range slices.Sorted(maps.Keys(refs)) {
		ref := refs[child]
		depPath, ok := DependencyPathFor(child, ref)
		if !ok || visited[depPath] {
			continue
		}
		queue = append(queue, occurrenceVisit{name: child, version: ref, path: depPath, chain: chain})
	}
	return queue
}

package domain

import (
	"path/filepath"
	"strings"
)

const (
	// RushFileName is the Rush monorepo configuration file at the repository root.
	RushFileName = "rush.json"
	// PnpmWorkspaceFileName is the PNPM workspace manifest.
	PnpmWorkspaceFileName = "pnpm-workspace.yaml"
	// LockfileName is the file name of a PNPM lockfile.
	LockfileName = "pnpm-lock.yaml"
	// PackageJSONFileName is the manifest of a single package.
	PackageJSONFileName = "package.json"
	// DefaultSubspace is the subspace of Rush projects that do not name one.
	DefaultSubspace = "default"
)

// WorkspaceKind names the variant of a Workspace.
type WorkspaceKind string

const (
	// WorkspaceRush is a Rush monorepo.
	WorkspaceRush WorkspaceKind = "rush"
	// WorkspacePnpm is a PNPM workspace or a single PNPM project.
	WorkspacePnpm WorkspaceKind = "pnpm"
)

// Project is one package of a workspace.
type Project struct {
	Name string `json:"name"`
	// Folder is the absolute path of the project directory.
	Folder string `json:"folder"`
	// Subspace is the Rush subspace owning the project; empty for PNPM workspaces.
	Subspace string `json:"subspace,omitempty"`
}

// Workspace is either a *RushWorkspace or a *PnpmWorkspace.
// Callers switch on the concrete type; no other implementations exist.
type Workspace interface {
	Kind() WorkspaceKind
	Root() string
	Projects() []Project
	sealed()
}

// RushWorkspace is a monorepo described by rush.json.
type RushWorkspace struct {
	RootDir          string
	RushJSONPath     string
	SubspacesEnabled bool
	SubspaceNames    []string
	ProjectList      []Project
}

// Kind implements Workspace.
func (w *RushWorkspace) Kind() WorkspaceKind { return WorkspaceRush }

// Root implements Workspace.
func (w *RushWorkspace) Root() string { return w.RootDir }

// Projects implements Workspace.
func (w *RushWorkspace) Projects() []Project { return w.ProjectList }

func (w *RushWorkspace) sealed() {}

// HasSubspace reports whether name is a subspace of this repository.
// Without the subspaces feature only the default subspace exists.
func (w *RushWorkspace) HasSubspace(name string) bool {
	if name == "" || name == DefaultSubspace {
		return true
	}
	if !w.SubspacesEnabled {
		return false
	}
	for _, s := range w.SubspaceNames {
		if s == name {
			return true
		}
	}
	return false
}

// LockfilePath returns the committed lockfile of a subspace.
func (w *RushWorkspace) LockfilePath(subspace string) string {
	if !w.SubspacesEnabled {
		return filepath.Join(w.RootDir, "common", "config", "rush", LockfileName)
	}
	return filepath.Join(w.RootDir, "common", "config", "subspaces", subspaceOrDefault(subspace), LockfileName)
}

// ImporterRoot returns the folder the importer keys of a subspace lockfile are relative to.
func (w *RushWorkspace) ImporterRoot(subspace string) string {
	if !w.SubspacesEnabled {
		return filepath.Join(w.RootDir, "common", "temp")
	}
	return filepath.Join(w.RootDir, "common", "temp", subspaceOrDefault(subspace))
}

// PnpmWorkspace is a directory with pnpm-workspace.yaml, or a lone project with pnpm-lock.yaml.
type PnpmWorkspace struct {
	RootDir string
	// ManifestPath is the pnpm-workspace.yaml path; empty for a single project.
	ManifestPath string
	ProjectList  []Project
}

// Kind implements Workspace.
func (w *PnpmWorkspace) Kind() WorkspaceKind { return WorkspacePnpm }

// Root implements Workspace.
func (w *PnpmWorkspace) Root() string { return w.RootDir }

// Projects implements Workspace.
func (w *PnpmWorkspace) Projects() []Project { return w.ProjectList }

func (w *PnpmWorkspace) sealed() {}

// LockfilePath returns the workspace lockfile.
func (w *PnpmWorkspace) LockfilePath() string {
	return filepath.Join(w.RootDir, LockfileName)
}

// ProjectForPath returns the project with the deepest folder that contains dir.
func ProjectForPath(ws Workspace, dir string) (Project, bool) {
	dir = filepath.Clean(dir)
	var (
		best  Project
		found bool
	)
	for _, p := range ws.Projects() {
		if !containsPath(p.Folder, dir) {
			continue
		}
		if !found || len(p.Folder) > len(best.Folder) {
			best, found = p, true
		}
	}
	return best, found
}

func containsPath(folder, dir string) bool {
	folder = filepath.Clean(folder)
	if dir == folder {
		return true
	}
	if folder == string(filepath.Separator) {
		return strings.HasPrefix(dir, folder)
	}
	return strings.HasPrefix(dir, folder+string(filepath.Separator))
}

func subspaceOrDefault(subspace string) string {
	if subspace == "" {
		return DefaultSubspace
	}
	return subspace
}

// Package workspace detects the Rush monorepo or PNPM workspace that owns a directory.
package workspace

import (
	"errors"
	"path/filepath"

	"go.trai.ch/lfx/internal/adapters/fs"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceDetector = (*Detector)(nil)

// Detector implements ports.WorkspaceDetector on top of a FileSystem.
type Detector struct {
	fs fs.FileSystem
}

// NewDetector creates a new Detector reading through fsys.
func NewDetector(fsys fs.FileSystem) *Detector {
	return &Detector{fs: fsys}
}

// Detect walks up from cwd. A rush.json in any parent wins; otherwise the nearest
// pnpm-workspace.yaml, and otherwise the nearest pnpm-lock.yaml, marks the workspace root.
func (d *Detector) Detect(cwd, subspace string) (domain.Workspace, error) {
	start, err := d.fs.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "path", cwd)
	}

	var workspaceRoot, lockfileRoot string
	currentDir := start
	for {
		if d.exists(filepath.Join(currentDir, domain.RushFileName)) {
			return d.loadRush(currentDir, subspace)
		}
		if workspaceRoot == "" && d.exists(filepath.Join(currentDir, domain.PnpmWorkspaceFileName)) {
			workspaceRoot = currentDir
		}
		if lockfileRoot == "" && d.exists(filepath.Join(currentDir, domain.LockfileName)) {
			lockfileRoot = currentDir
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if subspace != "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSubspace, "subspaces require a Rush monorepo"), "subspace", subspace)
	}

	switch {
	case workspaceRoot != "":
		return d.loadPnpmWorkspace(workspaceRoot)
	case lockfileRoot != "":
		return d.loadPnpmProject(lockfileRoot)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrWorkspaceNotFound, "no workspace above working directory"), "path", start)
	}
}

func (d *Detector) exists(path string) bool {
	_, err := d.fs.Stat(path)
	return err == nil
}

func (d *Detector) readConfig(path string) ([]byte, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrWorkspaceConfigReadFailed, err), "path", path)
	}
	return data, nil
}

func parseError(path string, cause error) error {
	return zerr.With(errors.Join(domain.ErrWorkspaceConfigParseFailed, cause), "path", path)
}

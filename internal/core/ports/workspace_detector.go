package ports

import "go.trai.ch/lfx/internal/core/domain"

// WorkspaceDetector finds the monorepo that owns a directory.
//
//go:generate mockgen -source=workspace_detector.go -destination=mocks/mock_workspace_detector.go -package=mocks
type WorkspaceDetector interface {
	// Detect walks up from cwd and returns the Rush or PNPM workspace it belongs to.
	// A non-empty subspace must name a subspace of a Rush workspace.
	Detect(cwd, subspace string) (domain.Workspace, error)
}

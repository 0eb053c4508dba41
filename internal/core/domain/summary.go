package domain

// ProjectDependencies pairs a project with its direct dependency declarations.
type ProjectDependencies struct {
	Project      Project                `json:"project"`
	Dependencies DependencyDeclarations `json:"dependencies"`
}

// LockfileInfo summarises the lockfile that applies to a session.
type LockfileInfo struct {
	WorkspaceKind   WorkspaceKind `json:"workspaceKind"`
	WorkspaceRoot   string        `json:"workspaceRoot"`
	Project         *Project      `json:"project,omitempty"`
	Subspace        string        `json:"subspace,omitempty"`
	LockfilePath    string        `json:"lockfilePath"`
	LockfileVersion string        `json:"lockfileVersion"`
	MajorVersion    int           `json:"majorVersion"`
	Importers       int           `json:"importers"`
	Packages        int           `json:"packages"`
	Digest          string        `json:"digest"`
}

package domain

// Session is the state of one lfx invocation: where it runs, which workspace and project that
// is, and which lockfile applies. It is built once at the CLI boundary and passed explicitly.
type Session struct {
	CurrentDir string
	Workspace  Workspace

	// Project is nil when the current directory is not inside any workspace project.
	Project *Project

	Subspace     string
	LockfilePath string
	ImporterRoot string
}

// ProjectsSharingLockfile returns the projects whose importers live in the session lockfile.
func (s *Session) ProjectsSharingLockfile() []Project {
	rush, ok := s.Workspace.(*RushWorkspace)
	if !ok || !rush.SubspacesEnabled {
		return s.Workspace.Projects()
	}

	subspace := subspaceOrDefault(s.Subspace)
	var projects []Project
	for _, p := range rush.Projects() {
		if subspaceOrDefault(p.Subspace) == subspace {
			projects = append(projects, p)
		}
	}
	return projects
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedLockfileVersion is returned when the lockfile major version is not 5 or 6.
	ErrUnsupportedLockfileVersion = zerr.New("the current lockfile version is not supported")

	// ErrLockfileNotFound is returned when the lockfile does not exist at the given path.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrLockfileReadFailed is returned when the lockfile exists but cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when the lockfile is not valid YAML.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrLockfileEncodeFailed is returned when a lockfile cannot be serialized.
	ErrLockfileEncodeFailed = zerr.New("failed to encode lockfile")

	// ErrWorkspaceNotFound is returned when no rush.json, pnpm-workspace.yaml or pnpm-lock.yaml
	// exists in the working directory or any of its parents.
	ErrWorkspaceNotFound = zerr.New("could not find rush.json, pnpm-workspace.yaml or pnpm-lock.yaml")

	// ErrWorkspaceConfigReadFailed is returned when a workspace configuration file cannot be read.
	ErrWorkspaceConfigReadFailed = zerr.New("failed to read workspace configuration")

	// ErrWorkspaceConfigParseFailed is returned when a workspace configuration file is malformed.
	ErrWorkspaceConfigParseFailed = zerr.New("failed to parse workspace configuration")

	// ErrUnknownSubspace is returned when a subspace is requested that rush.json does not define.
	ErrUnknownSubspace = zerr.New("unknown subspace")

	// ErrProjectNotFound is returned when the working directory is not inside any workspace project.
	ErrProjectNotFound = zerr.New("specify a subspace or cd into a project")

	// ErrMissingDependencyName is returned when find is called without a dependency name.
	ErrMissingDependencyName = zerr.New("missing dependency name")

	// ErrReportRenderFailed is returned when a report cannot be written.
	ErrReportRenderFailed = zerr.New("failed to render report")
)

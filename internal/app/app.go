// Package app implements the application layer for lfx.
package app

import (
	"context"
	"io"

	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	detector ports.WorkspaceDetector
	resolver ports.DependencyResolver
	encoder  ports.LockfileEncoder
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	detector ports.WorkspaceDetector,
	resolver ports.DependencyResolver,
	encoder ports.LockfileEncoder,
	logger ports.Logger,
) *App {
	return &App{
		detector: detector,
		resolver: resolver,
		encoder:  encoder,
		logger:   logger,
	}
}

// NewSession detects the workspace that owns cwd and decides which lockfile applies.
// In a Rush repository the subspace flag wins over the subspace of the current project.
func (a *App) NewSession(cwd, subspace string) (*domain.Session, error) {
	ws, err := a.detector.Detect(cwd, subspace)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to detect workspace")
	}

	session := &domain.Session{
		CurrentDir: cwd,
		Workspace:  ws,
		Subspace:   subspace,
	}
	if project, ok := domain.ProjectForPath(ws, cwd); ok {
		session.Project = &project
	}

	switch ws := ws.(type) {
	case *domain.RushWorkspace:
		if session.Subspace == "" && session.Project != nil && ws.SubspacesEnabled {
			session.Subspace = session.Project.Subspace
		}
		session.LockfilePath = ws.LockfilePath(session.Subspace)
		session.ImporterRoot = ws.ImporterRoot(session.Subspace)
	case *domain.PnpmWorkspace:
		session.LockfilePath = ws.LockfilePath()
		session.ImporterRoot = ws.Root()
	}

	return session, nil
}

// Deps returns the direct dependencies of the session project, or with all set, of every
// project whose importer lives in the session lockfile.
func (a *App) Deps(ctx context.Context, session *domain.Session, all bool) ([]domain.ProjectDependencies, error) {
	projects, err := targetProjects(session, all)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ProjectDependencies, len(projects))
	g, ctx := errgroup.WithContext(ctx)
	for i, project := range projects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			deps, err := a.resolver.ResolveDirectDependencies(session.LockfilePath, session.ImporterRoot, project.Folder)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve project"), "project", project.Name)
			}
			results[i] = domain.ProjectDependencies{Project: project, Dependencies: deps}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "failed to resolve direct dependencies")
	}
	return results, nil
}

// Find reports every occurrence of the package named name in the dependency tree of the
// session project, or with all set, of every project sharing the session lockfile.
func (a *App) Find(
	ctx context.Context,
	session *domain.Session,
	name string,
	all bool,
) ([]domain.DependencyOccurrence, error) {
	if name == "" {
		return nil, domain.ErrMissingDependencyName
	}

	projects, err := targetProjects(session, all)
	if err != nil {
		return nil, err
	}

	doc, err := a.resolver.LoadNormalized(session.LockfilePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lockfile")
	}

	occurrences := []domain.DependencyOccurrence{}
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a.logger.Info("finding " + name + " from " + project.Folder)
		direct := domain.DirectDependencies(doc, session.ImporterRoot, project.Folder)
		occurrences = append(occurrences, domain.FindOccurrences(doc, project.Name, direct, name)...)
	}
	return occurrences, nil
}

// Normalize writes the session lockfile, or lockfileOverride when set, with every dependency
// path rewritten to the v5 format.
func (a *App) Normalize(w io.Writer, session *domain.Session, lockfileOverride string) error {
	path := session.LockfilePath
	if lockfileOverride != "" {
		path = lockfileOverride
	}

	doc, err := a.resolver.LoadNormalized(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load lockfile")
	}

	if err := a.encoder.Encode(w, doc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write normalized lockfile"), "path", path)
	}
	return nil
}

// Info summarises the workspace and the lockfile of a session.
func (a *App) Info(session *domain.Session) (domain.LockfileInfo, error) {
	doc, err := a.resolver.LoadNormalized(session.LockfilePath)
	if err != nil {
		return domain.LockfileInfo{}, zerr.Wrap(err, "failed to load lockfile")
	}

	major, err := domain.ShrinkwrapFileMajorVersion(doc.Version)
	if err != nil {
		return domain.LockfileInfo{}, err
	}

	return domain.LockfileInfo{
		WorkspaceKind:   session.Workspace.Kind(),
		WorkspaceRoot:   session.Workspace.Root(),
		Project:         session.Project,
		Subspace:        session.Subspace,
		LockfilePath:    session.LockfilePath,
		LockfileVersion: doc.Version.Raw,
		MajorVersion:    major,
		Importers:       len(doc.Importers),
		Packages:        len(doc.Packages),
		Digest:          doc.Digest,
	}, nil
}

func targetProjects(session *domain.Session, all bool) ([]domain.Project, error) {
	if all {
		return session.ProjectsSharingLockfile(), nil
	}
	if session.Project == nil {
		err := zerr.Wrap(domain.ErrProjectNotFound, "no project contains the current directory")
		return nil, zerr.With(err, "cwd", session.CurrentDir)
	}
	return []domain.Project{*session.Project}, nil
}

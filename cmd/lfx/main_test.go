package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfx/internal/adapters/fs"
	"go.trai.ch/lfx/internal/adapters/lockfile"
	"go.trai.ch/lfx/internal/adapters/logger"
	"go.trai.ch/lfx/internal/adapters/workspace"
	"go.trai.ch/lfx/internal/app"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/core/ports/mocks"
	"go.trai.ch/lfx/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const workspaceLockfile = `lockfileVersion: '6.0'

importers:

  .: {}

  apps/web:
    dependencies:
      react:
        specifier: ^18.2.0
        version: 18.2.0

packages:

  /js-tokens@4.0.0:
    resolution: {integrity: sha512-jt}

  /loose-envify@1.4.0:
    resolution: {integrity: sha512-le}
    hasBin: true
    dependencies:
      js-tokens: 4.0.0

  /react@18.2.0:
    resolution: {integrity: sha512-r}
    dependencies:
      loose-envify: 1.4.0
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'apps/*'\n")
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"monorepo","private":true}`)
	writeFile(t, filepath.Join(root, "apps", "web", "package.json"), `{"name":"web"}`)
	writeFile(t, filepath.Join(root, "pnpm-lock.yaml"), workspaceLockfile)
	return root
}

func realProvider(_ context.Context) (*app.Components, func(), error) {
	log := logger.New()
	fsys := fs.NewOSFS()
	reader := lockfile.NewReader(fsys, log)
	application := app.New(workspace.NewDetector(fsys), resolver.New(reader, log), reader, log)
	return &app.Components{App: application, Logger: log}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, realProvider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "lfx version dev")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	detector := mocks.NewMockWorkspaceDetector(ctrl)
	detector.EXPECT().Detect(gomock.Any(), "").Return(nil, domain.ErrWorkspaceNotFound)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	})

	application := app.New(
		detector,
		mocks.NewMockDependencyResolver(ctrl),
		mocks.NewMockLockfileEncoder(ctrl),
		mockLogger,
	)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"deps", "-C", t.TempDir()}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

func TestRun_Deps(t *testing.T) {
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"deps", "--json", "-C", filepath.Join(root, "apps", "web")},
		stdout, stderr, realProvider)
	require.Equal(t, 0, exitCode, stderr.String())

	var got []domain.ProjectDependencies
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []domain.ProjectDependencies{{
		Project:      domain.Project{Name: "web", Folder: filepath.Join(root, "apps", "web")},
		Dependencies: domain.DependencyDeclarations{"react": {Specifier: "^18.2.0", Version: "18.2.0"}},
	}}, got)
	assert.Contains(t, stderr.String(), "reading "+filepath.Join(root, "pnpm-lock.yaml"))
}

func TestRun_DepsAll(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"deps", "--all", "--json", "-C", root}, stdout, stderr, realProvider)
	require.Equal(t, 0, exitCode, stderr.String())

	var got []domain.ProjectDependencies
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	names := make([]string, 0, len(got))
	for _, deps := range got {
		names = append(names, deps.Project.Name)
	}
	assert.ElementsMatch(t, []string{"monorepo", "web"}, names)

	reading := "reading " + filepath.Join(root, "pnpm-lock.yaml") + "\n"
	assert.Equal(t, strings.Repeat(reading, 2), stderr.String())
}

func TestRun_FindDependency(t *testing.T) {
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"find-dependency", "js-tokens", "--all", "--json", "-C", root},
		stdout, new(bytes.Buffer), realProvider)
	require.Equal(t, 0, exitCode)

	var got []domain.DependencyOccurrence
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []domain.DependencyOccurrence{{
		Project:        "web",
		Name:           "js-tokens",
		Version:        "4.0.0",
		DependencyPath: "/js-tokens/4.0.0",
		Chain:          []string{"/react/18.2.0", "/loose-envify/1.4.0", "/js-tokens/4.0.0"},
	}}, got)
}

func TestRun_FindNotInTree(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"find", "left-pad", "-C", filepath.Join(root, "apps", "web")},
		stdout, new(bytes.Buffer), realProvider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "left-pad is not in the dependency tree\n", stdout.String())
}

func TestRun_DepsOutsideProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rush.json"), `{"projects":[{"packageName":"web","projectFolder":"apps/web"}]}`)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"deps", "-C", root}, new(bytes.Buffer), stderr, realProvider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "specify a subspace or cd into a project")
}

func TestRun_Normalize(t *testing.T) {
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(),
		[]string{"normalize", "--lockfile", filepath.Join(root, "pnpm-lock.yaml")},
		stdout, new(bytes.Buffer), realProvider)
	require.Equal(t, 0, exitCode)

	out := stdout.String()
	assert.Contains(t, out, "lockfileVersion: '6.0'")
	assert.Contains(t, out, "/react/18.2.0:")
	assert.NotContains(t, out, "/react@18.2.0:")
}

func TestRun_Info(t *testing.T) {
	root := setupWorkspace(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"info", "--json", "-C", root}, stdout, new(bytes.Buffer), realProvider)
	require.Equal(t, 0, exitCode)

	var got domain.LockfileInfo
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, domain.WorkspacePnpm, got.WorkspaceKind)
	assert.Equal(t, root, got.WorkspaceRoot)
	assert.Equal(t, "6.0", got.LockfileVersion)
	assert.Equal(t, 6, got.MajorVersion)
	assert.Equal(t, 2, got.Importers)
	assert.Equal(t, 3, got.Packages)
	assert.Len(t, got.Digest, 16)
}

func TestRun_UnsupportedLockfile(t *testing.T) {
	root := setupWorkspace(t)
	writeFile(t, filepath.Join(root, "pnpm-lock.yaml"), "lockfileVersion: '9.0'\n")
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"info", "-C", root}, new(bytes.Buffer), stderr, realProvider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "the current lockfile version is not supported")
}

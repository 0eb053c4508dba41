package workspace_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfx/internal/adapters/fs"
	"go.trai.ch/lfx/internal/adapters/workspace"
	"go.trai.ch/lfx/internal/core/domain"
)

const rushJSON = `/**
 * Rush configuration.
 */
{
  "$schema": "https://developer.microsoft.com/json-schemas/rush/v5/rush.schema.json",
  "rushVersion": "5.112.0",
  "pnpmVersion": "8.15.0",
  "projects": [
    // Applications
    {
      "packageName": "@acme/web",
      "projectFolder": "apps/web",
    },
    {
      "packageName": "@acme/tools",
      "projectFolder": "tools/cli",
      "subspaceName": "tools"
    },
    {
      "packageName": "@acme/api",
      "projectFolder": "apps/api"
    },
  ]
}
`

const subspacesJSON = `{
  // Enable subspaces
  "subspacesEnabled": true,
  "subspaceNames": ["default", "tools"]
}
`

func abs(p string) string {
	return filepath.FromSlash(p)
}

func detect(t *testing.T, files fstest.MapFS, cwd, subspace string) (domain.Workspace, error) {
	t.Helper()
	detector := workspace.NewDetector(fs.NewMapFSAdapter(abs("/"), files))
	return detector.Detect(abs(cwd), subspace)
}

func TestDetect_Rush(t *testing.T) {
	files := fstest.MapFS{
		"repo/rush.json":                       {Data: []byte(rushJSON)},
		"repo/apps/web/package.json":           {Data: []byte(`{"name":"@acme/web"}`)},
		"repo/apps/web/src/index.ts":           {Data: []byte("export {}")},
		"repo/common/temp/pnpm-lock.yaml":      {Data: []byte("lockfileVersion: 5.4\n")},
		"repo/common/temp/pnpm-workspace.yaml": {Data: []byte("packages: []\n")},
	}

	ws, err := detect(t, files, "/repo/apps/web/src", "")
	require.NoError(t, err)

	rush, ok := ws.(*domain.RushWorkspace)
	require.True(t, ok)
	assert.Equal(t, abs("/repo"), rush.Root())
	assert.Equal(t, abs("/repo/rush.json"), rush.RushJSONPath)
	assert.False(t, rush.SubspacesEnabled)
	assert.Equal(t, []domain.Project{
		{Name: "@acme/api", Folder: abs("/repo/apps/api")},
		{Name: "@acme/web", Folder: abs("/repo/apps/web")},
		{Name: "@acme/tools", Folder: abs("/repo/tools/cli"), Subspace: "tools"},
	}, rush.Projects())
	assert.Equal(t, abs("/repo/common/config/rush/pnpm-lock.yaml"), rush.LockfilePath(""))
}

func TestDetect_RushWinsOverNearerPnpmFiles(t *testing.T) {
	files := fstest.MapFS{
		"repo/rush.json":                       {Data: []byte(rushJSON)},
		"repo/common/temp/pnpm-lock.yaml":      {Data: []byte("lockfileVersion: 5.4\n")},
		"repo/common/temp/pnpm-workspace.yaml": {Data: []byte("packages: []\n")},
	}

	ws, err := detect(t, files, "/repo/common/temp", "")
	require.NoError(t, err)
	assert.Equal(t, domain.WorkspaceRush, ws.Kind())
}

func TestDetect_RushSubspaces(t *testing.T) {
	files := fstest.MapFS{
		"repo/rush.json":                         {Data: []byte(rushJSON)},
		"repo/common/config/rush/subspaces.json": {Data: []byte(subspacesJSON)},
	}

	ws, err := detect(t, files, "/repo", "tools")
	require.NoError(t, err)

	rush := ws.(*domain.RushWorkspace)
	assert.True(t, rush.SubspacesEnabled)
	assert.Equal(t, []string{"default", "tools"}, rush.SubspaceNames)
	assert.Equal(t, abs("/repo/common/config/subspaces/tools/pnpm-lock.yaml"), rush.LockfilePath("tools"))

	_, err = detect(t, files, "/repo", "docs")
	require.ErrorIs(t, err, domain.ErrUnknownSubspace)
}

func TestDetect_RushUnknownSubspaceWithoutSubspaces(t *testing.T) {
	files := fstest.MapFS{"repo/rush.json": {Data: []byte(rushJSON)}}

	_, err := detect(t, files, "/repo", "tools")
	require.ErrorIs(t, err, domain.ErrUnknownSubspace)

	_, err = detect(t, files, "/repo", domain.DefaultSubspace)
	require.NoError(t, err)
}

func TestDetect_RushMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{ projects: "},
		{name: "not an object", data: "[]"},
		{name: "missing folder", data: `{"projects":[{"packageName":"a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := detect(t, fstest.MapFS{"repo/rush.json": {Data: []byte(tt.data)}}, "/repo", "")
			require.ErrorIs(t, err, domain.ErrWorkspaceConfigParseFailed)
		})
	}
}

func TestDetect_PnpmWorkspace(t *testing.T) {
	files := fstest.MapFS{
		"ws/pnpm-workspace.yaml": {Data: []byte(`packages:
  - 'apps/*'
  - libs/**
  - '!libs/internal/**'
`)},
		"ws/package.json":                               {Data: []byte(`{"name":"monorepo","private":true}`)},
		"ws/pnpm-lock.yaml":                             {Data: []byte("lockfileVersion: '6.0'\n")},
		"ws/apps/web/package.json":                      {Data: []byte(`{"name":"web"}`)},
		"ws/apps/nameless/package.json":                 {Data: []byte(`{"private":true}`)},
		"ws/apps/web/node_modules/react/package.json":   {Data: []byte(`{"name":"react"}`)},
		"ws/libs/ui/button/package.json":                {Data: []byte(`{"name":"@ws/button"}`)},
		"ws/libs/internal/secret/package.json":          {Data: []byte(`{"name":"secret"}`)},
		"ws/libs/ui/button/node_modules/x/package.json": {Data: []byte(`{"name":"x"}`)},
		"ws/docs/package.json":                          {Data: []byte(`{"name":"docs"}`)},
	}

	ws, err := detect(t, files, "/ws/apps/web", "")
	require.NoError(t, err)

	pnpm, ok := ws.(*domain.PnpmWorkspace)
	require.True(t, ok)
	assert.Equal(t, abs("/ws"), pnpm.Root())
	assert.Equal(t, abs("/ws/pnpm-workspace.yaml"), pnpm.ManifestPath)
	assert.Equal(t, abs("/ws/pnpm-lock.yaml"), pnpm.LockfilePath())
	assert.Equal(t, []domain.Project{
		{Name: "monorepo", Folder: abs("/ws")},
		{Name: "nameless", Folder: abs("/ws/apps/nameless")},
		{Name: "web", Folder: abs("/ws/apps/web")},
		{Name: "@ws/button", Folder: abs("/ws/libs/ui/button")},
	}, pnpm.Projects())
}

func TestDetect_PnpmWorkspaceWinsOverNearerLockfile(t *testing.T) {
	files := fstest.MapFS{
		"ws/pnpm-workspace.yaml": {Data: []byte("packages:\n  - pkg\n")},
		"ws/pkg/package.json":    {Data: []byte(`{"name":"pkg"}`)},
		"ws/pkg/pnpm-lock.yaml":  {Data: []byte("lockfileVersion: 5.4\n")},
	}

	ws, err := detect(t, files, "/ws/pkg", "")
	require.NoError(t, err)
	assert.Equal(t, abs("/ws"), ws.Root())
}

func TestDetect_PnpmSingleProject(t *testing.T) {
	files := fstest.MapFS{
		"app/package.json":   {Data: []byte(`{"name":"solo"}`)},
		"app/pnpm-lock.yaml": {Data: []byte("lockfileVersion: 5.4\n")},
	}

	ws, err := detect(t, files, "/app/src", "")
	require.NoError(t, err)

	pnpm := ws.(*domain.PnpmWorkspace)
	assert.Empty(t, pnpm.ManifestPath)
	assert.Equal(t, []domain.Project{{Name: "solo", Folder: abs("/app")}}, pnpm.Projects())
}

func TestDetect_PnpmRejectsSubspace(t *testing.T) {
	files := fstest.MapFS{"app/pnpm-lock.yaml": {Data: []byte("lockfileVersion: 5.4\n")}}

	_, err := detect(t, files, "/app", "tools")
	require.ErrorIs(t, err, domain.ErrUnknownSubspace)
}

func TestDetect_PnpmMalformedManifest(t *testing.T) {
	files := fstest.MapFS{"ws/pnpm-workspace.yaml": {Data: []byte("packages: {a: [\n")}}

	_, err := detect(t, files, "/ws", "")
	require.ErrorIs(t, err, domain.ErrWorkspaceConfigParseFailed)
}

func TestDetect_NotFound(t *testing.T) {
	_, err := detect(t, fstest.MapFS{"somewhere/README.md": {Data: []byte("hi")}}, "/somewhere", "")
	require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

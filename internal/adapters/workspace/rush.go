package workspace

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/zerr"
)

// subspacesConfigPath is relative to the repository root.
var subspacesConfigPath = filepath.Join("common", "config", "rush", "subspaces.json")

func (d *Detector) loadRush(root, subspace string) (*domain.RushWorkspace, error) {
	rushJSONPath := filepath.Join(root, domain.RushFileName)
	config, err := d.readRushConfig(rushJSONPath)
	if err != nil {
		return nil, err
	}

	ws := &domain.RushWorkspace{
		RootDir:      root,
		RushJSONPath: rushJSONPath,
	}

	var projectErr error
	config.Get("projects").ForEach(func(_, project gjson.Result) bool {
		name := project.Get("packageName").String()
		folder := project.Get("projectFolder").String()
		if name == "" || folder == "" {
			projectErr = parseError(rushJSONPath, zerr.New("project entries need packageName and projectFolder"))
			return false
		}
		ws.ProjectList = append(ws.ProjectList, domain.Project{
			Name:     name,
			Folder:   filepath.Join(root, filepath.FromSlash(folder)),
			Subspace: project.Get("subspaceName").String(),
		})
		return true
	})
	if projectErr != nil {
		return nil, projectErr
	}
	slices.SortFunc(ws.ProjectList, func(a, b domain.Project) int {
		return strings.Compare(a.Folder, b.Folder)
	})

	if err := d.loadSubspaces(ws); err != nil {
		return nil, err
	}

	if !ws.HasSubspace(subspace) {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSubspace, "subspace is not defined in "+subspacesConfigPath), "subspace", subspace)
	}

	return ws, nil
}

func (d *Detector) loadSubspaces(ws *domain.RushWorkspace) error {
	path := filepath.Join(ws.RootDir, subspacesConfigPath)
	if _, err := d.fs.Stat(path); errors.Is(err, iofs.ErrNotExist) {
		return nil
	}

	config, err := d.readRushConfig(path)
	if err != nil {
		return err
	}

	ws.SubspacesEnabled = config.Get("subspacesEnabled").Bool()
	for _, name := range config.Get("subspaceNames").Array() {
		ws.SubspaceNames = append(ws.SubspaceNames, name.String())
	}
	return nil
}

// readRushConfig reads a Rush JSON file, which may contain comments and trailing commas.
func (d *Detector) readRushConfig(path string) (gjson.Result, error) {
	data, err := d.readConfig(path)
	if err != nil {
		return gjson.Result{}, err
	}

	standard, err := hujson.Standardize(data)
	if err != nil {
		return gjson.Result{}, parseError(path, err)
	}
	if !gjson.ValidBytes(standard) {
		return gjson.Result{}, parseError(path, zerr.New("invalid JSON"))
	}

	result := gjson.ParseBytes(standard)
	if !result.IsObject() {
		return gjson.Result{}, parseError(path, zerr.New("expected a JSON object"))
	}
	return result, nil
}

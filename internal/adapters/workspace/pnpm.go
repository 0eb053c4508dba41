package workspace

import (
	"maps"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/gjson"
	"go.trai.ch/lfx/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// manifest represents the structure of pnpm-workspace.yaml.
type manifest struct {
	Packages []string `yaml:"packages"`
}

// ignoredPackagePattern is always excluded from workspace globs.
const ignoredPackagePattern = "**/node_modules/**"

func (d *Detector) loadPnpmWorkspace(root string) (*domain.PnpmWorkspace, error) {
	manifestPath := filepath.Join(root, domain.PnpmWorkspaceFileName)
	data, err := d.readConfig(manifestPath)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, parseError(manifestPath, err)
	}

	includes, excludes := splitPatterns(m.Packages)
	excludes = append(excludes, ignoredPackagePattern)

	folders := map[string]bool{root: true}
	for _, include := range includes {
		matches, err := d.fs.Glob(root, path.Join(include, domain.PackageJSONFileName))
		if err != nil {
			return nil, parseError(manifestPath, err)
		}
		for _, match := range matches {
			folder := filepath.Dir(match)
			if !isExcluded(root, folder, excludes) {
				folders[folder] = true
			}
		}
	}

	ws := &domain.PnpmWorkspace{RootDir: root, ManifestPath: manifestPath}
	for _, folder := range slices.Sorted(maps.Keys(folders)) {
		ws.ProjectList = append(ws.ProjectList, domain.Project{
			Name:   d.packageName(folder),
			Folder: folder,
		})
	}
	return ws, nil
}

func (d *Detector) loadPnpmProject(root string) (*domain.PnpmWorkspace, error) {
	return &domain.PnpmWorkspace{
		RootDir:     root,
		ProjectList: []domain.Project{{Name: d.packageName(root), Folder: root}},
	}, nil
}

// packageName reads the name field of package.json, falling back to the folder name.
func (d *Detector) packageName(folder string) string {
	data, err := d.fs.ReadFile(filepath.Join(folder, domain.PackageJSONFileName))
	if err == nil {
		if name := gjson.GetBytes(data, "name").String(); name != "" {
			return name
		}
	}
	return filepath.Base(folder)
}

func splitPatterns(patterns []string) (includes, excludes []string) {
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(strings.TrimSpace(pattern), "./")
		if pattern == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(pattern, "!"); ok {
			excludes = append(excludes, strings.TrimPrefix(rest, "./"))
			continue
		}
		includes = append(includes, pattern)
	}
	return includes, excludes
}

func isExcluded(root, folder string, excludes []string) bool {
	rel, err := filepath.Rel(root, folder)
	if err != nil {
		return true
	}
	rel = filepath.ToSlash(rel)
	for _, exclude := range excludes {
		if ok, _ := doublestar.Match(exclude, rel); ok {
			return true
		}
	}
	return false
}

// Package report renders command results as lipgloss tables or indented JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/lfx/internal/core/domain"
	"go.trai.ch/lfx/internal/ui/output"
	"go.trai.ch/lfx/internal/ui/style"
)

// Renderer writes reports to a single output stream.
type Renderer struct {
	w        io.Writer
	jsonMode bool
	styles   style.Table
}

// New creates a Renderer writing to w. In JSON mode every report is a single indented document.
func New(w io.Writer, jsonMode bool) *Renderer {
	return &Renderer{
		w:        w,
		jsonMode: jsonMode,
		styles:   style.NewTable(output.NewRenderer(w)),
	}
}

// Dependencies renders the direct dependencies of one or more projects.
func (r *Renderer) Dependencies(results []domain.ProjectDependencies) error {
	if r.jsonMode {
		if results == nil {
			results = []domain.ProjectDependencies{}
		}
		return r.writeJSON(results)
	}

	var b strings.Builder
	for i, result := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.styles.Title.Render(projectTitle(result.Project)) + "\n")

		if len(result.Dependencies) == 0 {
			b.WriteString(r.styles.Muted.Render("no direct dependencies") + "\n")
			continue
		}

		rows := make([][]string, 0, len(result.Dependencies))
		for _, name := range slices.Sorted(maps.Keys(result.Dependencies)) {
			decl := result.Dependencies[name]
			rows = append(rows, []string{name, decl.Specifier, decl.Version})
		}
		b.WriteString(r.table([]string{"Package", "Specifier", "Version"}, rows) + "\n")
	}

	return r.write(b.String())
}

// Occurrences renders where the dependency called name appears.
func (r *Renderer) Occurrences(name string, occurrences []domain.DependencyOccurrence) error {
	if r.jsonMode {
		if occurrences == nil {
			occurrences = []domain.DependencyOccurrence{}
		}
		return r.writeJSON(occurrences)
	}

	if len(occurrences) == 0 {
		return r.write(r.styles.Muted.Render(name+" is not in the dependency tree") + "\n")
	}

	rows := make([][]string, 0, len(occurrences))
	for _, occ := range occurrences {
		via := strings.Join(occ.Chain, " "+style.Arrow+" ")
		if occ.Direct {
			via = "direct"
		}
		rows = append(rows, []string{occ.Project, occ.Version, occ.DependencyPath, via})
	}
	return r.write(r.table([]string{"Project", "Version", "Dependency path", "Via"}, rows) + "\n")
}

// Info renders a lockfile summary.
func (r *Renderer) Info(info domain.LockfileInfo) error {
	if r.jsonMode {
		return r.writeJSON(info)
	}

	rows := [][]string{
		{"Workspace", string(info.WorkspaceKind) + " " + info.WorkspaceRoot},
	}
	if info.Project != nil {
		rows = append(rows, []string{"Project", projectTitle(*info.Project)})
	}
	if info.Subspace != "" {
		rows = append(rows, []string{"Subspace", info.Subspace})
	}
	rows = append(rows,
		[]string{"Lockfile", info.LockfilePath},
		[]string{"Version", fmt.Sprintf("%s (v%d)", info.LockfileVersion, info.MajorVersion)},
		[]string{"Importers", strconv.Itoa(info.Importers)},
		[]string{"Packages", strconv.Itoa(info.Packages)},
		[]string{"Digest", info.Digest},
	)
	return r.write(r.table(nil, rows) + "\n")
}

func (r *Renderer) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Cell
		}).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	return t.String()
}

func (r *Renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrReportRenderFailed, err)
	}
	return r.write(string(data) + "\n")
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return errors.Join(domain.ErrReportRenderFailed, err)
	}
	return nil
}

func projectTitle(p domain.Project) string {
	if p.Subspace != "" {
		return fmt.Sprintf("%s (%s, subspace %s)", p.Name, p.Folder, p.Subspace)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Folder)
}

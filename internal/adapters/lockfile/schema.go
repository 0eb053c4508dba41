package lockfile

import (
	"strings"

	"go.trai.ch/lfx/internal/core/domain"
	"gopkg.in/yaml.v3"
)

const (
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

// Document represents the top-level structure of pnpm-lock.yaml.
// Single-project lockfiles keep the root declarations at the top level instead of under importers.
type Document struct {
	LockfileVersion      VersionDTO                `yaml:"lockfileVersion"`
	Specifiers           map[string]string         `yaml:"specifiers,omitempty"`
	Dependencies         map[string]DeclarationDTO `yaml:"dependencies,omitempty"`
	DevDependencies      map[string]DeclarationDTO `yaml:"devDependencies,omitempty"`
	OptionalDependencies map[string]DeclarationDTO `yaml:"optionalDependencies,omitempty"`
	Importers            map[string]ImporterDTO    `yaml:"importers,omitempty"`
	Packages             map[string]PackageDTO     `yaml:"packages,omitempty"`
	Extra                map[string]any            `yaml:",inline"`
}

// ImporterDTO represents one entry of the importers section.
type ImporterDTO struct {
	Specifiers           map[string]string         `yaml:"specifiers,omitempty"`
	Dependencies         map[string]DeclarationDTO `yaml:"dependencies,omitempty"`
	DevDependencies      map[string]DeclarationDTO `yaml:"devDependencies,omitempty"`
	OptionalDependencies map[string]DeclarationDTO `yaml:"optionalDependencies,omitempty"`
	Extra                map[string]any            `yaml:",inline"`
}

// PackageDTO represents one entry of the packages section.
type PackageDTO struct {
	Dependencies         map[string]string `yaml:"dependencies,omitempty"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies,omitempty"`
	Extra                map[string]any    `yaml:",inline"`
}

// VersionDTO keeps the lockfileVersion scalar together with its YAML type.
type VersionDTO struct {
	Raw     string
	Numeric bool
}

// UnmarshalYAML records whether the version was written as a number or a string.
func (v *VersionDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"lockfileVersion must be a scalar"}}
	}
	v.Raw = node.Value
	tag := node.ShortTag()
	v.Numeric = tag == tagInt || tag == tagFloat
	return nil
}

// MarshalYAML writes numeric versions bare and string versions single-quoted.
func (v VersionDTO) MarshalYAML() (any, error) {
	if !v.Numeric {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Style: yaml.SingleQuotedStyle, Value: v.Raw}, nil
	}
	tag := tagInt
	if strings.Contains(v.Raw, ".") {
		tag = tagFloat
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Raw}, nil
}

// DeclarationDTO is an importer dependency entry.
// v5 lockfiles write a bare version; v6 lockfiles write a specifier/version mapping.
type DeclarationDTO struct {
	Specifier string `yaml:"specifier"`
	Version   string `yaml:"version"`
	Bare      bool   `yaml:"-"`
}

// UnmarshalYAML accepts both the v5 and the v6 shape.
func (d *DeclarationDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Version = node.Value
		d.Bare = true
		return nil
	}

	var raw struct {
		Specifier string `yaml:"specifier"`
		Version   string `yaml:"version"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.Specifier = raw.Specifier
	d.Version = raw.Version
	return nil
}

// MarshalYAML writes the shape the declaration was read in.
func (d DeclarationDTO) MarshalYAML() (any, error) {
	if d.Bare {
		return d.Version, nil
	}
	return struct {
		Specifier string `yaml:"specifier"`
		Version   string `yaml:"version"`
	}{d.Specifier, d.Version}, nil
}

func toDomain(doc *Document) *domain.Lockfile {
	result := &domain.Lockfile{
		Version: domain.LockfileVersion{Raw: doc.LockfileVersion.Raw, Numeric: doc.LockfileVersion.Numeric},
		Extra:   doc.Extra,
	}

	if len(doc.Importers) > 0 {
		result.Importers = make(map[string]domain.Importer, len(doc.Importers))
		for key, importer := range doc.Importers {
			result.Importers[key] = domain.Importer{
				Specifiers:           importer.Specifiers,
				Dependencies:         declarationsToDomain(importer.Dependencies),
				DevDependencies:      declarationsToDomain(importer.DevDependencies),
				OptionalDependencies: declarationsToDomain(importer.OptionalDependencies),
				Metadata:             importer.Extra,
			}
		}
	} else if doc.Dependencies != nil || doc.DevDependencies != nil || doc.OptionalDependencies != nil {
		result.SingleProject = true
		result.Importers = map[string]domain.Importer{
			".": {
				Specifiers:           doc.Specifiers,
				Dependencies:         declarationsToDomain(doc.Dependencies),
				DevDependencies:      declarationsToDomain(doc.DevDependencies),
				OptionalDependencies: declarationsToDomain(doc.OptionalDependencies),
			},
		}
	}

	if doc.Packages != nil {
		result.Packages = make(map[string]domain.PackageSnapshot, len(doc.Packages))
		for depPath, pkg := range doc.Packages {
			result.Packages[depPath] = domain.PackageSnapshot{
				Dependencies:         pkg.Dependencies,
				OptionalDependencies: pkg.OptionalDependencies,
				Metadata:             pkg.Extra,
			}
		}
	}

	return result
}

func fromDomain(doc *domain.Lockfile, bare bool) *Document {
	result := &Document{
		LockfileVersion: VersionDTO{Raw: doc.Version.Raw, Numeric: doc.Version.Numeric},
		Extra:           doc.Extra,
	}

	if root, ok := doc.Importers["."]; ok && doc.SingleProject {
		result.Specifiers = root.Specifiers
		result.Dependencies = declarationsFromDomain(root.Dependencies, bare)
		result.DevDependencies = declarationsFromDomain(root.DevDependencies, bare)
		result.OptionalDependencies = declarationsFromDomain(root.OptionalDependencies, bare)
	} else if doc.Importers != nil {
		result.Importers = make(map[string]ImporterDTO, len(doc.Importers))
		for key, importer := range doc.Importers {
			result.Importers[key] = ImporterDTO{
				Specifiers:           importer.Specifiers,
				Dependencies:         declarationsFromDomain(importer.Dependencies, bare),
				DevDependencies:      declarationsFromDomain(importer.DevDependencies, bare),
				OptionalDependencies: declarationsFromDomain(importer.OptionalDependencies, bare),
				Extra:                importer.Metadata,
			}
		}
	}

	if doc.Packages != nil {
		result.Packages = make(map[string]PackageDTO, len(doc.Packages))
		for depPath, pkg := range doc.Packages {
			result.Packages[depPath] = PackageDTO{
				Dependencies:         pkg.Dependencies,
				OptionalDependencies: pkg.OptionalDependencies,
				Extra:                pkg.Metadata,
			}
		}
	}

	return result
}

func declarationsToDomain(in map[string]DeclarationDTO) domain.DependencyDeclarations {
	if in == nil {
		return nil
	}
	out := make(domain.DependencyDeclarations, len(in))
	for name, decl := range in {
		out[name] = domain.DependencyDeclaration{Specifier: decl.Specifier, Version: decl.Version}
	}
	return out
}

func declarationsFromDomain(in domain.DependencyDeclarations, bare bool) map[string]DeclarationDTO {
	if in == nil {
		return nil
	}
	out := make(map[string]DeclarationDTO, len(in))
	for name, decl := range in {
		out[name] = DeclarationDTO{Specifier: decl.Specifier, Version: decl.Version, Bare: bare}
	}
	return out
}

package domain

// LockfileVersion is the raw lockfileVersion value of a pnpm-lock.yaml document.
// PNPM writes it either as a YAML number (5.4) or as a quoted string ('6.0').
type LockfileVersion struct {
	// Raw is the scalar text as it appeared in the document.
	Raw string

	// Numeric reports whether the value was a YAML int or float rather than a string.
	Numeric bool
}

// String returns the raw version text.
func (v LockfileVersion) String() string {
	return v.Raw
}

// Lockfile is a parsed pnpm-lock.yaml document.
type Lockfile struct {
	// Version is the lockfileVersion field.
	Version LockfileVersion

	// Importers maps project paths, relative to the importer root, to their declarations.
	// A lockfile without an importers section exposes its top-level declarations as ".".
	Importers map[string]Importer

	// Packages maps dependency paths to the resolved package metadata.
	Packages map[string]PackageSnapshot

	// Extra holds the remaining top-level fields, carried through unchanged.
	Extra map[string]any

	// SingleProject reports whether the root declarations sit at the top level of the
	// document instead of under importers.
	SingleProject bool

	// Digest is a content hash of the raw document bytes.
	Digest string
}

// Importer lists the direct dependencies of one workspace project.
type Importer struct {
	// Specifiers is only present in v5 lockfiles, where declarations carry just the version.
	Specifiers           map[string]string
	Dependencies         DependencyDeclarations
	DevDependencies      DependencyDeclarations
	OptionalDependencies DependencyDeclarations

	// Metadata holds the remaining importer fields, such as dependenciesMeta.
	Metadata map[string]any
}

// DependencyDeclaration is one declared dependency of an importer.
type DependencyDeclaration struct {
	Specifier string `json:"specifier"`
	Version   string `json:"version"`
}

// DependencyDeclarations maps package names to their declaration.
type DependencyDeclarations map[string]DependencyDeclaration

// PackageSnapshot is the metadata recorded for one dependency path in the packages section.
type PackageSnapshot struct {
	// Dependencies maps package names to version references (a version or a dependency path).
	Dependencies map[string]string

	// OptionalDependencies has the same shape as Dependencies.
	OptionalDependencies map[string]string

	// Metadata holds every other field of the entry, carried through unchanged.
	Metadata map[string]any
}

package domain

// NormalizeToV5 rewrites the packages section of a v6 lockfile to v5 dependency paths.
// Package metadata is carried over unchanged and v5 documents are returned untouched.
// The document is modified in place and the same pointer is returned.
func NormalizeToV5(doc *Lockfile) (*Lockfile, error) {
	major, err := ShrinkwrapFileMajorVersion(doc.Version)
	if err != nil {
		return nil, err
	}

	if major == LockfileMajorV6 && doc.Packages != nil {
		updated := make(map[string]PackageSnapshot, len(doc.Packages))
		for depPath, pkg := range doc.Packages {
			updated[ConvertDependencyPathV6ToV5(depPath)] = pkg
		}
		doc.Packages = updated
	}

	return doc, nil
}

package domain

import "strings"

// ConvertDependencyPathV6ToV5 rewrites a v6 dependency path (/name@1.0.0(peer@2.0.0))
// to its v5 form (/name/1.0.0(peer@2.0.0)).
// Paths that are already v5 shaped, local file: paths and anything that does not look like
// name@version are returned unchanged, so the conversion is idempotent.
func ConvertDependencyPathV6ToV5(depPath string) string {
	if !hasByteFrom(depPath, '@', 2) || strings.HasPrefix(depPath, "file:") {
		return depPath
	}

	// Skip the scope marker of a scoped name.
	index := indexByteFrom(depPath, '@', strings.Index(depPath, "/@")+2)
	if index < 0 {
		return depPath
	}

	peers := IndexOfPeersSuffix(depPath)
	if strings.Contains(depPath, "(") && index > peers {
		return depPath
	}

	end := len(depPath)
	if peers > index {
		end = peers
	}
	if strings.ContainsAny(depPath[index+1:end], "@/") {
		return depPath
	}

	return depPath[:index] + "/" + depPath[index+1:]
}

// IndexOfPeersSuffix returns the index of the "(" that opens the trailing peer suffix
// of a dependency path, or -1 when the path has none.
func IndexOfPeersSuffix(depPath string) int {
	if !strings.HasSuffix(depPath, ")") {
		return -1
	}

	open := 1
	for i := len(depPath) - 2; i >= 0; i-- {
		switch depPath[i] {
		case '(':
			open--
		case ')':
			open++
		default:
			if open == 0 {
				return i + 1
			}
		}
	}
	return -1
}

// DependencyPathFor builds the v5 dependency path a declaration or package reference points to.
// It reports false for references that never appear in the packages section (link:, file:, workspace:).
func DependencyPathFor(name, version string) (string, bool) {
	switch {
	case version == "":
		return "", false
	case strings.HasPrefix(version, "link:"),
		strings.HasPrefix(version, "file:"),
		strings.HasPrefix(version, "workspace:"):
		return "", false
	case strings.HasPrefix(version, "/"):
		return ConvertDependencyPathV6ToV5(version), true
	default:
		return "/" + name + "/" + version, true
	}
}

func hasByteFrom(s string, c byte, from int) bool {
	return indexByteFrom(s, c, from) >= 0
}

func indexByteFrom(s string, c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

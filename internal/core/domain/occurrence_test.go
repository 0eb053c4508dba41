package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfx/internal/core/domain"
)

func occurrenceFixture() *domain.Lockfile {
	return &domain.Lockfile{
		Version: domain.LockfileVersion{Raw: "5.4", Numeric: true},
		Packages: map[string]domain.PackageSnapshot{
			"/a/1.0.0": {Dependencies: map[string]string{"lodash": "4.17.21", "b": "2.0.0"}},
			"/b/2.0.0": {
				Dependencies:         map[string]string{"lodash": "4.17.20"},
				OptionalDependencies: map[string]string{"fsevents": "2.3.3"},
			},
			"/lodash/4.17.21": {},
			"/lodash/4.17.20": {},
			"/fsevents/2.3.3": {},
		},
	}
}

func TestFindOccurrences_Transitive(t *testing.T) {
	direct := domain.DependencyDeclarations{"a": {Specifier: "^1", Version: "1.0.0"}}

	got := domain.FindOccurrences(occurrenceFixture(), "web", direct, "lodash")

	require.Len(t, got, 2)
	assert.Equal(t, domain.DependencyOccurrence{
		Project:        "web",
		Name:           "lodash",
		Version:        "4.17.20",
		DependencyPath: "/lodash/4.17.20",
		Chain:          []string{"/a/1.0.0", "/b/2.0.0", "/lodash/4.17.20"},
	}, got[0])
	assert.Equal(t, domain.DependencyOccurrence{
		Project:        "web",
		Name:           "lodash",
		Version:        "4.17.21",
		DependencyPath: "/lodash/4.17.21",
		Chain:          []string{"/a/1.0.0", "/lodash/4.17.21"},
	}, got[1])
}

func TestFindOccurrences_DirectAndOptional(t *testing.T) {
	direct := domain.DependencyDeclarations{
		"b":      {Version: "2.0.0"},
		"lodash": {Specifier: "^4", Version: "4.17.21"},
	}

	got := domain.FindOccurrences(occurrenceFixture(), "web", direct, "lodash")
	require.Len(t, got, 2)
	assert.False(t, got[0].Direct)
	assert.True(t, got[1].Direct)
	assert.Equal(t, []string{"/lodash/4.17.21"}, got[1].Chain)

	optional := domain.FindOccurrences(occurrenceFixture(), "web", direct, "fsevents")
	require.Len(t, optional, 1)
	assert.Equal(t, []string{"/b/2.0.0", "/fsevents/2.3.3"}, optional[0].Chain)
}

func TestFindOccurrences_LinkedWorkspacePackage(t *testing.T) {
	direct := domain.DependencyDeclarations{"lib": {Specifier: "workspace:*", Version: "link:../lib"}}

	got := domain.FindOccurrences(occurrenceFixture(), "web", direct, "lib")

	assert.Equal(t, []domain.DependencyOccurrence{{
		Project: "web",
		Name:    "lib",
		Version: "link:../lib",
		Direct:  true,
	}}, got)
}

func TestFindOccurrences_Cycle(t *testing.T) {
	doc := &domain.Lockfile{
		Packages: map[string]domain.PackageSnapshot{
			"/x/1.0.0": {Dependencies: map[string]string{"y": "1.0.0"}},
			"/y/1.0.0": {Dependencies: map[string]string{"x": "1.0.0"}},
		},
	}
	direct := domain.DependencyDeclarations{"x": {Version: "1.0.0"}}

	got := domain.FindOccurrences(doc, "web", direct, "y")

	require.Len(t, got, 1)
	assert.Equal(t, []string{"/x/1.0.0", "/y/1.0.0"}, got[0].Chain)
}

func TestFindOccurrences_NotFound(t *testing.T) {
	direct := domain.DependencyDeclarations{"a": {Version: "1.0.0"}}

	assert.Empty(t, domain.FindOccurrences(occurrenceFixture(), "web", direct, "react"))
}

package properties

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/versioning/model"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestChain(t *testing.T) {
	first := Map{"a": "1", "shared": "first"}
	second := Map{"b": "2", "shared": "second"}
	env := Chain(first, nil, Chain(second))

	tests := []struct {
		description string
		name        string
		expected    string
		expectOk    bool
	}{
		{description: "first member", name: "a", expected: "1", expectOk: true},
		{description: "second member", name: "b", expected: "2", expectOk: true},
		{description: "first wins", name: "shared", expected: "first", expectOk: true},
		{description: "undefined", name: "c"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			value, ok := env.Lookup(tc.name)
			assert.EqualValues(t, tc.expectOk, ok)
			assert.EqualValues(t, tc.expected, value)
		})
	}
}

func TestMap_Merge(t *testing.T) {
	base := Map{"a": "1", "b": "1"}
	merged := base.Merge(Map{"b": "2"})
	assert.EqualValues(t, Map{"a": "1", "b": "2"}, merged)
	assert.EqualValues(t, "1", base["b"])
	assert.EqualValues(t, []string{"a", "b"}, merged.Names())
}

func TestOS(t *testing.T) {
	t.Setenv("VERSIONING_TEST_SUFFIX", "rc1")
	env := OS(DefaultOSPrefix)

	value, ok := env.Lookup("env.VERSIONING_TEST_SUFFIX")
	assert.True(t, ok)
	assert.EqualValues(t, "rc1", value)

	_, ok = env.Lookup("VERSIONING_TEST_SUFFIX")
	assert.False(t, ok)
	_, ok = env.Lookup("env.")
	assert.False(t, ok)
}

func TestForModel(t *testing.T) {
	m := &model.Model{
		ArtifactID: "web",
		Version:    "1.0",
		Parent:     &model.Parent{GroupID: "org.acme", ArtifactID: "parent", Version: "2.0"},
		Properties: map[string]string{"qualifier": "beta", "project.version": "shadowed"},
	}
	env := ForModel(m)

	expect := map[string]string{
		"project.groupId":        "org.acme",
		"project.artifactId":     "web",
		"project.version":        "1.0",
		"project.parent.version": "2.0",
		"qualifier":              "beta",
	}
	for name, expected := range expect {
		value, ok := env.Lookup(name)
		assert.True(t, ok, name)
		assert.EqualValues(t, expected, value, name)
	}
	_, ok := env.Lookup("missing")
	assert.False(t, ok)

	_, ok = ForModel(nil).Lookup("project.version")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	now := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	env := Build(now)
	assert.EqualValues(t, "20240309.070501", env["build.timestamp"])
	assert.EqualValues(t, "20240309", env["build.date"])
	assert.EqualValues(t, "1709967901", env["build.epoch"])
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(first, []byte("SUFFIX=rc1\nBUILD=1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("# local\nBUILD=\"7\"\n"), 0o644))

	env, err := DotEnv(first, second)
	require.NoError(t, err)
	assert.EqualValues(t, Map{"SUFFIX": "rc1", "BUILD": "7"}, env)

	_, err = DotEnv(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

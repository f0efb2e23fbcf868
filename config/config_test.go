package config

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/versioning/properties"
	"github.com/viant/versioning/versioning"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		filename    string
		content     string
		expectRules []string
		expectErr   bool
		expect      func(t *testing.T, cfg *Config)
	}{
		{
			description: "yaml config",
			filename:    "versioning.yaml",
			content: `enabled: true
rules:
  - match: "1.0"
    version: "1.0-${git.commit.short}"
  - match: "glob:2.*"
    version: "${project.version}-rc1"
properties:
  suffix: rc1
envFiles:
  - build.env
git:
  enabled: true
parallelism: 8
`,
			expectRules: []string{"1.0=1.0-${git.commit.short}", "glob:2.*=${project.version}-rc1"},
			expect: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Enabled)
				assert.EqualValues(t, "rc1", cfg.Properties["suffix"])
				assert.EqualValues(t, []string{"build.env"}, cfg.EnvFiles)
				assert.EqualValues(t, ".", cfg.Git.Dir)
				assert.EqualValues(t, 8, cfg.Parallelism)
				assert.EqualValues(t, properties.DefaultOSPrefix, cfg.EnvironmentPrefix)
				assert.True(t, cfg.Rules[1].Matches("2.3"))
			},
		},
		{
			description: "toml config",
			filename:    "versioning.toml",
			content: `enabled = true
environmentPrefix = "os."

[[rules]]
match = "*"
version = "${suffix}-1.0"

[properties]
suffix = "rc1"
`,
			expectRules: []string{"*=${suffix}-1.0"},
			expect: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Enabled)
				assert.EqualValues(t, "os.", cfg.EnvironmentPrefix)
				assert.EqualValues(t, defaultParallelism, cfg.Parallelism)
			},
		},
		{
			description: "malformed rule expression",
			filename:    "versioning.yaml",
			content: `rules:
  - match: "*"
    version: "${broken"
`,
			expectErr: true,
		},
		{
			description: "empty rule version",
			filename:    "versioning.yaml",
			content: `rules:
  - match: "*"
`,
			expectErr: true,
		},
		{
			description: "invalid toml",
			filename:    "versioning.toml",
			content:     `enabled = `,
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			location := filepath.Join(t.TempDir(), testCase.filename)
			require.NoError(t, os.WriteFile(location, []byte(testCase.content), 0o644))
			cfg, err := Load(context.Background(), location)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expectRules, cfg.Rules.Strings())
			testCase.expect(t, cfg)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestConfig_ApplyEnv(t *testing.T) {
	var testCases = []struct {
		description       string
		env               map[string]string
		expectEnabled     bool
		expectRules       []string
		expectParallelism int
		expectErr         bool
	}{
		{
			description:       "no overrides",
			env:               map[string]string{},
			expectRules:       []string{"1.0=2.0"},
			expectParallelism: defaultParallelism,
		},
		{
			description:       "all overrides",
			env:               map[string]string{EnvEnabled: "true", EnvRules: "1.0=1.0-X, =${suffix}", EnvParallelism: "2"},
			expectEnabled:     true,
			expectRules:       []string{"1.0=1.0-X", "*=${suffix}"},
			expectParallelism: 2,
		},
		{
			description: "invalid flag",
			env:         map[string]string{EnvEnabled: "maybe"},
			expectErr:   true,
		},
		{
			description: "invalid rule",
			env:         map[string]string{EnvRules: "1.0"},
			expectErr:   true,
		},
		{
			description: "invalid parallelism",
			env:         map[string]string{EnvParallelism: "many"},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := New()
			rules, err := versioning.NewRules("1.0=2.0")
			require.NoError(t, err)
			cfg.Rules = rules
			err = cfg.ApplyEnv(func(name string) (string, bool) {
				value, ok := testCase.env[name]
				return value, ok
			})
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expectEnabled, cfg.Enabled)
			assert.EqualValues(t, testCase.expectRules, cfg.Rules.Strings())
			assert.EqualValues(t, testCase.expectParallelism, cfg.Parallelism)
		})
	}
}

func TestConfig_Session(t *testing.T) {
	cfg := New()
	cfg.Enabled = true
	rules, err := versioning.NewRules("1.0=1.0-X")
	require.NoError(t, err)
	cfg.Rules = rules

	session := cfg.Session()
	assert.True(t, session.IsEnabled())
	assert.EqualValues(t, []string{"1.0=1.0-X"}, session.VersioningChanges().Strings())
	assert.NotEmpty(t, session.ID())
}

func TestConfig_Environment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "build.env")
	require.NoError(t, os.WriteFile(envFile, []byte("suffix=from-file\nqualifier=beta\n"), 0o644))
	t.Setenv("VERSIONING_TEST_HOME", "/home/ci")

	cfg := New()
	cfg.Properties = map[string]string{"suffix": "rc1"}
	cfg.EnvFiles = []string{envFile}
	env, err := cfg.Environment(time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC))
	require.NoError(t, err)

	var testCases = []struct {
		name   string
		expect string
		found  bool
	}{
		{name: "suffix", expect: "rc1", found: true},
		{name: "qualifier", expect: "beta", found: true},
		{name: "build.timestamp", expect: "20240309.070501", found: true},
		{name: "env.VERSIONING_TEST_HOME", expect: "/home/ci", found: true},
		{name: "git.commit", found: false},
	}
	for _, testCase := range testCases {
		value, ok := env.Lookup(testCase.name)
		assert.EqualValues(t, testCase.found, ok, testCase.name)
		assert.EqualValues(t, testCase.expect, value, testCase.name)
	}

	cfg.EnvFiles = []string{filepath.Join(dir, "missing.env")}
	_, err = cfg.Environment(time.Now())
	assert.Error(t, err)

	cfg.EnvFiles = nil
	cfg.Git = Git{Enabled: true, Dir: dir}
	_, err = cfg.Environment(time.Now())
	assert.Error(t, err)
}

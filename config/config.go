package config

import (
	"context"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"github.com/viant/versioning/properties"
	"github.com/viant/versioning/versioning"
	"gopkg.in/yaml.v3"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	EnvEnabled     = "VERSIONING_ENABLED"
	EnvRules       = "VERSIONING_RULES"
	EnvParallelism = "VERSIONING_PARALLELISM"

	defaultParallelism = 4
)

type (
	// Config represents versioning session configuration
	Config struct {
		Enabled           bool              `yaml:"enabled" toml:"enabled" json:"enabled"`
		Rules             versioning.Rules  `yaml:"rules,omitempty" toml:"rules" json:"rules,omitempty"`
		Properties        map[string]string `yaml:"properties,omitempty" toml:"properties" json:"properties,omitempty"`
		EnvFiles          []string          `yaml:"envFiles,omitempty" toml:"envFiles" json:"envFiles,omitempty"`
		Git               Git               `yaml:"git,omitempty" toml:"git" json:"git,omitempty"`
		EnvironmentPrefix string            `yaml:"environmentPrefix,omitempty" toml:"environmentPrefix" json:"environmentPrefix,omitempty"`
		Parallelism       int               `yaml:"parallelism,omitempty" toml:"parallelism" json:"parallelism,omitempty"`
	}

	// Git controls the VCS property source
	Git struct {
		Enabled bool   `yaml:"enabled,omitempty" toml:"enabled" json:"enabled,omitempty"`
		Dir     string `yaml:"dir,omitempty" toml:"dir" json:"dir,omitempty"`
	}
)

// New returns a default, disabled configuration
func New() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Init applies defaults
func (c *Config) Init() {
	if c.Parallelism <= 0 {
		c.Parallelism = defaultParallelism
	}
	if c.EnvironmentPrefix == "" {
		c.EnvironmentPrefix = properties.DefaultOSPrefix
	}
	if c.Git.Enabled && c.Git.Dir == "" {
		c.Git.Dir = "."
	}
}

// Load loads configuration from a local path or storage URL; ".toml" selects TOML, anything else YAML
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	ret := &Config{}
	switch strings.ToLower(path.Ext(URL)) {
	case ".toml":
		if err = toml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode toml config %s: %w", URL, err)
		}
	default:
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode yaml config %s: %w", URL, err)
		}
	}
	ret.Init()
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// ApplyEnv overrides the enabled flag, rules and parallelism from lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if value, ok := lookup(EnvEnabled); ok && value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvEnabled, err)
		}
		c.Enabled = enabled
	}
	if value, ok := lookup(EnvRules); ok && strings.TrimSpace(value) != "" {
		rules, err := versioning.NewRules(splitList(value)...)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRules, err)
		}
		c.Rules = rules
	}
	if value, ok := lookup(EnvParallelism); ok && value != "" {
		parallelism, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvParallelism, err)
		}
		c.Parallelism = parallelism
	}
	c.Init()
	return nil
}

// Validate checks rules; it also compiles glob predicates of decoded rules
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be positive: %d", c.Parallelism)
	}
	return c.Rules.Init()
}

// Session creates the versioning session described by the configuration
func (c *Config) Session(opts ...versioning.SessionOption) *versioning.Session {
	return versioning.NewSession(c.Enabled, c.Rules, opts...)
}

// Environment builds the property environment; earlier sources win:
// configured properties, env files, git, build clock, then prefixed process environment.
func (c *Config) Environment(now time.Time) (properties.Environment, error) {
	envs := []properties.Environment{properties.Map(c.Properties)}
	if len(c.EnvFiles) > 0 {
		values, err := properties.DotEnv(c.EnvFiles...)
		if err != nil {
			return nil, err
		}
		envs = append(envs, values)
	}
	if c.Git.Enabled {
		values, err := properties.Git(c.Git.Dir)
		if err != nil {
			return nil, err
		}
		envs = append(envs, values)
	}
	envs = append(envs, properties.Build(now), properties.OS(c.EnvironmentPrefix))
	return properties.Chain(envs...), nil
}

func splitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

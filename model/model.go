package model

import "strings"

const inheritedVersion = "[inherited]"

// Model represents the in-memory descriptor of one buildable module
type Model struct {
	GroupID      string            `yaml:"groupId,omitempty" json:"groupId,omitempty"`
	ArtifactID   string            `yaml:"artifactId" json:"artifactId"`
	Version      string            `yaml:"version,omitempty" json:"version,omitempty"` // Own version, empty when inherited from Parent
	Packaging    string            `yaml:"packaging,omitempty" json:"packaging,omitempty"`
	Name         string            `yaml:"name,omitempty" json:"name,omitempty"`
	Parent       *Parent           `yaml:"parent,omitempty" json:"parent,omitempty"`
	Modules      []string          `yaml:"modules,omitempty" json:"modules,omitempty"` // Aggregated child module directories
	Properties   map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`
	Dependencies []*Dependency     `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	Location     string            `yaml:"-" json:"location,omitempty"` // Source location or input-source label
	Format       string            `yaml:"-" json:"format,omitempty"`
}

// Parent references the module a descriptor inherits from
type Parent struct {
	GroupID      string `yaml:"groupId,omitempty" json:"groupId,omitempty"`
	ArtifactID   string `yaml:"artifactId" json:"artifactId"`
	Version      string `yaml:"version,omitempty" json:"version,omitempty"`
	RelativePath string `yaml:"relativePath,omitempty" json:"relativePath,omitempty"`
}

// Dependency represents a declared dependency, never rewritten by versioning
type Dependency struct {
	GroupID    string `yaml:"groupId,omitempty" json:"groupId,omitempty"`
	ArtifactID string `yaml:"artifactId" json:"artifactId"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`
	Scope      string `yaml:"scope,omitempty" json:"scope,omitempty"`
}

// HasVersion returns true if the descriptor declares its own version
func (m *Model) HasVersion() bool {
	return m != nil && m.Version != ""
}

// EffectiveGroupID returns own group or the parent group when absent
func (m *Model) EffectiveGroupID() string {
	if m == nil {
		return ""
	}
	if m.GroupID != "" {
		return m.GroupID
	}
	if m.Parent != nil {
		return m.Parent.GroupID
	}
	return ""
}

// Property returns descriptor declared property
func (m *Model) Property(name string) (string, bool) {
	if m == nil || m.Properties == nil {
		return "", false
	}
	value, ok := m.Properties[name]
	return value, ok
}

func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}
	version := m.Version
	if version == "" {
		version = inheritedVersion
	}
	builder := strings.Builder{}
	builder.WriteString(m.EffectiveGroupID())
	builder.WriteString(":")
	builder.WriteString(m.ArtifactID)
	builder.WriteString(":")
	builder.WriteString(version)
	return builder.String()
}

package report

import (
	"encoding/json"
	"fmt"
	"github.com/viant/versioning/model"
	"github.com/viant/versioning/versioning"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

// Format identifies a summary rendering
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type (
	// Summary describes the outcome of one versioning session
	Summary struct {
		Session     string    `yaml:"session" json:"session"`
		Enabled     bool      `yaml:"enabled" json:"enabled"`
		Rules       []string  `yaml:"rules,omitempty" json:"rules,omitempty"`
		Fingerprint string    `yaml:"fingerprint,omitempty" json:"fingerprint,omitempty"`
		Changed     []string  `yaml:"changed" json:"changed"`
		Modules     []*Module `yaml:"modules,omitempty" json:"modules,omitempty"`
	}

	// Module describes one descriptor read in the session
	Module struct {
		Identity string `yaml:"identity" json:"identity"`
		Version  string `yaml:"version,omitempty" json:"version,omitempty"`
		Location string `yaml:"location" json:"location"`
		Changed  bool   `yaml:"changed" json:"changed"`
	}
)

// New builds a summary of session and the models read with it
func New(session *versioning.Session, models []*model.Model) *Summary {
	rules := session.VersioningChanges()
	ret := &Summary{
		Session:     session.ID(),
		Enabled:     session.IsEnabled(),
		Rules:       rules.Strings(),
		Fingerprint: rules.Fingerprint(),
		Changed:     []string{},
	}
	changed := session.ChangedGAVs()
	for _, identity := range changed.Identities() {
		ret.Changed = append(ret.Changed, identity.String())
	}
	for _, m := range models {
		identity := model.GA(m)
		ret.Modules = append(ret.Modules, &Module{
			Identity: identity.String(),
			Version:  m.Version,
			Location: m.Location,
			Changed:  changed.Contains(identity),
		})
	}
	return ret
}

// Write renders the summary in format
func (s *Summary) Write(writer io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return s.writeText(writer)
	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (s *Summary) writeText(writer io.Writer) error {
	builder := strings.Builder{}
	if !s.Enabled {
		fmt.Fprintf(&builder, "[VERSION-EXT] session %s disabled\n", s.Session)
	} else {
		fmt.Fprintf(&builder, "[VERSION-EXT] session %s rules %s (%s)\n", s.Session, strings.Join(s.Rules, ", "), s.Fingerprint)
	}
	for _, module := range s.Modules {
		marker := " "
		if module.Changed {
			marker = "*"
		}
		version := module.Version
		if version == "" {
			version = "[inherited]"
		}
		fmt.Fprintf(&builder, "%s %s:%s %s\n", marker, module.Identity, version, module.Location)
	}
	fmt.Fprintf(&builder, "[VERSION-EXT] %d module(s) changed\n", len(s.Changed))
	for _, identity := range s.Changed {
		fmt.Fprintf(&builder, "  %s\n", identity)
	}
	_, err := io.WriteString(writer, builder.String())
	return err
}

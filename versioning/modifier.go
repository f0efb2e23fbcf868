package versioning

import (
	"github.com/viant/versioning/interpolate"
	"github.com/viant/versioning/model"
	"github.com/viant/versioning/properties"
)

// Modifier computes and applies a new version to a single descriptor
type Modifier struct {
	env properties.Environment
}

// NewModifier creates a modifier resolving placeholders against env, then descriptor properties
func NewModifier(env properties.Environment) *Modifier {
	return &Modifier{env: env}
}

// ApplyVersioningChanges rewrites the own version of m using the first matching rule.
// It returns true only when the version actually changed; on error m is left untouched.
// Descriptors inheriting their version are never modified.
func (m *Modifier) ApplyVersioningChanges(descriptor *model.Model, rules Rules) (bool, error) {
	if !descriptor.HasVersion() {
		return false, nil
	}
	rule := rules.Select(descriptor.Version)
	if rule == nil {
		return false, nil
	}
	version, err := interpolate.Expand(rule.Version, m.environment(descriptor))
	if err != nil {
		return false, err
	}
	if version == descriptor.Version {
		return false, nil
	}
	descriptor.Version = version
	return true, nil
}

func (m *Modifier) environment(descriptor *model.Model) properties.Environment {
	if m == nil || m.env == nil {
		return properties.ForModel(descriptor)
	}
	return properties.Chain(m.env, properties.ForModel(descriptor))
}

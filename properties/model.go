package properties

import (
	"github.com/viant/versioning/model"
	"strconv"
	"time"
)

// ForModel exposes descriptor coordinates as project.* and declared properties under their own names.
// Coordinates take precedence over declared properties with the same name.
func ForModel(m *model.Model) Environment {
	if m == nil {
		return Map{}
	}
	builtin := Map{
		"project.groupId":    m.EffectiveGroupID(),
		"project.artifactId": m.ArtifactID,
		"project.version":    m.Version,
		"project.packaging":  m.Packaging,
		"project.name":       m.Name,
	}
	if m.Parent != nil {
		builtin["project.parent.groupId"] = m.Parent.GroupID
		builtin["project.parent.artifactId"] = m.Parent.ArtifactID
		builtin["project.parent.version"] = m.Parent.Version
	}
	return Chain(builtin, Func(m.Property))
}

// Build exposes build clock properties
func Build(now time.Time) Map {
	now = now.UTC()
	return Map{
		"build.timestamp": now.Format("20060102.150405"),
		"build.date":      now.Format("20060102"),
		"build.epoch":     strconv.FormatInt(now.Unix(), 10),
	}
}

package model

import "strings"

// Identity is the version independent coordinate of a module, used as a lookup and reporting key
type Identity struct {
	GroupID    string `yaml:"groupId" json:"groupId"`
	ArtifactID string `yaml:"artifactId" json:"artifactId"`
}

// GA returns the identity of the descriptor; the parent group is used when the module declares none
func GA(m *Model) Identity {
	if m == nil {
		return Identity{}
	}
	return Identity{GroupID: m.EffectiveGroupID(), ArtifactID: m.ArtifactID}
}

// ParseIdentity parses "group:artifact"; a value without a colon is treated as an artifact
func ParseIdentity(value string) Identity {
	value = strings.TrimSpace(value)
	index := strings.Index(value, ":")
	if index == -1 {
		return Identity{ArtifactID: value}
	}
	return Identity{GroupID: value[:index], ArtifactID: value[index+1:]}
}

func (i Identity) String() string {
	return i.GroupID + ":" + i.ArtifactID
}

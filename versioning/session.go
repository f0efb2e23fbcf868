package versioning

import (
	"github.com/google/uuid"
	"github.com/viant/versioning/model"
	"sort"
	"sync"
)

// Session holds versioning state of one build invocation.
// It is created once at build start and passed to every read; the enabled flag and rules never change afterwards.
type Session struct {
	id      string
	enabled bool
	rules   Rules
	changed *ChangedSet
}

// SessionOption customises a session
type SessionOption func(*Session)

// WithSessionID overrides the generated session id
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession creates a session; rules are copied
func NewSession(enabled bool, rules Rules, opts ...SessionOption) *Session {
	ret := &Session{
		id:      uuid.NewString(),
		enabled: enabled,
		rules:   rules.clone(),
		changed: NewChangedSet(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ID returns the session id used to correlate log entries
func (s *Session) ID() string {
	return s.id
}

// IsEnabled returns the session wide flag
func (s *Session) IsEnabled() bool {
	return s != nil && s.enabled
}

// VersioningChanges returns a copy of the configured rules
func (s *Session) VersioningChanges() Rules {
	return s.rules.clone()
}

// ChangedGAVs returns the live set of modified module identities
func (s *Session) ChangedGAVs() *ChangedSet {
	return s.changed
}

func (r Rules) clone() Rules {
	if r == nil {
		return nil
	}
	result := make(Rules, 0, len(r))
	for _, rule := range r {
		if rule == nil {
			continue
		}
		cloned := *rule
		if cloned.matcher == nil {
			cloned.matcher, _ = cloned.compile()
		}
		result = append(result, &cloned)
	}
	return result
}

// ChangedSet is a set of module identities safe for concurrent insertion
type ChangedSet struct {
	mux   sync.RWMutex
	items map[model.Identity]struct{}
}

// NewChangedSet creates an empty set
func NewChangedSet() *ChangedSet {
	return &ChangedSet{items: map[model.Identity]struct{}{}}
}

// Add inserts identity, returns true if it was not yet present
func (c *ChangedSet) Add(identity model.Identity) bool {
	c.mux.Lock()
	defer c.mux.Unlock()
	if _, ok := c.items[identity]; ok {
		return false
	}
	c.items[identity] = struct{}{}
	return true
}

// Contains returns true if identity was recorded
func (c *ChangedSet) Contains(identity model.Identity) bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	_, ok := c.items[identity]
	return ok
}

// Len returns number of recorded identities
func (c *ChangedSet) Len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return len(c.items)
}

// Identities returns a sorted snapshot
func (c *ChangedSet) Identities() []model.Identity {
	c.mux.RLock()
	result := make([]model.Identity, 0, len(c.items))
	for identity := range c.items {
		result = append(result, identity)
	}
	c.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

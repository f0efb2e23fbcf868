package versioning

import (
	"fmt"
	"github.com/gobwas/glob"
	"github.com/viant/versioning/interpolate"
	"strings"
)

const (
	// AnyVersion matches every declared version
	AnyVersion = "*"
	globPrefix = "glob:"
)

// Rule maps a version predicate to a version producing expression
type Rule struct {
	Match   string `yaml:"match,omitempty" toml:"match" json:"match,omitempty"` // Exact version, "*" (or empty) for any, "glob:<pattern>"
	Version string `yaml:"version" toml:"version" json:"version"`             // Expression with optional ${name} placeholders
	matcher glob.Glob
}

// NewRule creates a rule and compiles its predicate
func NewRule(match, version string) (*Rule, error) {
	rule := &Rule{Match: strings.TrimSpace(match), Version: strings.TrimSpace(version)}
	if err := rule.Init(); err != nil {
		return nil, err
	}
	return rule, nil
}

// ParseRule parses "match=expression"; an empty match stands for any version
func ParseRule(definition string) (*Rule, error) {
	index := strings.Index(definition, "=")
	if index == -1 {
		return nil, fmt.Errorf("invalid rule %q: expected match=version", definition)
	}
	return NewRule(definition[:index], definition[index+1:])
}

// Init validates the rule and compiles a glob predicate
func (r *Rule) Init() error {
	if r.Version == "" {
		return fmt.Errorf("invalid rule %q: version expression was empty", r.Match)
	}
	if _, err := interpolate.Placeholders(r.Version); err != nil {
		return fmt.Errorf("invalid rule %q: %w", r.Match, err)
	}
	matcher, err := r.compile()
	if err != nil {
		return fmt.Errorf("invalid rule %q: %w", r.Match, err)
	}
	r.matcher = matcher
	return nil
}

// compile returns the glob predicate of a "glob:" match, or nil for other matches
func (r *Rule) compile() (glob.Glob, error) {
	pattern, ok := strings.CutPrefix(r.Match, globPrefix)
	if !ok {
		return nil, nil
	}
	return glob.Compile(pattern)
}

// IsAny returns true if the rule matches every version
func (r *Rule) IsAny() bool {
	return r.Match == "" || r.Match == AnyVersion
}

// Matches returns true if the rule predicate accepts the current version.
// A glob rule that was never initialised is compiled per call; an invalid pattern matches nothing.
func (r *Rule) Matches(current string) bool {
	switch {
	case r.IsAny():
		return true
	case r.matcher != nil:
		return r.matcher.Match(current)
	case strings.HasPrefix(r.Match, globPrefix):
		matcher, err := r.compile()
		return err == nil && matcher.Match(current)
	default:
		return r.Match == current
	}
}

func (r *Rule) String() string {
	match := r.Match
	if match == "" {
		match = AnyVersion
	}
	return match + "=" + r.Version
}

// Rules is an ordered set of rules
type Rules []*Rule

// NewRules parses rule definitions in order
func NewRules(definitions ...string) (Rules, error) {
	var result Rules
	for _, definition := range definitions {
		rule, err := ParseRule(definition)
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, nil
}

// Init validates and compiles every rule
func (r Rules) Init() error {
	for i, rule := range r {
		if rule == nil {
			return fmt.Errorf("rule[%d] was nil", i)
		}
		if err := rule.Init(); err != nil {
			return fmt.Errorf("rule[%d]: %w", i, err)
		}
	}
	return nil
}

// Select returns the first rule matching current, or nil; later rules are never evaluated
func (r Rules) Select(current string) *Rule {
	for _, rule := range r {
		if rule != nil && rule.Matches(current) {
			return rule
		}
	}
	return nil
}

// Strings returns the rules in match=expression form
func (r Rules) Strings() []string {
	result := make([]string, 0, len(r))
	for _, rule := range r {
		result = append(result, rule.String())
	}
	return result
}

package properties

import (
	"os"
	"sort"
)

// DefaultOSPrefix prefixes process environment variables exposed by OS
const DefaultOSPrefix = "env."

// Environment supplies read-only property lookups used during interpolation
type Environment interface {
	Lookup(name string) (string, bool)
}

// Map is a map backed environment
type Map map[string]string

func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// Names returns sorted property names
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new map with values of other overriding m
func (m Map) Merge(other Map) Map {
	result := make(Map, len(m)+len(other))
	for k, v := range m {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Func adapts a lookup function
type Func func(name string) (string, bool)

func (f Func) Lookup(name string) (string, bool) {
	return f(name)
}

type chain []Environment

func (c chain) Lookup(name string) (string, bool) {
	for _, env := range c {
		if value, ok := env.Lookup(name); ok {
			return value, true
		}
	}
	return "", false
}

// Chain returns an environment where the first member defining a name wins
func Chain(envs ...Environment) Environment {
	var result chain
	for _, env := range envs {
		if env == nil {
			continue
		}
		if nested, ok := env.(chain); ok {
			result = append(result, nested...)
			continue
		}
		result = append(result, env)
	}
	return result
}

// OS exposes the process environment under prefix, e.g. ${env.HOME}
func OS(prefix string) Environment {
	return Func(func(name string) (string, bool) {
		if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
			return "", false
		}
		return os.LookupEnv(name[len(prefix):])
	})
}

package reader

import (
	"bytes"
	"context"
	"github.com/viant/versioning/model"
	"io"
	"path"
	"strings"
)

// Format identifies a descriptor syntax
type Format string

const (
	FormatPOM   Format = "pom"
	FormatGoMod Format = "gomod"
	FormatYAML  Format = "yaml"
)

// Options control a single read
type Options struct {
	Format Format // Empty to detect from Source or content
	Strict bool   // Reject content a lax read would tolerate
	Source string // Input source label, used for stream reads and error messages
}

// Reader reads module descriptors from a location, a character stream or a byte stream
type Reader interface {
	// ReadFile reads the descriptor stored at location (local path or storage URL)
	ReadFile(ctx context.Context, location string, options Options) (*model.Model, error)

	// ReadText reads already decoded UTF-8 text; an XML encoding declaration is ignored
	ReadText(ctx context.Context, input io.Reader, options Options) (*model.Model, error)

	// ReadBytes reads raw bytes honoring an XML encoding declaration
	ReadBytes(ctx context.Context, input io.Reader, options Options) (*model.Model, error)
}

// DetectFormat returns the descriptor format implied by name, falling back to content sniffing
func DetectFormat(name string, content []byte) Format {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	switch {
	case base == "pom.xml" || strings.HasSuffix(base, ".pom") || strings.HasSuffix(base, ".xml"):
		return FormatPOM
	case base == "go.mod":
		return FormatGoMod
	case strings.HasSuffix(base, ".yaml") || strings.HasSuffix(base, ".yml"):
		return FormatYAML
	}
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf")))
	switch {
	case bytes.HasPrefix(trimmed, []byte("<")):
		return FormatPOM
	case bytes.HasPrefix(trimmed, []byte("module ")) || bytes.HasPrefix(trimmed, []byte("module\t")) || bytes.HasPrefix(trimmed, []byte("//")):
		return FormatGoMod
	}
	return FormatYAML
}

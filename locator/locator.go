package locator

import (
	"context"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"path"
	"path/filepath"
	"strings"
)

// DefaultMarkers lists descriptor file names in lookup priority
var DefaultMarkers = []string{
	"pom.xml",     // Maven modules
	"module.yaml", // YAML descriptors
	"module.yml",
	"go.mod", // Go modules
}

// Locator finds the descriptor of a module directory
type Locator interface {
	// Locate returns the descriptor location in dir, false when dir holds none
	Locate(ctx context.Context, dir string) (string, bool)
}

// Service locates descriptors on any afs supported storage
type Service struct {
	fs      afs.Service
	markers []string
}

// Option customises a Service
type Option func(*Service)

// WithFs sets storage service
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithMarkers sets descriptor file names in priority order
func WithMarkers(markers ...string) Option {
	return func(s *Service) {
		s.markers = markers
	}
}

// New creates a descriptor locator
func New(opts ...Option) *Service {
	ret := &Service{markers: DefaultMarkers}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Locate returns the first marker present in dir; a dir naming a descriptor file is returned as is
func (s *Service) Locate(ctx context.Context, dir string) (string, bool) {
	if s.isMarker(dir) && s.exists(ctx, dir) {
		return dir, true
	}
	for _, marker := range s.markers {
		location := Join(dir, marker)
		if s.exists(ctx, location) {
			return location, true
		}
	}
	return "", false
}

// Nearest searches up from a local directory for the closest directory holding a descriptor
func (s *Service) Nearest(ctx context.Context, start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if location, ok := s.Locate(ctx, dir); ok {
			return location, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Join appends name to a local path or a storage URL
func Join(base, name string) string {
	if strings.Contains(base, "://") {
		return url.Join(base, name)
	}
	return filepath.Join(base, name)
}

func (s *Service) isMarker(location string) bool {
	base := path.Base(strings.ReplaceAll(location, "\\", "/"))
	for _, marker := range s.markers {
		if base == marker {
			return true
		}
	}
	return false
}

func (s *Service) exists(ctx context.Context, location string) bool {
	ok, err := s.fs.Exists(ctx, location)
	return err == nil && ok
}

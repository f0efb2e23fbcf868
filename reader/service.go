package reader

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/versioning/model"
	"io"
)

const defaultStreamSource = "(stream)"

// Service reads POM, go.mod and module.yaml descriptors
type Service struct {
	fs afs.Service
}

// Option customises a Service
type Option func(*Service)

// WithFs sets the storage service used by ReadFile
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a descriptor reader
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

func (s *Service) ReadFile(ctx context.Context, location string, options Options) (*model.Model, error) {
	content, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, &IOError{Source: location, Err: err}
	}
	if options.Source == "" {
		options.Source = location
	}
	return decode(options.Source, location, content, options, true)
}

func (s *Service) ReadText(ctx context.Context, input io.Reader, options Options) (*model.Model, error) {
	return s.readStream(input, options, false)
}

func (s *Service) ReadBytes(ctx context.Context, input io.Reader, options Options) (*model.Model, error) {
	return s.readStream(input, options, true)
}

func (s *Service) readStream(input io.Reader, options Options, honorEncoding bool) (*model.Model, error) {
	source := options.Source
	if source == "" {
		source = defaultStreamSource
	}
	if input == nil {
		return nil, &IOError{Source: source, Err: fmt.Errorf("input was nil")}
	}
	content, err := io.ReadAll(input)
	if err != nil {
		return nil, &IOError{Source: source, Err: err}
	}
	return decode(source, options.Source, content, options, honorEncoding)
}

func decode(source, name string, content []byte, options Options, honorEncoding bool) (*model.Model, error) {
	format := options.Format
	if format == "" {
		format = DetectFormat(name, content)
	}
	switch format {
	case FormatPOM:
		return decodePOM(source, content, options, honorEncoding)
	case FormatGoMod:
		return decodeGoMod(source, content, options)
	case FormatYAML:
		return decodeYAML(source, content, options)
	default:
		return nil, &ParseError{Source: source, Err: fmt.Errorf("unsupported descriptor format: %s", format)}
	}
}

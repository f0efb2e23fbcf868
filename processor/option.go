package processor

import (
	"github.com/viant/versioning/locator"
	"github.com/viant/versioning/metrics"
	"github.com/viant/versioning/properties"
	"github.com/viant/versioning/reader"
	"github.com/viant/versioning/versioning"
	"log/slog"
)

type Option func(*Processor)

// WithLocator sets the descriptor locator
func WithLocator(locator locator.Locator) Option {
	return func(p *Processor) {
		p.locator = locator
	}
}

// WithReader sets the underlying descriptor reader
func WithReader(reader reader.Reader) Option {
	return func(p *Processor) {
		p.reader = reader
	}
}

// WithModifier sets the versioning modifier, it takes precedence over WithEnvironment
func WithModifier(modifier *versioning.Modifier) Option {
	return func(p *Processor) {
		p.modifier = modifier
	}
}

// WithEnvironment sets the property environment used by the default modifier
func WithEnvironment(env properties.Environment) Option {
	return func(p *Processor) {
		p.env = env
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(p *Processor) {
		p.recorder = recorder
	}
}

package processor

import (
	"context"
	"errors"
	"github.com/viant/versioning/interpolate"
	"github.com/viant/versioning/locator"
	"github.com/viant/versioning/metrics"
	"github.com/viant/versioning/model"
	"github.com/viant/versioning/properties"
	"github.com/viant/versioning/reader"
	"github.com/viant/versioning/versioning"
	"io"
	"log/slog"
)

const interpolationFailed = "interpolation failed while applying versioning changes to"

// Processor intercepts descriptor reads and applies the session versioning rules to every model read.
// It exposes the same entry points as reader.Reader and fails only with the reader's error kinds.
type Processor struct {
	session  *versioning.Session
	locator  locator.Locator
	reader   reader.Reader
	modifier *versioning.Modifier
	env      properties.Environment
	logger   *slog.Logger
	recorder metrics.Recorder
}

// New creates a processor bound to session
func New(session *versioning.Session, opts ...Option) *Processor {
	ret := &Processor{session: session}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.locator == nil {
		ret.locator = locator.New()
	}
	if ret.reader == nil {
		ret.reader = reader.New()
	}
	if ret.modifier == nil {
		ret.modifier = versioning.NewModifier(ret.env)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.recorder == nil {
		ret.recorder = metrics.NoopRecorder{}
	}
	return ret
}

// Session returns the versioning session
func (p *Processor) Session() *versioning.Session {
	return p.session
}

// LocatePom delegates to the locator
func (p *Processor) LocatePom(ctx context.Context, dir string) (string, bool) {
	return p.locator.Locate(ctx, dir)
}

func (p *Processor) ReadFile(ctx context.Context, location string, options reader.Options) (*model.Model, error) {
	m, err := p.reader.ReadFile(ctx, location, options)
	if err != nil {
		p.recorder.IncRead(metrics.ResultReadError)
		return nil, err
	}
	if err = p.applyVersioning(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Processor) ReadText(ctx context.Context, input io.Reader, options reader.Options) (*model.Model, error) {
	m, err := p.reader.ReadText(ctx, input, options)
	if err != nil {
		p.recorder.IncRead(metrics.ResultReadError)
		return nil, err
	}
	if err = p.applyVersioning(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Processor) ReadBytes(ctx context.Context, input io.Reader, options reader.Options) (*model.Model, error) {
	m, err := p.reader.ReadBytes(ctx, input, options)
	if err != nil {
		p.recorder.IncRead(metrics.ResultReadError)
		return nil, err
	}
	if err = p.applyVersioning(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Processor) applyVersioning(ctx context.Context, m *model.Model) error {
	if !p.session.IsEnabled() {
		p.logger.DebugContext(ctx, "versioning session disabled, skipping modification", "module", m.String())
		p.recorder.IncRead(metrics.ResultDisabled)
		return nil
	}
	original := m.String()
	changed, err := p.modifier.ApplyVersioningChanges(m, p.session.VersioningChanges())
	if err != nil {
		p.recorder.IncRead(metrics.ResultFailed)
		var interpolationErr *interpolate.Error
		if errors.As(err, &interpolationErr) {
			return &reader.IOError{Source: m.Location, Message: interpolationFailed, Err: err}
		}
		return &reader.IOError{Source: m.Location, Message: "failed to apply versioning changes to", Err: err}
	}
	if !changed {
		p.logger.DebugContext(ctx, "no version modifications, skipping modification", "module", original, "session", p.session.ID())
		p.recorder.IncRead(metrics.ResultUnchanged)
		return nil
	}
	p.session.ChangedGAVs().Add(model.GA(m))
	p.logger.DebugContext(ctx, "version modified", "module", original, "version", m.Version, "session", p.session.ID())
	p.recorder.IncRead(metrics.ResultChanged)
	return nil
}

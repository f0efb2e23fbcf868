package reactor

import (
	"context"
	"fmt"
	"github.com/viant/versioning/locator"
	"github.com/viant/versioning/model"
	"github.com/viant/versioning/processor"
	"github.com/viant/versioning/reader"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const defaultParallelism = 4

// Reactor reads every descriptor of a multi-module tree through the processor
type Reactor struct {
	processor   *processor.Processor
	parallelism int
	options     reader.Options
	logger      *slog.Logger
}

// Option customises a Reactor
type Option func(*Reactor)

// WithParallelism limits concurrent descriptor reads
func WithParallelism(parallelism int) Option {
	return func(r *Reactor) {
		r.parallelism = parallelism
	}
}

// WithReadOptions sets options passed to every read; Source is always the descriptor location
func WithReadOptions(options reader.Options) Option {
	return func(r *Reactor) {
		r.options = options
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reactor) {
		r.logger = logger
	}
}

// New creates a reactor
func New(processor *processor.Processor, opts ...Option) *Reactor {
	ret := &Reactor{processor: processor}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.parallelism < 1 {
		ret.parallelism = defaultParallelism
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	return ret
}

type pending struct {
	dir      string
	declared string
}

// Run reads the root descriptor and every module it aggregates, transitively.
// Sibling modules are read concurrently; models are returned sorted by location.
func (r *Reactor) Run(ctx context.Context, root string) ([]*model.Model, error) {
	var (
		mux     sync.Mutex
		visited = map[string]bool{}
		result  []*model.Model
		level   = []pending{{dir: root}}
	)
	for len(level) > 0 {
		var next []pending
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(r.parallelism)
		for _, item := range level {
			item := item
			group.Go(func() error {
				location, ok := r.processor.LocatePom(groupCtx, item.dir)
				if !ok {
					if item.declared != "" {
						return fmt.Errorf("module %s declared in %s has no descriptor", item.dir, item.declared)
					}
					return fmt.Errorf("no descriptor found in %s", item.dir)
				}
				mux.Lock()
				seen := visited[location]
				visited[location] = true
				mux.Unlock()
				if seen {
					return nil
				}
				options := r.options
				options.Source = location
				m, err := r.processor.ReadFile(groupCtx, location, options)
				if err != nil {
					return err
				}
				r.logger.DebugContext(groupCtx, "module read", "module", m.String(), "source", location)
				base := parent(location)
				mux.Lock()
				defer mux.Unlock()
				result = append(result, m)
				for _, module := range m.Modules {
					if module = strings.TrimSpace(module); module != "" {
						next = append(next, pending{dir: locator.Join(base, module), declared: location})
					}
				}
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
		level = next
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Location < result[j].Location
	})
	return result, nil
}

// parent returns the directory holding a descriptor location
func parent(location string) string {
	if strings.Contains(location, "://") {
		if index := strings.LastIndex(location, "/"); index != -1 {
			return location[:index]
		}
		return location
	}
	return filepath.Dir(location)
}

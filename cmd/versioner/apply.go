package main

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/versioning/config"
	"github.com/viant/versioning/metrics"
	"github.com/viant/versioning/processor"
	"github.com/viant/versioning/reactor"
	"github.com/viant/versioning/reader"
	"github.com/viant/versioning/report"
	"github.com/viant/versioning/versioning"
	"os"
	"time"
)

// ApplyCmd implements the 'apply' command
type ApplyCmd struct {
	Root        string            `arg:"" optional:"" default:"." help:"Root module directory or storage URL"`
	Rules       []string          `name:"rule" short:"r" help:"Version change rule match=expression; takes precedence over configured rules and enables the session"`
	Properties  map[string]string `name:"property" short:"D" help:"Interpolation property name=value"`
	EnvFiles    []string          `name:"env-file" help:"Property file in KEY=VALUE format"`
	Git         bool              `help:"Expose git.* properties of the repository containing the root"`
	Disable     bool              `help:"Disable the versioning session"`
	Parallel    int               `help:"Maximum concurrent descriptor reads"`
	Format      string            `enum:"text,yaml,json" default:"text" help:"Summary format (text|yaml|json)"`
	MetricsFile string            `name:"metrics-file" help:"Write Prometheus metrics to file"`
	Strict      bool              `help:"Reject descriptors a lax read would tolerate"`
}

func (a *ApplyCmd) Run(global *Global, root *CLI) error {
	cfg, err := a.config(global, root)
	if err != nil {
		return err
	}
	env, err := cfg.Environment(time.Now())
	if err != nil {
		return fmt.Errorf("failed to build properties: %w", err)
	}
	session := cfg.Session()
	registry := prometheus.NewRegistry()
	proc := processor.New(session,
		processor.WithEnvironment(env),
		processor.WithLogger(global.Logger),
		processor.WithRecorder(metrics.NewPrometheusRecorder(registry)),
	)
	global.Logger.Info("versioning session started", "session", session.ID(), "enabled", session.IsEnabled(), "rules", len(cfg.Rules))
	models, err := reactor.New(proc,
		reactor.WithParallelism(cfg.Parallelism),
		reactor.WithReadOptions(reader.Options{Strict: a.Strict}),
		reactor.WithLogger(global.Logger),
	).Run(global.Context, a.Root)
	if err != nil {
		return err
	}
	if err = report.New(session, models).Write(global.Out, report.Format(a.Format)); err != nil {
		return err
	}
	if a.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(a.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// config merges file, environment and flag settings; flags win
func (a *ApplyCmd) config(global *Global, root *CLI) (*config.Config, error) {
	cfg := config.New()
	if root.Config != "" {
		loaded, err := config.Load(global.Context, root.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if len(a.Rules) > 0 {
		rules, err := versioning.NewRules(a.Rules...)
		if err != nil {
			return nil, err
		}
		cfg.Rules = append(rules, cfg.Rules...)
		cfg.Enabled = true
	}
	if len(a.Properties) > 0 {
		merged := make(map[string]string, len(cfg.Properties)+len(a.Properties))
		for k, v := range cfg.Properties {
			merged[k] = v
		}
		for k, v := range a.Properties {
			merged[k] = v
		}
		cfg.Properties = merged
	}
	cfg.EnvFiles = append(cfg.EnvFiles, a.EnvFiles...)
	if a.Git {
		cfg.Git.Enabled = true
		if cfg.Git.Dir == "" {
			cfg.Git.Dir = a.Root
		}
	}
	if a.Disable {
		cfg.Enabled = false
	}
	if a.Parallel > 0 {
		cfg.Parallelism = a.Parallel
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Package module implements the cleaner module
package module

import (
	"scrubjay/internal/modkit"
	"scrubjay/internal/platform/web"
	"scrubjay/internal/services/cleaner/domain"
	cleanhttp "scrubjay/internal/services/cleaner/http"
	"scrubjay/internal/services/cleaner/service"
)

// Ports exposed by the cleaner module
type Ports struct {
	Runner     domain.RunnerPort
	Normalizer domain.NormalizerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new cleaner module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("cleaner"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("cleaner module: expected WithPorts(cleaner/domain.Ports)")
	}
	if ports.Tweets == nil || ports.Writer == nil {
		panic("cleaner module: Ports missing Tweets or Writer")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	if overrides.MaxRangeHours != 0 {
		cfg.MaxRangeHours = overrides.MaxRangeHours
	}
	// bool override wins (defaults false if caller didn't set)
	cfg.DryRun = overrides.DryRun

	svc := service.New(ports.Tweets, ports.Writer, service.Config{
		Workers:       cfg.Workers,
		PageSize:      cfg.PageSize,
		MaxRangeHours: cfg.MaxRangeHours,
		DryRun:        cfg.DryRun,
		MinWordLength: cfg.MinWordLength,
		KeepMarkers:   cfg.KeepMarkers,
		MentionToken:  cfg.MentionToken,
		URLToken:      cfg.URLToken,
		Lemmatize:     cfg.Lemmatize,
		FoldUnicode:   cfg.FoldUnicode,
		StopTerms:     cfg.StopTerms,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc, Normalizer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "cleaner" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r web.Router) {
	cleanhttp.Register(r, m.ports.Normalizer)
}

// Package module provides the tweets module
package module

import (
	"scrubjay/internal/modkit"
	"scrubjay/internal/modkit/repokit"
	"scrubjay/internal/platform/web"
	"scrubjay/internal/services/tweets/domain"
	"scrubjay/internal/services/tweets/repo"
	"scrubjay/internal/services/tweets/service"
)

// Ports exposed by the tweets module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
	Ingest domain.IngestPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new tweets module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Writer: svc, Ingest: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "tweets" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(_ web.Router) {}

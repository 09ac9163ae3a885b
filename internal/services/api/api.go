// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"scrubjay/internal/platform/config"
	"scrubjay/internal/platform/logger"
	"scrubjay/internal/platform/store"
	"scrubjay/internal/platform/web"

	"scrubjay/internal/modkit"
	"scrubjay/internal/modkit/module"

	"scrubjay/internal/core/version"
	cleanerdom "scrubjay/internal/services/cleaner/domain"
	cleanermod "scrubjay/internal/services/cleaner/module"
	tweetsmod "scrubjay/internal/services/tweets/module"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// CommonStack is the middleware stack shared by all API routes
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		web.RequestScope,
		web.RecoverJSON,
		web.AccessLog(web.AccessLogOptions{Slow: 2 * time.Second}),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}),
	}
}

// Mount mounts the API service onto the given router
func Mount(r web.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the tweets module first and extract its ports
	tweets := tweetsmod.New(deps)
	tports := module.MustPortsOf[tweetsmod.Ports](tweets)

	// Inject the tweet reader/writer into the cleaner module
	cleaner := cleanermod.New(
		deps,
		cleanermod.FromConfig(deps.Cfg),
		modkit.WithPorts(cleanerdom.Ports{
			Tweets: tports.Reader,
			Writer: tports.Writer,
		}),
	)

	mods := []module.Module{
		tweets,
		cleaner,
	}

	r.Group(func(g web.Router) {
		g.Use(CommonStack()...)

		web.GetJSON(g, "/healthz", func(req *http.Request) (any, error) {
			return map[string]any{"status": "ok", "build": version.Info()}, nil
		})

		g.Route("/api/v1", func(api web.Router) {
			for _, m := range mods {
				// register each module's ports under its own name (for cross-module lookups)
				module.Register(m.Name(), m.Ports())

				m.MountRoutes(api)
			}
		})
	})
}

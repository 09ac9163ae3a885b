// Package http mounts the cleaner HTTP surface
package http

import (
	stdhttp "net/http"

	"scrubjay/internal/platform/web"
	"scrubjay/internal/services/cleaner/domain"
)

// Register mounts cleaner routes on the given router
func Register(r web.Router, svc domain.NormalizerPort) {
	web.PostJSON(r, "/clean", func(req *stdhttp.Request, in domain.CleanInput) (any, error) {
		out := svc.Normalize(req.Context(), in.Texts)
		return domain.CleanOutput{
			Texts:   out,
			Dropped: len(in.Texts) - len(out),
		}, nil
	})
}

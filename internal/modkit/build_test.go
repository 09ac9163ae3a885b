package modkit

import (
	"net/http"
	"testing"

	"scrubjay/internal/platform/web"
)

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 || b.Ports != nil {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks should default to no-ops")
	}
	// defaults must be callable
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter should pass through, got %v", got)
	}
	b.Register(nil)
}

func TestBuildAppliesOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	type ports struct{ N int }

	called := false
	b := Build(
		WithName("cleaner"),
		WithPrefix("/clean"),
		WithMiddlewares(mw),
		WithPorts(ports{N: 7}),
		WithRegister(func(web.Router) { called = true }),
	)

	if b.Name != "cleaner" || b.Prefix != "/clean" {
		t.Fatalf("built = %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw count = %d", len(b.Mw))
	}
	if p, ok := b.Ports.(ports); !ok || p.N != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	b.Register(nil)
	if !called {
		t.Fatal("register hook not invoked")
	}
}

package module

import (
	"testing"

	"scrubjay/internal/platform/web"
)

type namer interface{ Kind() string }

type portBundle struct {
	Reader namer
}

type stubModule struct{ ports any }

func (stubModule) MountRoutes(web.Router) {}
func (m stubModule) Ports() any           { return m.ports }
func (stubModule) Name() string           { return "stub" }

func TestPortsOfDirectAndStructField(t *testing.T) {
	direct := stubModule{ports: fakePort{}}
	if v, ok := PortsOf[namer](direct); !ok || v.Kind() != "reader" {
		t.Fatalf("direct: ok=%v", ok)
	}

	bundled := stubModule{ports: portBundle{Reader: fakePort{}}}
	if v, ok := PortsOf[namer](bundled); !ok || v.Kind() != "reader" {
		t.Fatalf("bundled: ok=%v", ok)
	}

	if _, ok := PortsOf[namer](stubModule{ports: nil}); ok {
		t.Fatal("nil ports should not resolve")
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing port")
		}
	}()
	MustPortsOf[namer](stubModule{ports: nil})
}

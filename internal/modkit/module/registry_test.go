package module

import "testing"

type readerPort interface{ Kind() string }

type fakePort struct{}

func (fakePort) Kind() string { return "reader" }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("tweets", fakePort{})

	p, ok := PortsAs[readerPort]("tweets")
	if !ok {
		t.Fatal("port not found")
	}
	if p.Kind() != "reader" {
		t.Fatalf("kind = %q", p.Kind())
	}

	if _, ok := PortsAs[readerPort]("absent"); ok {
		t.Fatal("absent module should not resolve")
	}
	if _, ok := PortsAs[interface{ Other() }]("tweets"); ok {
		t.Fatal("wrong interface should not assert")
	}
}

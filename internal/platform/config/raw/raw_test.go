package raw

import "testing"

func TestGetWithPrefix(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "  info  ")
	c := New().Prefix("APP_").Prefix("LOG_")
	if got := c.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("Get default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("FLAG_YES", "yes")
	t.Setenv("FLAG_ONE", "1")
	t.Setenv("FLAG_NO", "nope")
	c := New().Prefix("FLAG_")
	if !c.GetBool("YES", false) || !c.GetBool("ONE", false) {
		t.Fatal("truthy values not recognized")
	}
	if c.GetBool("NO", true) {
		t.Fatal("nope should be false")
	}
	if !c.GetBool("MISSING", true) {
		t.Fatal("default not honored")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("N_OK", "42")
	t.Setenv("N_BAD", "4x")
	c := New().Prefix("N_")
	if got := c.GetInt("OK", 1); got != 42 {
		t.Fatalf("GetInt = %d", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt bad = %d", got)
	}
}

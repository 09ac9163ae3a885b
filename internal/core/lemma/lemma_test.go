package lemma

import "testing"

func TestLemmatize(t *testing.T) {
	d := New()

	tests := []struct {
		in, out string
	}{
		{"cats", "cat"},
		{"houses", "house"},
		{"cities", "city"},
		{"glasses", "glass"},
		{"churches", "church"},
		{"boxes", "box"},
		{"women", "woman"},
		{"children", "child"},
		{"feet", "foot"},
		{"glass", "glass"},
		{"bus", "bus"},
		{"basis", "basis"},
		{"dog", "dog"},
		{"go", "go"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := d.Lemmatize(tc.in); got != tc.out {
			t.Fatalf("Lemmatize(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestLemmatizeCaches(t *testing.T) {
	d := New()
	first := d.Lemmatize("dogs")
	second := d.Lemmatize("dogs")
	if first != "dog" || second != "dog" {
		t.Fatalf("cache broke the answer: %q then %q", first, second)
	}
	d.mu.RLock()
	_, ok := d.cache["dogs"]
	d.mu.RUnlock()
	if !ok {
		t.Fatal("expected dogs to be cached")
	}
}

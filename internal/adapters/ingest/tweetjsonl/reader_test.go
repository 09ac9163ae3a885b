package tweetjsonl

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

const fixture = `{"id":"0f8fad5b-d9cb-469f-a165-70867728950e","author":"alice","lang":"en","posted_at":"2024-05-01T00:30:00Z","text":"hello world"}
not json at all
{"author":"bob","lang":"EN","posted_at":"2024-05-01T01:00:00Z","text":"no id here"}
{"author":"carol","posted_at":"2024-05-01T02:00:00Z","text":"   "}
{"id":"not-a-uuid","author":"dave","posted_at":"2024-05-01T03:00:00Z","text":"bad id"}
`

func writeFixture(t *testing.T, name string, gzipped bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var w io.WriteCloser = f
	if gzipped {
		w = gzip.NewWriter(f)
	}
	if _, err := w.Write([]byte(fixture)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if gzipped {
		if err := w.Close(); err != nil {
			t.Fatalf("close gzip: %v", err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func readAll(t *testing.T, path string) []Line {
	t.Helper()
	rd, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = rd.Close() }()

	var out []Line
	for {
		ln, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, ln)
	}
	return out
}

func TestReaderSkipsMalformedAndBlank(t *testing.T) {
	for _, gz := range []bool{false, true} {
		name := "tweets.jsonl"
		if gz {
			name = "tweets.jsonl.gz"
		}
		path := writeFixture(t, name, gz)

		lines := readAll(t, path)
		if len(lines) != 3 {
			t.Fatalf("gz=%v lines = %d, want 3", gz, len(lines))
		}
		if lines[0].Author != "alice" || lines[1].Author != "bob" || lines[2].Author != "dave" {
			t.Fatalf("gz=%v authors = %v %v %v", gz, lines[0].Author, lines[1].Author, lines[2].Author)
		}
	}
}

func TestLineTweetConversion(t *testing.T) {
	path := writeFixture(t, "tweets.jsonl", false)
	lines := readAll(t, path)

	// explicit uuid is kept
	tw := lines[0].Tweet()
	if tw.ID != uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e") {
		t.Fatalf("id = %s", tw.ID)
	}
	if tw.Lang != "en" || tw.Author != "alice" {
		t.Fatalf("tweet = %+v", tw)
	}

	// missing id gets a deterministic synthetic one, lang folds to lowercase
	a := lines[1].Tweet()
	b := lines[1].Tweet()
	if a.ID == uuid.Nil || a.ID != b.ID {
		t.Fatalf("synthetic ids differ: %s vs %s", a.ID, b.ID)
	}
	if a.Lang != "en" {
		t.Fatalf("lang = %q", a.Lang)
	}

	// unparsable id also falls back to synthetic
	d := lines[2].Tweet()
	if d.ID == uuid.Nil {
		t.Fatalf("bad id not replaced")
	}
}

func TestSyntheticIDIsStable(t *testing.T) {
	at := time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)
	x := SyntheticID(" Bob ", at, "no id here")
	y := SyntheticID("bob", at.In(time.FixedZone("X", 3600)), "no id here")
	if x != y {
		t.Fatalf("ids differ across trim/case/zone: %s vs %s", x, y)
	}
	z := SyntheticID("bob", at, "different text")
	if x == z {
		t.Fatalf("distinct texts collided")
	}
}

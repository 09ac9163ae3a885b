// Package tweetjsonl streams tweet records from JSONL export files,
// plain or gzip compressed, one JSON object per line.
package tweetjsonl

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"scrubjay/internal/platform/logger"
)

const (
	maxScanTokenSize = 4 * 1024 * 1024
	sampleRawMax     = 2048 // max bytes of raw JSON to log for the sample
)

// Line is one tweet record as it appears in an export file
type Line struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Lang     string    `json:"lang"`
	PostedAt time.Time `json:"posted_at"`
	Text     string    `json:"text"`
}

// Reader streams Line items from a JSONL stream
type Reader struct {
	r       io.ReadCloser
	gz      *gzip.Reader
	sc      *bufio.Scanner
	err     error
	lines   int
	bytes   int64
	sampled bool // logs exactly one sample raw line per file
}

// Open opens path and returns a Reader, transparently ungzipping *.gz
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f, strings.HasSuffix(path, ".gz"))
}

// NewReader wraps r; when gzipped it expects a gzip stream
func NewReader(r io.ReadCloser, gzipped bool) (*Reader, error) {
	rd := &Reader{r: r}
	var src io.Reader = r
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			if cerr := r.Close(); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
		rd.gz = gz
		src = gz
	}
	sc := bufio.NewScanner(src)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxScanTokenSize)
	rd.sc = sc
	return rd, nil
}

// Next reads the next record; returns io.EOF when done.
// Malformed lines and lines without text are skipped.
func (rd *Reader) Next() (Line, error) {
	if rd.err != nil {
		return Line{}, rd.err
	}
	for {
		if !rd.sc.Scan() {
			if err := rd.sc.Err(); err != nil {
				rd.err = err
				return Line{}, err
			}
			rd.err = io.EOF
			return Line{}, io.EOF
		}
		raw := rd.sc.Bytes()
		rd.bytes += int64(len(raw) + 1) // include newline

		var ln Line
		if err := json.Unmarshal(raw, &ln); err != nil {
			// skip malformed lines
			continue
		}
		if strings.TrimSpace(ln.Text) == "" {
			continue
		}
		rd.lines++

		// Log a single raw-line sample (first valid JSON line in this file)
		if !rd.sampled {
			rd.sampled = true
			l := logger.Named("tweetjsonl")
			l.Debug().
				Int("line_bytes", len(raw)).
				Str("sample_raw", truncateUTF8(raw, sampleRawMax)).
				Msg("tweetjsonl: sample raw line")
		}

		return ln, nil
	}
}

// Close closes the underlying reader
func (rd *Reader) Close() error {
	var first error
	if rd.gz != nil {
		if err := rd.gz.Close(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
			first = err
		}
	}
	if rd.r != nil {
		if err := rd.r.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Stats returns the number of records parsed and total bytes scanned so far
func (rd *Reader) Stats() (lines int, bytes int64) {
	return rd.lines, rd.bytes
}

// truncateUTF8 returns a string made from b, truncated to at most max bytes,
// backing up to a UTF-8 boundary if needed, and appending an ellipsis if truncated
func truncateUTF8(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	// back up to the start of a rune (0b10xxxxxx indicates continuation byte)
	for i > 0 && (b[i]&0xC0) == 0x80 {
		i--
	}
	if i <= 0 {
		i = max
	}
	return string(b[:i]) + "..."
}

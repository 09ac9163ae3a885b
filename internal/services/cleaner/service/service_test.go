package service

import (
	"context"
	"testing"
	"time"

	perr "scrubjay/internal/platform/errors"
	tweetsdom "scrubjay/internal/services/tweets/domain"

	"github.com/google/uuid"
)

// fakeTweets serves canned pages, two rows at a time
type fakeTweets struct {
	rows  []*tweetsdom.Tweet
	calls int
}

func (f *fakeTweets) List(_ context.Context, in tweetsdom.ListInput) ([]*tweetsdom.Tweet, tweetsdom.AfterKey, error) {
	f.calls++
	start := 0
	if in.After.ID != uuid.Nil {
		for i, t := range f.rows {
			if t.ID == in.After.ID {
				start = i + 1
				break
			}
		}
	}
	if start >= len(f.rows) {
		return nil, tweetsdom.AfterKey{}, nil
	}
	end := start + 2
	if end > len(f.rows) {
		end = len(f.rows)
	}
	page := f.rows[start:end]
	last := page[len(page)-1]
	return page, tweetsdom.AfterKey{PostedAt: last.PostedAt, ID: last.ID}, nil
}

type fakeWriter struct {
	got []tweetsdom.CleanUpdate
}

func (f *fakeWriter) WriteClean(_ context.Context, xs []tweetsdom.CleanUpdate) (int64, error) {
	f.got = append(f.got, xs...)
	return int64(len(xs)), nil
}

func hourRange() (time.Time, time.Time) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return start, start.Add(2 * time.Hour)
}

func tweet(text string) *tweetsdom.Tweet {
	return &tweetsdom.Tweet{ID: uuid.New(), PostedAt: time.Date(2024, 5, 1, 0, 30, 0, 0, time.UTC), Text: text}
}

func TestRunRangeCleansAndWrites(t *testing.T) {
	rows := []*tweetsdom.Tweet{
		tweet("RT @user: Check this outttt!! http://t.co/abc123"),
		tweet("LOVED it soooo much"),
		tweet("@bob hi"),
	}
	reader := &fakeTweets{rows: rows}
	writer := &fakeWriter{}
	svc := New(reader, writer, Config{Workers: 2, KeepMarkers: true})

	start, end := hourRange()
	if err := svc.RunRange(context.Background(), start, end); err != nil {
		t.Fatalf("RunRange: %v", err)
	}

	if len(writer.got) != 3 {
		t.Fatalf("updates = %d", len(writer.got))
	}
	byID := map[uuid.UUID]string{}
	for _, u := range writer.got {
		byID[u.ID] = u.CleanText
	}
	if got := byID[rows[0].ID]; got != "<username> check this out <url>" {
		t.Fatalf("row0 clean = %q", got)
	}
	if got := byID[rows[1].ID]; got != "loved it so much" {
		t.Fatalf("row1 clean = %q", got)
	}
	if got := byID[rows[2].ID]; got != "<username> hi" {
		t.Fatalf("row2 clean = %q", got)
	}

	// source rows must never be mutated
	if rows[0].CleanText != "" {
		t.Fatalf("source row mutated: %q", rows[0].CleanText)
	}
}

func TestRunRangeDryRunSkipsWrites(t *testing.T) {
	reader := &fakeTweets{rows: []*tweetsdom.Tweet{tweet("hello world")}}
	writer := &fakeWriter{}
	svc := New(reader, writer, Config{DryRun: true, KeepMarkers: true})

	start, end := hourRange()
	if err := svc.RunRange(context.Background(), start, end); err != nil {
		t.Fatalf("RunRange: %v", err)
	}
	if len(writer.got) != 0 {
		t.Fatalf("dry run wrote %d updates", len(writer.got))
	}
}

func TestRunRangeValidatesWindow(t *testing.T) {
	svc := New(&fakeTweets{}, &fakeWriter{}, Config{})

	start, end := hourRange()
	err := svc.RunRange(context.Background(), end, start)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}

	svc = New(&fakeTweets{}, &fakeWriter{}, Config{MaxRangeHours: 1})
	err = svc.RunRange(context.Background(), start, end)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want range cap error, got %v", err)
	}
}

func TestNormalizeDropsBlankResults(t *testing.T) {
	svc := New(&fakeTweets{}, &fakeWriter{}, Config{KeepMarkers: true})

	out := svc.Normalize(context.Background(), []string{"   ", "Hello!!!", "!!!"})
	if len(out) != 1 || out[0] != "hello" {
		t.Fatalf("out = %v", out)
	}
}

func TestBuildPipelineKnobs(t *testing.T) {
	// stop terms and min length stack on top of the base pipeline
	svc := New(&fakeTweets{}, &fakeWriter{}, Config{
		KeepMarkers:   true,
		MinWordLength: 3,
		StopTerms:     []string{"the"},
	})
	out := svc.Normalize(context.Background(), []string{"The cat sat on the mat"})
	if len(out) != 1 || out[0] != "cat sat mat" {
		t.Fatalf("out = %v", out)
	}

	// lemmatization folds plurals
	svc = New(&fakeTweets{}, &fakeWriter{}, Config{KeepMarkers: true, Lemmatize: true})
	out = svc.Normalize(context.Background(), []string{"cats and dogs"})
	if len(out) != 1 || out[0] != "cat and dog" {
		t.Fatalf("lemmatized = %v", out)
	}

	// custom mask tokens
	svc = New(&fakeTweets{}, &fakeWriter{}, Config{KeepMarkers: true, MentionToken: "<m>", URLToken: "<u>"})
	out = svc.Normalize(context.Background(), []string{"@alice see https://x.co"})
	if len(out) != 1 || out[0] != "<m> see <u>" {
		t.Fatalf("masked = %v", out)
	}
}

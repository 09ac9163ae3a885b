package service

import (
	"context"
	"testing"
	"time"

	"scrubjay/internal/modkit/repokit"
	"scrubjay/internal/platform/store"
	"scrubjay/internal/services/tweets/domain"
	"scrubjay/internal/services/tweets/repo"

	"github.com/google/uuid"
)

// fakeTx satisfies repokit.TxRunner; Tx just invokes fn with itself
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (f fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(f) }

// fakeStorage records the limit the service passed down
type fakeStorage struct {
	gotLimit  int
	rows      []*domain.Tweet
	wroteIDs  []uuid.UUID
	insertedN int64
}

func (f *fakeStorage) List(_ context.Context, _ domain.ListInput, hardLimit int) ([]*domain.Tweet, domain.AfterKey, error) {
	f.gotLimit = hardLimit
	var next domain.AfterKey
	if n := len(f.rows); n > 0 {
		last := f.rows[n-1]
		next = domain.AfterKey{PostedAt: last.PostedAt, ID: last.ID}
	}
	return f.rows, next, nil
}

func (f *fakeStorage) WriteClean(_ context.Context, xs []domain.CleanUpdate) (int64, error) {
	for _, x := range xs {
		f.wroteIDs = append(f.wroteIDs, x.ID)
	}
	return int64(len(xs)), nil
}

func (f *fakeStorage) Insert(_ context.Context, xs []*domain.Tweet) (int64, error) {
	f.insertedN = int64(len(xs))
	return f.insertedN, nil
}

func binderFor(st *fakeStorage) repokit.Binder[repo.Storage] {
	return repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
}

func TestListClampsLimit(t *testing.T) {
	st := &fakeStorage{}
	svc := New(fakeTx{}, binderFor(st), Config{HardLimit: 100})

	if _, _, err := svc.List(context.Background(), domain.ListInput{Limit: 0}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if st.gotLimit != 100 {
		t.Fatalf("zero limit should clamp to hard limit, got %d", st.gotLimit)
	}

	if _, _, err := svc.List(context.Background(), domain.ListInput{Limit: 7}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if st.gotLimit != 7 {
		t.Fatalf("in-range limit should pass through, got %d", st.gotLimit)
	}

	if _, _, err := svc.List(context.Background(), domain.ListInput{Limit: 5000}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if st.gotLimit != 100 {
		t.Fatalf("oversized limit should clamp, got %d", st.gotLimit)
	}
}

func TestListReturnsNextKey(t *testing.T) {
	id := uuid.New()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st := &fakeStorage{rows: []*domain.Tweet{{ID: id, PostedAt: at, Text: "hi"}}}
	svc := New(fakeTx{}, binderFor(st), Config{})

	rows, next, err := svc.List(context.Background(), domain.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if next.ID != id || !next.PostedAt.Equal(at) {
		t.Fatalf("next = %+v", next)
	}
}

func TestWriteCleanEmptyBatchSkipsTx(t *testing.T) {
	st := &fakeStorage{}
	svc := New(fakeTx{}, binderFor(st), Config{})

	n, err := svc.WriteClean(context.Background(), nil)
	if err != nil || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(st.wroteIDs) != 0 {
		t.Fatal("storage should not be touched for empty batch")
	}

	id := uuid.New()
	n, err = svc.WriteClean(context.Background(), []domain.CleanUpdate{{ID: id, CleanText: "hi"}})
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(st.wroteIDs) != 1 || st.wroteIDs[0] != id {
		t.Fatalf("wrote = %v", st.wroteIDs)
	}
}

func TestIngest(t *testing.T) {
	st := &fakeStorage{}
	svc := New(fakeTx{}, binderFor(st), Config{})

	n, err := svc.Ingest(context.Background(), []*domain.Tweet{{ID: uuid.New()}, {ID: uuid.New()}})
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestTweetCloneIsDeep(t *testing.T) {
	orig := &domain.Tweet{ID: uuid.New(), Text: "raw", CleanText: ""}
	c := orig.Clone()
	c.SetText("clean")
	if orig.CleanText != "" {
		t.Fatal("clone mutated original")
	}
	if c.TextValue() != "raw" {
		t.Fatalf("TextValue = %q", c.TextValue())
	}
	if c.CleanText != "clean" {
		t.Fatalf("CleanText = %q", c.CleanText)
	}
}

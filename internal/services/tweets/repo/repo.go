// Package repo provides repository implementations for tweets
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scrubjay/internal/modkit/repokit"
	perr "scrubjay/internal/platform/errors"
	"scrubjay/internal/services/tweets/domain"

	"github.com/google/uuid"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the tweets repository
type Storage interface {
	List(ctx context.Context, in domain.ListInput, hardLimit int) ([]*domain.Tweet, domain.AfterKey, error)
	WriteClean(ctx context.Context, xs []domain.CleanUpdate) (int64, error)
	Insert(ctx context.Context, xs []*domain.Tweet) (int64, error)
}

type pg struct{ q repokit.Queryer }

// List implements keyset pagination over (posted_at, id)
func (s *pg) List(ctx context.Context, in domain.ListInput, hardLimit int) ([]*domain.Tweet, domain.AfterKey, error) {
	// Dynamic WHERE with numbered args
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString(`
		SELECT
			t.id,
			t.author,
			t.lang,
			t.posted_at,
			t.text,
			COALESCE(t.clean_text, '') AS clean_text
		FROM tweets t
		WHERE t.posted_at >= ` + arg(in.Since) + ` AND t.posted_at < ` + arg(in.Until) + `
	`)

	// Keyset only when AfterKey is set (avoid nil uuid on first page)
	if in.After.ID != uuid.Nil {
		sb.WriteString("  AND (t.posted_at, t.id) > (" + arg(in.After.PostedAt) + ", " + arg(in.After.ID) + ")\n")
	}

	if in.Author != "" {
		sb.WriteString("  AND t.author = " + arg(in.Author) + "\n")
	}
	if in.Lang != "" {
		sb.WriteString("  AND t.lang = " + arg(in.Lang) + "\n")
	}
	if in.OnlyDirty {
		sb.WriteString("  AND t.clean_text IS NULL\n")
	}

	sb.WriteString("ORDER BY t.posted_at, t.id\nLIMIT " + arg(hardLimit))

	rows, err := s.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, domain.AfterKey{}, perr.FromPostgres(err, "list tweets")
	}
	defer rows.Close()

	out := make([]*domain.Tweet, 0, hardLimit)
	var last domain.AfterKey
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.Author, &t.Lang, &t.PostedAt, &t.Text, &t.CleanText); err != nil {
			return nil, domain.AfterKey{}, perr.FromPostgres(err, "scan tweet")
		}
		out = append(out, &t)
		last = domain.AfterKey{PostedAt: t.PostedAt, ID: t.ID}
	}
	return out, last, rows.Err()
}

// WriteClean updates clean_text in one statement via unnest
func (s *pg) WriteClean(ctx context.Context, xs []domain.CleanUpdate) (int64, error) {
	if len(xs) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(xs))
	texts := make([]string, len(xs))
	for i, x := range xs {
		ids[i] = x.ID
		texts[i] = x.CleanText
	}

	const q = `
		UPDATE tweets AS t
		SET clean_text = u.clean_text,
		    cleaned_at = now()
		FROM unnest($1::uuid[], $2::text[]) AS u(id, clean_text)
		WHERE t.id = u.id
	`
	tag, err := s.q.Exec(ctx, q, ids, texts)
	if err != nil {
		return 0, perr.FromPostgres(err, "write clean text")
	}
	return tag.RowsAffected(), nil
}

// Insert stores a batch of raw tweets, skipping duplicates
func (s *pg) Insert(ctx context.Context, xs []*domain.Tweet) (int64, error) {
	if len(xs) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(xs))
	authors := make([]string, len(xs))
	langs := make([]string, len(xs))
	posted := make([]time.Time, len(xs))
	texts := make([]string, len(xs))
	for i, t := range xs {
		ids[i] = t.ID
		authors[i] = t.Author
		langs[i] = t.Lang
		posted[i] = t.PostedAt.UTC()
		texts[i] = t.Text
	}

	const q = `
		INSERT INTO tweets (id, author, lang, posted_at, text)
		SELECT * FROM unnest($1::uuid[], $2::text[], $3::text[], $4::timestamptz[], $5::text[])
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := s.q.Exec(ctx, q, ids, authors, langs, posted, texts)
	if err != nil {
		return 0, perr.FromPostgres(err, "insert tweets")
	}
	return tag.RowsAffected(), nil
}

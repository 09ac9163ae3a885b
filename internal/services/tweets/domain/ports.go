package domain

import "context"

// ReaderPort defines the read interface for tweets
type ReaderPort interface {
	// List returns up to Limit rows ordered by (posted_at, id)
	List(ctx context.Context, in ListInput) (rows []*Tweet, next AfterKey, err error)
}

// WriterPort persists processed text back onto tweet rows
type WriterPort interface {
	// WriteClean updates clean_text for the given ids, returns rows updated
	WriteClean(ctx context.Context, xs []CleanUpdate) (int64, error)
}

// IngestPort stores raw tweets
type IngestPort interface {
	// Ingest inserts a batch, skipping duplicates, returns rows inserted
	Ingest(ctx context.Context, xs []*Tweet) (int64, error)
}

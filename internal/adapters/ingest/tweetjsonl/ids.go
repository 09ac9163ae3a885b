package tweetjsonl

import (
	"strings"
	"time"

	tweetsdom "scrubjay/internal/services/tweets/domain"

	"github.com/google/uuid"
)

// Synthetic IDs: export files do not always carry an id column, and when they
// do it is not always a UUID. Rows without a usable id get a deterministic
// UUIDv5 derived from (author, posted_at, text), so re-ingesting the same file
// produces the same ids and dedupes against the unique key on insert.

var tweetNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// SyntheticID returns a deterministic UUID for a record without one
func SyntheticID(author string, postedAt time.Time, text string) uuid.UUID {
	key := strings.ToLower(strings.TrimSpace(author)) +
		"\n" + postedAt.UTC().Format(time.RFC3339Nano) +
		"\n" + text
	return uuid.NewSHA1(tweetNamespace, []byte(key))
}

// Tweet converts a file record to the domain row, filling a synthetic id
// when the record has none or an unparsable one
func (ln Line) Tweet() *tweetsdom.Tweet {
	id, err := uuid.Parse(strings.TrimSpace(ln.ID))
	if err != nil || id == uuid.Nil {
		id = SyntheticID(ln.Author, ln.PostedAt, ln.Text)
	}
	return &tweetsdom.Tweet{
		ID:       id,
		Author:   strings.TrimSpace(ln.Author),
		Lang:     strings.ToLower(strings.TrimSpace(ln.Lang)),
		PostedAt: ln.PostedAt.UTC(),
		Text:     ln.Text,
	}
}

package errors

import (
	stderrs "errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestWrapAndRoot(t *testing.T) {
	base := stderrs.New("boom")
	err := Wrap(Wrap(base, ErrorCodeDB, "query failed"), ErrorCodeUnavailable, "clean run aborted")

	if Root(err) != base {
		t.Fatalf("Root = %v", Root(err))
	}
	if CodeOf(err) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf = %d", CodeOf(err))
	}
	if got := err.Error(); got != "clean run aborted: query failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign error should map to Unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil should map to Unknown")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NotFoundf("no tweet %s", "x"), http.StatusNotFound},
		{InvalidArgf("bad range"), http.StatusUnprocessableEntity},
		{JSONErrf("invalid body"), http.StatusBadRequest},
		{New(ErrorCodeValidation, "texts required"), http.StatusBadRequest},
		{New(ErrorCodeDuplicateKey, "dup"), http.StatusConflict},
		{Unavailablef("pg down"), http.StatusServiceUnavailable},
		{DBf("query"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	orig := New(ErrorCodeValidation, "too short")
	withF := WithField(orig, "texts")

	oe, _ := As(orig)
	fe, _ := As(withF)
	if oe.Field() != "" {
		t.Fatal("original mutated")
	}
	if fe.Field() != "texts" {
		t.Fatalf("field = %q", fe.Field())
	}

	// foreign errors pass through unchanged
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign error should pass through")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(New(ErrorCodeValidation, "texts required"), "texts"))
	if w.Code != ErrorCodeValidation || w.Message != "texts required" || w.Field != "texts" {
		t.Fatalf("wire = %+v", w)
	}
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil wire = %+v", w)
	}
}

func TestFromPostgres(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	err := FromPostgres(dup, "insert tweet")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("code = %d", CodeOf(err))
	}
	if !IsDuplicateKey(err) {
		t.Fatal("IsDuplicateKey = false")
	}

	if FromPostgres(nil, "noop") != nil {
		t.Fatal("nil in, nil out")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(Wrap(&pgconn.PgError{Code: "40P01"}, ErrorCodeDB, "tx")) {
		t.Fatal("deadlock should be retryable")
	}
	if IsRetryable(Wrap(&pgconn.PgError{Code: "23505"}, ErrorCodeDB, "tx")) {
		t.Fatal("unique violation should not be retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatal("commit rollback text should be retryable")
	}
	if IsRetryable(nil) {
		t.Fatal("nil should not be retryable")
	}
}

package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "scrubjay/internal/platform/errors"
)

type cleanBody struct {
	Texts []string `json:"texts" validate:"required,min=1,dive,max=10000"`
	Lang  string   `json:"lang" validate:"omitempty,len=2"`
}

func postReq(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/clean", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestParseJSONHappyPath(t *testing.T) {
	in, err := ParseJSON[cleanBody](postReq(`{"texts":["hello world"],"lang":"en"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(in.Texts) != 1 || in.Texts[0] != "hello world" || in.Lang != "en" {
		t.Fatalf("parsed = %+v", in)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	_, err := ParseJSON[cleanBody](postReq(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := ParseJSON[cleanBody](postReq(`{"texts":["x"],"bogus":true}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	_, err := ParseJSON[cleanBody](postReq(`{"texts":["x"]} {"again":1}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	_, err := ParseJSON[cleanBody](postReq(`{"texts":[]}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "texts" {
		t.Fatalf("field = %q", e.Field())
	}

	_, err = ParseJSON[cleanBody](postReq(`{"texts":["x"],"lang":"english"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error for lang, got %v", err)
	}
}

func TestParseJSONEmptyBodyAllowedForGet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/clean", nil)
	if _, err := ParseJSON[cleanBody](r); err != nil {
		t.Fatalf("GET with empty body should parse to zero value: %v", err)
	}
}

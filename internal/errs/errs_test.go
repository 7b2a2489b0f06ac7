package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		detail string
	}{
		{"bad request", NewBadRequestError("bad input"), http.StatusBadRequest, "bad input"},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, "missing"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "Internal Server Error"},
		{"store", NewStoreError("connection refused"), http.StatusInternalServerError, "Database error: connection refused"},
	}

	for _, tt := range tests {
		if tt.err.Status != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, tt.err.Status, tt.status)
		}
		if tt.err.Detail != tt.detail {
			t.Errorf("%s: detail = %q, want %q", tt.name, tt.err.Detail, tt.detail)
		}
		if tt.err.Error() != tt.detail {
			t.Errorf("%s: Error() = %q, want %q", tt.name, tt.err.Error(), tt.detail)
		}
	}
}

func TestWireShapeOnlyDetail(t *testing.T) {
	// Status and Code must never leak into the response body.
	body, err := json.Marshal(NewStoreError("boom"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"detail":"Database error: boom"}`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestIsMatchesType(t *testing.T) {
	err := error(NewNotFoundError("x"))
	if !errors.Is(err, &HTTPError{}) {
		t.Error("errors.Is failed to match *HTTPError")
	}
}

func TestWithDetail(t *testing.T) {
	base := NewBadRequestError("original")
	custom := base.WithDetail("custom")

	if base.Detail != "original" {
		t.Errorf("base mutated: detail = %q", base.Detail)
	}
	if custom.Detail != "custom" || custom.Status != base.Status {
		t.Errorf("copy = %+v, want detail custom with status %d", custom, base.Status)
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Bad Request"); got != "BAD_REQUEST" {
		t.Errorf("got %q, want BAD_REQUEST", got)
	}
}

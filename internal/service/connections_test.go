package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puzzlefeed/connections-api/internal/errs"
	"github.com/puzzlefeed/connections-api/internal/repository"
)

// fakeGameFinder implements GameFinder for tests.
type fakeGameFinder struct {
	game  *repository.Game
	err   error
	calls int
}

func (f *fakeGameFinder) FindByDate(ctx context.Context, date time.Time) (*repository.Game, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.game, nil
}

func TestParseDate(t *testing.T) {
	valid := []string{"2024-06-12", "1999-01-01", "2024-02-29"}
	for _, s := range valid {
		if _, err := ParseDate(s); err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", s, err)
		}
	}

	invalid := []string{
		"2024-13-01", // month out of range
		"2024-02-30", // impossible calendar date
		"2023-02-29", // not a leap year
		"not-a-date",
		"2024-6-12",     // non-padded month
		"2024-06-12 00", // trailing text
		"24-06-12",      // two-digit year
		"",
	}
	for _, s := range invalid {
		_, err := ParseDate(s)
		if err == nil {
			t.Errorf("ParseDate(%q) expected error, got nil", s)
			continue
		}
		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			t.Errorf("ParseDate(%q) error is not *errs.HTTPError: %v", s, err)
			continue
		}
		if httpErr.Status != 400 {
			t.Errorf("ParseDate(%q) status = %d, want 400", s, httpErr.Status)
		}
		if httpErr.Detail != InvalidDateDetail {
			t.Errorf("ParseDate(%q) detail = %q, want %q", s, httpErr.Detail, InvalidDateDetail)
		}
	}
}

func TestGetGameByDateSuccess(t *testing.T) {
	categories := json.RawMessage(`[{"title":"FRUITS","level":0,"words":["APPLE","PEAR","PLUM","KIWI"]}]`)
	finder := &fakeGameFinder{
		game: &repository.Game{
			ID:         500,
			Date:       time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			Editor:     "Wyna Liu",
			Categories: categories,
		},
	}
	svc := NewConnectionsService(nil, finder)

	game, err := svc.GetGameByDate(context.Background(), "2024-06-12")
	if err != nil {
		t.Fatalf("GetGameByDate returned error: %v", err)
	}

	if game.ID != 500 {
		t.Errorf("ID = %d, want 500", game.ID)
	}
	if game.PrintDate != "2024-06-12" {
		t.Errorf("PrintDate = %q, want %q", game.PrintDate, "2024-06-12")
	}
	if game.Editor != "Wyna Liu" {
		t.Errorf("Editor = %q, want %q", game.Editor, "Wyna Liu")
	}
	if string(game.Categories) != string(categories) {
		t.Errorf("Categories = %s, want %s (must pass through unchanged)", game.Categories, categories)
	}
}

func TestGetGameByDateInvalidDateSkipsLookup(t *testing.T) {
	finder := &fakeGameFinder{}
	svc := NewConnectionsService(nil, finder)

	_, err := svc.GetGameByDate(context.Background(), "2024-13-01")
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != 400 {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if finder.calls != 0 {
		t.Errorf("repository called %d times for invalid date, want 0", finder.calls)
	}
}

func TestGetGameByDateNotFound(t *testing.T) {
	finder := &fakeGameFinder{err: fmt.Errorf("failed to query solutions: %w", pgx.ErrNoRows)}
	svc := NewConnectionsService(nil, finder)

	_, err := svc.GetGameByDate(context.Background(), "2099-01-01")
	if err == nil {
		t.Fatal("expected error for missing record")
	}
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != 404 {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
	want := "No game data found for date 2099-01-01"
	if httpErr.Detail != want {
		t.Errorf("detail = %q, want %q", httpErr.Detail, want)
	}
}

func TestGetGameByDateStoreError(t *testing.T) {
	finder := &fakeGameFinder{err: &pgconn.PgError{Code: "08006", Message: "connection refused"}}
	svc := NewConnectionsService(nil, finder)

	_, err := svc.GetGameByDate(context.Background(), "2024-06-12")
	if err == nil {
		t.Fatal("expected error for store failure")
	}
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	if httpErr.Status != 500 {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
	want := "Database error: connection refused"
	if httpErr.Detail != want {
		t.Errorf("detail = %q, want %q", httpErr.Detail, want)
	}
}

package handler

import (
	"errors"
	"testing"

	"github.com/puzzlefeed/connections-api/internal/errs"
	"github.com/puzzlefeed/connections-api/internal/service"
)

func TestGetGameRequestValidate(t *testing.T) {
	valid := []string{"2024-06-12", "2000-01-01", "2024-02-29"}
	for _, date := range valid {
		req := &GetGameRequest{Date: date}
		if err := req.Validate(); err != nil {
			t.Errorf("Validate(%q) returned error: %v", date, err)
		}
	}

	invalid := []string{"", "2024-13-01", "2024-02-30", "not-a-date", "2024-6-12", "2024/06/12"}
	for _, date := range invalid {
		req := &GetGameRequest{Date: date}
		err := req.Validate()
		if err == nil {
			t.Errorf("Validate(%q) expected error, got nil", date)
			continue
		}
		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			t.Errorf("Validate(%q) error is not *errs.HTTPError: %v", date, err)
			continue
		}
		if httpErr.Status != 400 || httpErr.Detail != service.InvalidDateDetail {
			t.Errorf("Validate(%q) = %d %q, want 400 %q", date, httpErr.Status, httpErr.Detail, service.InvalidDateDetail)
		}
	}
}

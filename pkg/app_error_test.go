package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamo down")
	err := NewDomainError("SERVER_ERROR", "try later", cause, http.StatusServiceUnavailable)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause in chain")
	}
	if err.Error() != "SERVER_ERROR: try later: dynamo down" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	withHints := err.WithSuggestions([]string{"wait"})
	if len(err.Suggestions) != 0 {
		t.Fatalf("original must not change")
	}
	body := withHints.ToHTTPError()
	if body.Code != "SERVER_ERROR" || body.Message != "try later" || len(body.Suggestions) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "missing", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: missing" || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %v", simple)
	}
}

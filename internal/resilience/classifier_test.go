package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/lib/pq"
)

func TestClassifier_Precedence(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "db.example.com"}

	cases := []struct {
		name   string
		err    error
		online bool
		want   Category
		code   string
	}{
		{name: "offline wins over everything", err: &StatusError{StatusCode: 401}, online: false, want: CategoryOffline},
		{name: "offline sentinel", err: fmt.Errorf("enqueue: %w", ErrOffline), online: true, want: CategoryOffline},
		{name: "dynamodb conditional check", err: &types.ConditionalCheckFailedException{Message: strPtr("exists")}, online: true, want: CategoryValidation, code: "ConditionalCheckFailedException"},
		{name: "generic smithy api error", err: &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}, online: true, want: CategoryAuthorization, code: "AccessDeniedException"},
		{name: "postgres unique violation", err: &pq.Error{Code: "23505", Message: "duplicate key"}, online: true, want: CategoryValidation, code: "23505"},
		{name: "postgres insufficient privilege", err: fmt.Errorf("insert: %w", &pq.Error{Code: "42501"}), online: true, want: CategoryAuthorization, code: "42501"},
		{name: "backend code beats auth message", err: &pq.Error{Code: "23505", Message: "duplicate token"}, online: true, want: CategoryValidation, code: "23505"},
		{name: "status 422", err: &StatusError{StatusCode: 422}, online: true, want: CategoryValidation, code: "422"},
		{name: "status 409", err: &StatusError{StatusCode: 409}, online: true, want: CategoryValidation, code: "409"},
		{name: "status 401", err: &StatusError{StatusCode: 401}, online: true, want: CategoryAuthentication, code: "401"},
		{name: "status 403", err: &StatusError{StatusCode: 403}, online: true, want: CategoryAuthorization, code: "403"},
		{name: "status 404", err: &StatusError{StatusCode: 404}, online: true, want: CategoryNotFound, code: "404"},
		{name: "status 429", err: &StatusError{StatusCode: 429}, online: true, want: CategoryServer, code: "429"},
		{name: "status 503", err: &StatusError{StatusCode: 503, Message: "network maintenance"}, online: true, want: CategoryServer, code: "503"},
		{name: "status beats message", err: &StatusError{StatusCode: 404, Message: "token missing"}, online: true, want: CategoryNotFound, code: "404"},
		{name: "auth message", err: errors.New("JWT token expired"), online: true, want: CategoryAuthentication},
		{name: "login message", err: errors.New("Login required"), online: true, want: CategoryAuthentication},
		{name: "network message", err: errors.New("Failed to fetch"), online: true, want: CategoryNetwork},
		{name: "net error type", err: &url.Error{Op: "Get", URL: "http://x", Err: dnsErr}, online: true, want: CategoryNetwork},
		{name: "deadline exceeded", err: context.DeadlineExceeded, online: true, want: CategoryNetwork},
		{name: "unknown", err: errors.New("boom"), online: true, want: CategoryUnknown},
		{name: "unmapped status falls through", err: &StatusError{StatusCode: 418}, online: true, want: CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			online := tc.online
			c := NewClassifier(func() bool { return online })
			if got := c.Classify(tc.err); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
			std := c.Standardize(tc.err)
			if std.Category != tc.want || std.Code != tc.code {
				t.Fatalf("unexpected standardized error: %+v", std)
			}
			if !errors.Is(std, tc.err) {
				t.Fatalf("expected original error in chain")
			}
		})
	}
}

func TestClassifier_IsPure(t *testing.T) {
	c := NewClassifier(nil)
	err := errors.New("connection refused")
	first := c.Classify(err)
	for i := 0; i < 10; i++ {
		if got := c.Classify(err); got != first {
			t.Fatalf("expected stable category %s, got %s", first, got)
		}
	}
	a, b := c.Standardize(err), c.Standardize(err)
	if a.Message != b.Message || len(a.Suggestions) != len(b.Suggestions) {
		t.Fatalf("expected identical presentation")
	}
}

func TestStandardize_KeepsStandardizedErrors(t *testing.T) {
	std := Standardize(&StatusError{StatusCode: 404})
	wrapped := fmt.Errorf("load customer: %w", std)
	if got := Standardize(wrapped); got != std {
		t.Fatalf("expected the same standardized error to be returned")
	}
	if Standardize(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	if CategoryOf(wrapped) != CategoryNotFound {
		t.Fatalf("expected category from chain")
	}
	if CategoryOf(errors.New("raw")) != CategoryUnknown {
		t.Fatalf("expected unknown for raw errors")
	}
}

func TestPresentation(t *testing.T) {
	all := []Category{
		CategoryNetwork, CategoryAuthentication, CategoryAuthorization, CategoryValidation,
		CategoryNotFound, CategoryServer, CategoryDatabase, CategoryOffline, CategoryUnknown,
	}
	for _, cat := range all {
		if Message(cat) == "" {
			t.Fatalf("expected message for %s", cat)
		}
		if len(Suggestions(cat)) == 0 {
			t.Fatalf("expected suggestions for %s", cat)
		}
	}
	if Message("bogus") != Message(CategoryUnknown) {
		t.Fatalf("expected unknown fallback")
	}

	s := Suggestions(CategoryNetwork)
	s[0] = "mutated"
	if Suggestions(CategoryNetwork)[0] == "mutated" {
		t.Fatalf("expected suggestions to be copied")
	}
}

func TestCategory_Retryable(t *testing.T) {
	retryable := map[Category]bool{
		CategoryNetwork:        true,
		CategoryServer:         true,
		CategoryDatabase:       true,
		CategoryValidation:     false,
		CategoryAuthentication: false,
		CategoryAuthorization:  false,
		CategoryNotFound:       false,
		CategoryOffline:        false,
		CategoryUnknown:        false,
	}
	for cat, want := range retryable {
		if cat.Retryable() != want {
			t.Fatalf("%s: expected retryable=%v", cat, want)
		}
	}
}

func strPtr(s string) *string { return &s }

package request

import (
	"errors"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
)

func TestToEntity(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("customer trims input", func(t *testing.T) {
		c, err := CustomerRequest{Name: "  Ada  ", NeedsEstimate: true}.ToEntity(now)
		if err != nil || c.Name != "Ada" || !c.NeedsEstimate || !c.CreatedAt.Equal(now) || !c.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected customer: %+v %v", c, err)
		}
	})

	t.Run("default statuses", func(t *testing.T) {
		e, _ := EstimateRequest{CustomerID: "c1"}.ToEntity(now)
		j, _ := JobRequest{CustomerID: "c1", Description: "Roof"}.ToEntity(now)
		i, _ := InvoiceRequest{CustomerID: "c1"}.ToEntity(now)
		if e.Status != entities.EstimateStatusPending || j.Status != entities.JobStatusScheduled || i.Status != entities.InvoiceStatusDraft {
			t.Fatalf("unexpected defaults: %s %s %s", e.Status, j.Status, i.Status)
		}
	})

	t.Run("explicit status is normalized", func(t *testing.T) {
		j, err := JobRequest{CustomerID: "c1", Description: "Roof", Status: " In_Progress "}.ToEntity(now)
		if err != nil || j.Status != entities.JobStatusInProgress {
			t.Fatalf("unexpected job: %+v %v", j, err)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		if _, err := (EstimateRequest{CustomerID: "c1", Status: "maybe"}).ToEntity(now); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if _, err := (InvoiceRequest{CustomerID: "c1", Amount: -1}).ToEntity(now); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := (JobRequest{CustomerID: "c1", Status: "done"}).ToEntity(now); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestPatchRequest_ToPatch(t *testing.T) {
	if _, err := (PatchRequest{}).ToPatch(CustomerPatchRules); !errors.Is(err, entities.ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
	if _, err := (PatchRequest{"id": "x"}).ToPatch(CustomerPatchRules); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected id to be rejected, got %v", err)
	}
	if _, err := (PatchRequest{"status": "paid"}).ToPatch(JobPatchRules); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := (PatchRequest{"status": 3}).ToPatch(InvoicePatchRules); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus for non-string, got %v", err)
	}

	p, err := (PatchRequest{"status": "paid", "amount": 10.0}).ToPatch(InvoicePatchRules)
	if err != nil || p["status"] != "paid" || p["amount"] != 10.0 {
		t.Fatalf("unexpected patch: %+v %v", p, err)
	}
}

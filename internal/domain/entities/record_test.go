package entities

import (
	"errors"
	"testing"
	"time"
)

func TestPatch_Normalized(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("drops id and stamps updated_at", func(t *testing.T) {
		p, err := Patch{"id": "other", "status": "paid"}.Normalized(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := p["id"]; ok {
			t.Fatalf("expected id to be dropped: %+v", p)
		}
		if p["status"] != "paid" {
			t.Fatalf("expected status to be kept: %+v", p)
		}
		if p["updated_at"] != now.Format(time.RFC3339Nano) {
			t.Fatalf("expected updated_at stamp, got %v", p["updated_at"])
		}
	})

	t.Run("id only is empty", func(t *testing.T) {
		_, err := Patch{"id": "x"}.Normalized(now)
		if !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
	})
}

func TestApplyPatch(t *testing.T) {
	inv := Invoice{ID: "inv-1", CustomerID: "c-1", Amount: 120, Status: InvoiceStatusDraft}

	out, err := ApplyPatch(inv, Patch{"status": "paid", "amount": 99.5, "id": "hijack"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != "inv-1" {
		t.Fatalf("expected id to be preserved, got %s", out.ID)
	}
	if out.Status != InvoiceStatusPaid || out.Amount != 99.5 {
		t.Fatalf("unexpected patched invoice: %+v", out)
	}
	if inv.Status != InvoiceStatusDraft {
		t.Fatalf("expected original to be untouched")
	}

	if _, err := ApplyPatch(inv, Patch{"amount": "not-a-number"}); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestJob_IsEstimateVisit(t *testing.T) {
	cases := []struct {
		desc string
		want bool
	}{
		{"Estimate Visit - roof", true},
		{"site ESTIMATE VISIT", true},
		{"Replace gutters", false},
		{"estimate for visit", false},
	}
	for _, tc := range cases {
		if got := (Job{Description: tc.desc}).IsEstimateVisit(); got != tc.want {
			t.Fatalf("%q: expected %v got %v", tc.desc, tc.want, got)
		}
	}
}

func TestParseDataType(t *testing.T) {
	if dt, ok := ParseDataType("jobs"); !ok || dt != DataTypeJobs {
		t.Fatalf("expected jobs, got %q %v", dt, ok)
	}
	if _, ok := ParseDataType("payments"); ok {
		t.Fatalf("expected unknown data type")
	}
}

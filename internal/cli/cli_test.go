package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"fieldservice/internal/app"
	"fieldservice/internal/config"
	"fieldservice/internal/domain/entities"
)

// seededOpener opens an app over a fresh mirror and runs seed against it
// while offline, so the data only lives in the mirror and the sync queue.
func seededOpener(t *testing.T, seed func(ctx context.Context, a *app.App)) Opener {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{
		"DYNAMODB_ENDPOINT": "http://127.0.0.1:1",
		"MIRROR_PATH":       filepath.Join(t.TempDir(), "mirror.db"),
		"RETRY_MAX_RETRIES": "0",
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if seed != nil {
		a, err := app.New(context.Background(), cfg, logger)
		if err != nil {
			t.Fatalf("seed app: %v", err)
		}
		a.Monitor.Set(false)
		seed(context.Background(), a)
		if err := a.Close(); err != nil {
			t.Fatalf("close seed app: %v", err)
		}
	}

	return func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, cfg, logger)
	}
}

func run(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestStagesCommand(t *testing.T) {
	var customerID string
	open := seededOpener(t, func(ctx context.Context, a *app.App) {
		created, err := a.Registry.Customers.Add(ctx, entities.Customer{Name: "Ada"})
		if err != nil {
			t.Fatalf("add customer: %v", err)
		}
		customerID = created[0].ID
		if _, err := a.Registry.Jobs.Add(ctx, entities.Job{CustomerID: customerID, Description: "Roof", Status: entities.JobStatusScheduled}); err != nil {
			t.Fatalf("add job: %v", err)
		}
	})

	out, err := run(t, open, "--offline", "stages", customerID)
	if err != nil {
		t.Fatalf("stages: %v", err)
	}
	if !strings.Contains(out, "job:") || !strings.Contains(out, "Job Scheduled") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, open, "--offline", "stages", "missing"); err == nil {
		t.Fatal("expected error for unknown customer")
	}
}

func TestBoardCommand(t *testing.T) {
	open := seededOpener(t, func(ctx context.Context, a *app.App) {
		if _, err := a.Registry.Customers.Add(ctx, entities.Customer{Name: "Ada", NeedsEstimate: true}); err != nil {
			t.Fatalf("add customer: %v", err)
		}
	})

	out, err := run(t, open, "--offline", "board", "--category", "estimate")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if !strings.Contains(out, "estimate (1):") || !strings.Contains(out, "Estimates Queue") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "invoice (") {
		t.Fatalf("expected only the estimate column:\n%s", out)
	}
}

func TestQueueCommand(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out, err := run(t, seededOpener(t, nil), "queue")
		if err != nil {
			t.Fatalf("queue: %v", err)
		}
		if !strings.Contains(out, "Sync queue is empty.") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("pending", func(t *testing.T) {
		open := seededOpener(t, func(ctx context.Context, a *app.App) {
			if _, err := a.Registry.Invoices.Add(ctx, entities.Invoice{CustomerID: "c1", Status: entities.InvoiceStatusDraft}); err != nil {
				t.Fatalf("add invoice: %v", err)
			}
		})
		out, err := run(t, open, "queue")
		if err != nil {
			t.Fatalf("queue: %v", err)
		}
		if !strings.Contains(out, "Pending operations (1):") || !strings.Contains(out, "invoices") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})
}

func TestRefreshCommand_Offline(t *testing.T) {
	open := seededOpener(t, func(ctx context.Context, a *app.App) {
		if _, err := a.Registry.Customers.Add(ctx, entities.Customer{Name: "Ada"}); err != nil {
			t.Fatalf("add customer: %v", err)
		}
	})

	out, err := run(t, open, "--offline", "refresh")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !strings.Contains(out, "customers     1 records") || !strings.Contains(out, "Showing saved data") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/resilience"

	_ "github.com/lib/pq"
)

var postgresIntegrationCounter uint64

func postgresIntegrationDSN(t *testing.T) string {
	t.Helper()
	dsn := strings.TrimSpace(os.Getenv("FIELDSERVICE_TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("set FIELDSERVICE_TEST_POSTGRES_DSN to run Postgres integration tests")
	}
	return dsn
}

func postgresIntegrationTableName(prefix string) string {
	n := atomic.AddUint64(&postgresIntegrationCounter, 1)
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), n)
}

func postgresIntegrationDropTable(t *testing.T, dsn, tableName string) {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open postgres for cleanup failed: %v", err)
	}
	defer db.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdentifier(tableName)); err != nil {
		t.Fatalf("drop cleanup table %q failed: %v", tableName, err)
	}
}

func TestPostgresIntegrationCollectionRoundTrip(t *testing.T) {
	dsn := postgresIntegrationDSN(t)
	table := postgresIntegrationTableName("customers_it")
	repo := NewPostgresCollection[entities.Customer](nil, dsn, table)
	t.Cleanup(func() {
		_ = repo.Close()
		postgresIntegrationDropTable(t, dsn, table)
	})
	ctx := context.Background()

	got, err := repo.Select(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty table, got %+v %v", got, err)
	}

	if _, err := repo.Insert(ctx, []entities.Customer{{ID: "c1", Name: "Ada"}, {ID: "c2", Name: "Grace"}}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := repo.Insert(ctx, []entities.Customer{{ID: "c1", Name: "Ada"}}); err != nil {
		t.Fatalf("replayed insert of an identical record should succeed: %v", err)
	}
	if _, err := repo.Insert(ctx, []entities.Customer{{ID: "c1", Name: "dup"}}); resilience.Classify(err) != resilience.CategoryValidation {
		t.Fatalf("expected conflicting insert to classify as validation, got %v", err)
	}

	if err := repo.Update(ctx, "c1", entities.Patch{"needs_estimate": true, "name": "Ada L."}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	err = repo.Update(ctx, "missing", entities.Patch{"name": "x"})
	if se, ok := err.(*resilience.StatusError); !ok || se.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := repo.Delete(ctx, "c2"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err = repo.Select(ctx)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ada L." || !got[0].NeedsEstimate {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

package lifecycle

import (
	"reflect"
	"testing"

	"fieldservice/internal/domain/entities"
)

func TestGroupByCategory(t *testing.T) {
	stages := []entities.Stage{
		entities.StageEstimatesQueue,
		entities.StagePendingPayment,
		entities.StageJobScheduled,
		entities.StagePendingEstimate,
	}
	groups := GroupByCategory(stages)
	if len(groups) != 3 {
		t.Fatalf("expected three groups, got %d", len(groups))
	}
	if groups[0].Category != entities.StageCategoryEstimate || !reflect.DeepEqual(labels(groups[0].Stages), []string{"Estimates Queue", "Pending Estimate"}) {
		t.Fatalf("unexpected estimate group: %+v", groups[0])
	}
	if !reflect.DeepEqual(labels(groups[1].Stages), []string{"Job Scheduled"}) {
		t.Fatalf("unexpected job group: %+v", groups[1])
	}
	if !reflect.DeepEqual(labels(groups[2].Stages), []string{"Pending Payment"}) {
		t.Fatalf("unexpected invoice group: %+v", groups[2])
	}

	empty := GroupByCategory(nil)
	for _, g := range empty {
		if g.Stages == nil || len(g.Stages) != 0 {
			t.Fatalf("expected empty non-nil stages for %s", g.Category)
		}
	}
}

func TestBuildBoard(t *testing.T) {
	snap := Snapshot{
		Customers: []entities.Customer{
			{ID: "c1", Name: "Ada", NeedsEstimate: true},
			{ID: "c2", Name: "Grace"},
			{ID: "c3", Name: "Linus"},
		},
		Estimates: []entities.Estimate{{ID: "e1", CustomerID: "c2", Status: entities.EstimateStatusApproved}},
		Jobs: []entities.Job{
			{ID: "j1", CustomerID: "c2", Description: "Roof", Status: entities.JobStatusScheduled},
			{ID: "j2", CustomerID: "c3", Description: "Fence", Status: entities.JobStatusCompleted},
		},
		Invoices: []entities.Invoice{{ID: "i1", CustomerID: "c3", JobID: "j2", Status: entities.InvoiceStatusPaid}},
	}

	board := BuildBoard(snap)
	if len(board.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(board.Columns))
	}
	est := board.Columns[0]
	if len(est.Cards) != 1 || est.Cards[0].CustomerID != "c1" || est.Cards[0].Stage != "Estimates Queue" {
		t.Fatalf("unexpected estimate column: %+v", est)
	}
	jobs := board.Columns[1]
	wantJobs := []BoardCard{
		{CustomerID: "c2", CustomerName: "Grace", Stage: "Job Scheduled"},
		{CustomerID: "c2", CustomerName: "Grace", Stage: "Jobs Queue"},
	}
	if !reflect.DeepEqual(jobs.Cards, wantJobs) {
		t.Fatalf("unexpected job column: %+v", jobs.Cards)
	}
	if len(board.Columns[2].Cards) != 0 {
		t.Fatalf("expected completed customer to be absent: %+v", board.Columns[2])
	}
}

func TestBoardColumn_Page(t *testing.T) {
	col := BoardColumn{Cards: []BoardCard{{CustomerID: "a"}, {CustomerID: "b"}, {CustomerID: "c"}}}

	if got := col.Page(0, 2); len(got) != 2 || got[1].CustomerID != "b" {
		t.Fatalf("unexpected first page: %+v", got)
	}
	if got := col.Page(1, 2); len(got) != 1 || got[0].CustomerID != "c" {
		t.Fatalf("unexpected second page: %+v", got)
	}
	if got := col.Page(2, 2); len(got) != 0 {
		t.Fatalf("expected empty page, got %+v", got)
	}
	if got := col.Page(0, 0); len(got) != 0 {
		t.Fatalf("expected empty page for zero size")
	}
}

package lifecycle

import (
	"reflect"
	"testing"

	"fieldservice/internal/domain/entities"
)

const customerID = "cust-1"

func labels(stages []entities.Stage) []string {
	out := make([]string, 0, len(stages))
	for _, s := range stages {
		out = append(out, s.Label)
	}
	return out
}

func job(id, desc string, status entities.JobStatus) entities.Job {
	return entities.Job{ID: id, CustomerID: customerID, Description: desc, Status: status}
}

func invoice(id, jobID string, status entities.InvoiceStatus) entities.Invoice {
	return entities.Invoice{ID: id, CustomerID: customerID, JobID: jobID, Status: status}
}

func estimate(id string, status entities.EstimateStatus) entities.Estimate {
	return entities.Estimate{ID: id, CustomerID: customerID, Status: status}
}

func TestDeriveStages(t *testing.T) {
	cases := []struct {
		name          string
		needsEstimate bool
		estimates     []entities.Estimate
		jobs          []entities.Job
		invoices      []entities.Invoice
		want          []string
	}{
		{
			name:     "completed job with paid invoice is done",
			jobs:     []entities.Job{job("j1", "Replace gutters", entities.JobStatusCompleted)},
			invoices: []entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusPaid)},
			want:     []string{},
		},
		{
			name:          "completion overrides needs estimate",
			needsEstimate: true,
			jobs:          []entities.Job{job("j1", "Replace gutters", entities.JobStatusCompleted)},
			invoices:      []entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusVoid)},
			want:          []string{},
		},
		{
			name:          "rejected only overrides needs estimate",
			needsEstimate: true,
			estimates:     []entities.Estimate{estimate("e1", entities.EstimateStatusRejected)},
			want:          []string{},
		},
		{
			name:          "needs estimate alone",
			needsEstimate: true,
			want:          []string{"Estimates Queue"},
		},
		{
			name:      "pending estimate and scheduled job follow rule order",
			estimates: []entities.Estimate{estimate("e1", entities.EstimateStatusPending)},
			jobs:      []entities.Job{job("j1", "Paint fence", entities.JobStatusScheduled)},
			want:      []string{"Job Scheduled", "Pending Estimate"},
		},
		{
			name:     "draft invoice is pending payment",
			jobs:     []entities.Job{job("j1", "Paint fence", entities.JobStatusCompleted)},
			invoices: []entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusDraft)},
			want:     []string{"Pending Payment"},
		},
		{
			name:     "overdue invoice without job is pending payment",
			invoices: []entities.Invoice{invoice("i1", "", entities.InvoiceStatusOverdue)},
			want:     []string{"Pending Payment"},
		},
		{
			name: "in progress job is scheduled",
			jobs: []entities.Job{job("j1", "Deck repair", entities.JobStatusInProgress)},
			want: []string{"Job Scheduled"},
		},
		{
			name: "estimate visit is not a real job",
			jobs: []entities.Job{job("j1", "Estimate Visit: kitchen", entities.JobStatusScheduled)},
			want: []string{"Scheduled Estimate"},
		},
		{
			name:      "approved estimate waits in jobs queue",
			estimates: []entities.Estimate{estimate("e1", entities.EstimateStatusApproved)},
			want:      []string{"Jobs Queue"},
		},
		{
			name: "completed job without invoice needs invoice",
			jobs: []entities.Job{job("j1", "Roof", entities.JobStatusCompleted)},
			want: []string{"Needs Invoice"},
		},
		{
			name: "completed estimate visit never needs invoice",
			jobs: []entities.Job{job("j1", "estimate visit", entities.JobStatusCompleted)},
			want: []string{},
		},
		{
			name:     "settled invoices but only estimate visits never complete",
			jobs:     []entities.Job{job("j1", "Estimate visit", entities.JobStatusScheduled)},
			invoices: []entities.Invoice{invoice("i1", "", entities.InvoiceStatusPaid)},
			want:     []string{"Scheduled Estimate"},
		},
		{
			name: "one job invoiced, other completed job not",
			jobs: []entities.Job{
				job("j1", "Roof", entities.JobStatusCompleted),
				job("j2", "Siding", entities.JobStatusCompleted),
			},
			invoices: []entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusPaid)},
			want:     []string{"Needs Invoice"},
		},
		{
			name:          "every rule at once",
			needsEstimate: true,
			estimates: []entities.Estimate{
				estimate("e1", entities.EstimateStatusApproved),
				estimate("e2", entities.EstimateStatusPending),
				estimate("e3", entities.EstimateStatusRejected),
			},
			jobs: []entities.Job{
				job("j1", "Roof", entities.JobStatusCompleted),
				job("j2", "Siding", entities.JobStatusScheduled),
				job("j3", "Estimate visit - porch", entities.JobStatusInProgress),
				job("j4", "Fence", entities.JobStatusCompleted),
			},
			invoices: []entities.Invoice{invoice("i1", "j4", entities.InvoiceStatusOverdue)},
			want: []string{
				"Estimates Queue",
				"Pending Payment",
				"Job Scheduled",
				"Scheduled Estimate",
				"Pending Estimate",
				"Jobs Queue",
				"Needs Invoice",
			},
		},
		{
			name:          "no records",
			needsEstimate: false,
			want:          []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := labels(DeriveStages(customerID, tc.needsEstimate, tc.estimates, tc.jobs, tc.invoices))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestDeriveStages_IgnoresOtherCustomers(t *testing.T) {
	other := entities.Job{ID: "j9", CustomerID: "cust-2", Description: "Roof", Status: entities.JobStatusScheduled}
	otherInv := entities.Invoice{ID: "i9", CustomerID: "cust-2", Status: entities.InvoiceStatusDraft}
	otherEst := entities.Estimate{ID: "e9", CustomerID: "cust-2", Status: entities.EstimateStatusRejected}

	got := DeriveStages(customerID, true, []entities.Estimate{otherEst}, []entities.Job{other}, []entities.Invoice{otherInv})
	if !reflect.DeepEqual(labels(got), []string{"Estimates Queue"}) {
		t.Fatalf("unexpected stages: %v", labels(got))
	}
}

func TestDeriveStages_Categories(t *testing.T) {
	got := DeriveStages(customerID, false,
		[]entities.Estimate{estimate("e1", entities.EstimateStatusPending)},
		[]entities.Job{job("j1", "Roof", entities.JobStatusScheduled)},
		nil,
	)
	want := []entities.Stage{
		{Label: "Job Scheduled", Category: entities.StageCategoryJob},
		{Label: "Pending Estimate", Category: entities.StageCategoryEstimate},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v got %+v", want, got)
	}
}

func TestDeriveStages_Deterministic(t *testing.T) {
	estimates := []entities.Estimate{estimate("e1", entities.EstimateStatusApproved), estimate("e2", entities.EstimateStatusPending)}
	jobs := []entities.Job{job("j1", "Roof", entities.JobStatusCompleted), job("j2", "Estimate visit", entities.JobStatusScheduled)}
	invoices := []entities.Invoice{invoice("i1", "", entities.InvoiceStatusDraft)}

	first := DeriveStages(customerID, true, estimates, jobs, invoices)
	for i := 0; i < 20; i++ {
		if got := DeriveStages(customerID, true, estimates, jobs, invoices); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestPipelineRules_Order(t *testing.T) {
	want := []entities.Stage{
		entities.StagePendingPayment,
		entities.StageJobScheduled,
		entities.StageScheduledEstimate,
		entities.StagePendingEstimate,
		entities.StageJobsQueue,
		entities.StageNeedsInvoice,
	}
	got := make([]entities.Stage, 0, len(pipelineRules))
	for _, r := range pipelineRules {
		got = append(got, r.stage)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rule order changed: %v", labels(got))
	}
}

func TestCustomerView_Guards(t *testing.T) {
	cases := []struct {
		name         string
		view         customerView
		wantComplete bool
		wantRejected bool
	}{
		{name: "empty view", view: newCustomerView(customerID, false, nil, nil, nil)},
		{
			name: "estimate visits alone never complete",
			view: newCustomerView(customerID, false, nil,
				[]entities.Job{job("j1", "Estimate visit", entities.JobStatusCompleted)},
				[]entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusPaid)}),
		},
		{
			name: "invoiced and settled",
			view: newCustomerView(customerID, false, nil,
				[]entities.Job{job("j1", "Roof", entities.JobStatusCompleted)},
				[]entities.Invoice{invoice("i1", "j1", entities.InvoiceStatusPaid)}),
			wantComplete: true,
		},
		{
			name: "mixed estimates are not rejected only",
			view: newCustomerView(customerID, false,
				[]entities.Estimate{estimate("e1", entities.EstimateStatusRejected), estimate("e2", entities.EstimateStatusPending)},
				nil, nil),
		},
		{
			name: "all rejected",
			view: newCustomerView(customerID, false,
				[]entities.Estimate{estimate("e1", entities.EstimateStatusRejected)},
				nil, nil),
			wantRejected: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.view.completed(); got != tc.wantComplete {
				t.Fatalf("completed() = %v, want %v", got, tc.wantComplete)
			}
			if got := tc.view.onlyRejectedEstimates(); got != tc.wantRejected {
				t.Fatalf("onlyRejectedEstimates() = %v, want %v", got, tc.wantRejected)
			}
		})
	}
}

package entities

// StageCategory groups stages into the three pipeline columns.
type StageCategory string

const (
	StageCategoryEstimate StageCategory = "estimate"
	StageCategoryJob      StageCategory = "job"
	StageCategoryInvoice  StageCategory = "invoice"
)

// StageCategories is the column order of the pipeline board.
var StageCategories = []StageCategory{StageCategoryEstimate, StageCategoryJob, StageCategoryInvoice}

// Stage is a derived position of a customer in the pipeline. It is never
// persisted.
type Stage struct {
	Label    string        `json:"label"`
	Category StageCategory `json:"category"`
}

var (
	StageEstimatesQueue    = Stage{Label: "Estimates Queue", Category: StageCategoryEstimate}
	StagePendingPayment    = Stage{Label: "Pending Payment", Category: StageCategoryInvoice}
	StageJobScheduled      = Stage{Label: "Job Scheduled", Category: StageCategoryJob}
	StageScheduledEstimate = Stage{Label: "Scheduled Estimate", Category: StageCategoryEstimate}
	StagePendingEstimate   = Stage{Label: "Pending Estimate", Category: StageCategoryEstimate}
	StageJobsQueue         = Stage{Label: "Jobs Queue", Category: StageCategoryJob}
	StageNeedsInvoice      = Stage{Label: "Needs Invoice", Category: StageCategoryInvoice}
)

package lifecycle

import (
	"fieldservice/internal/domain/entities"
)

// Snapshot is a point-in-time copy of the four entity collections.
type Snapshot struct {
	Customers []entities.Customer
	Estimates []entities.Estimate
	Jobs      []entities.Job
	Invoices  []entities.Invoice
}

// StagesFor derives the stages of one customer from the snapshot.
func (s Snapshot) StagesFor(c entities.Customer) []entities.Stage {
	return DeriveStages(c.ID, c.NeedsEstimate, s.Estimates, s.Jobs, s.Invoices)
}

// StageGroup holds the stages of one category, in derivation order.
type StageGroup struct {
	Category entities.StageCategory `json:"category"`
	Stages   []entities.Stage       `json:"stages"`
}

// GroupByCategory splits stages into the estimate, job and invoice groups.
// Every category is present, possibly empty.
func GroupByCategory(stages []entities.Stage) []StageGroup {
	groups := make([]StageGroup, 0, len(entities.StageCategories))
	for _, cat := range entities.StageCategories {
		g := StageGroup{Category: cat, Stages: []entities.Stage{}}
		for _, st := range stages {
			if st.Category == cat {
				g.Stages = append(g.Stages, st)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

type BoardCard struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Stage        string `json:"stage"`
}

type BoardColumn struct {
	Category entities.StageCategory `json:"category"`
	Cards    []BoardCard            `json:"cards"`
}

// Board is the pipeline view: one column per category, cards ordered by
// customer order then rule order.
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

func BuildBoard(s Snapshot) Board {
	byCategory := map[entities.StageCategory][]BoardCard{}
	for _, c := range s.Customers {
		for _, st := range s.StagesFor(c) {
			byCategory[st.Category] = append(byCategory[st.Category], BoardCard{
				CustomerID:   c.ID,
				CustomerName: c.Name,
				Stage:        st.Label,
			})
		}
	}
	board := Board{Columns: make([]BoardColumn, 0, len(entities.StageCategories))}
	for _, cat := range entities.StageCategories {
		cards := byCategory[cat]
		if cards == nil {
			cards = []BoardCard{}
		}
		board.Columns = append(board.Columns, BoardColumn{Category: cat, Cards: cards})
	}
	return board
}

// Page returns the cards of page (zero-based) with the given size.
func (c BoardColumn) Page(page, size int) []BoardCard {
	if size <= 0 || page < 0 {
		return []BoardCard{}
	}
	start := page * size
	if start >= len(c.Cards) {
		return []BoardCard{}
	}
	end := start + size
	if end > len(c.Cards) {
		end = len(c.Cards)
	}
	return c.Cards[start:end]
}

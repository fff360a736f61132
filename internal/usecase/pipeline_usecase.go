package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/lifecycle"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// IPipelineUseCase answers stage queries over the current collections.
type IPipelineUseCase interface {
	StagesFor(ctx context.Context, customerID string) ([]entities.Stage, error)
	Board(ctx context.Context) (lifecycle.Board, error)
}

type PipelineUseCase struct {
	source ISnapshotSource
	logger *slog.Logger
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(source ISnapshotSource, logger *slog.Logger) *PipelineUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineUseCase{source: source, logger: logger.With("component", "pipeline")}
}

func (u *PipelineUseCase) StagesFor(ctx context.Context, customerID string) ([]entities.Stage, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	snap, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range snap.Customers {
		if c.ID == customerID {
			return snap.StagesFor(c), nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (u *PipelineUseCase) Board(ctx context.Context) (lifecycle.Board, error) {
	snap, err := u.load(ctx)
	if err != nil {
		return lifecycle.Board{}, err
	}
	return lifecycle.BuildBoard(snap), nil
}

// load refreshes stale collections and snapshots them. A refresh failure
// only matters when there is no customer data to work from.
func (u *PipelineUseCase) load(ctx context.Context) (lifecycle.Snapshot, error) {
	refreshErr := u.source.RefreshAll(ctx, false)
	snap := u.source.Snapshot()
	if refreshErr != nil {
		if len(snap.Customers) == 0 {
			return lifecycle.Snapshot{}, refreshErr
		}
		u.logger.Warn("deriving stages from partial data", "err", refreshErr)
	}
	return snap, nil
}

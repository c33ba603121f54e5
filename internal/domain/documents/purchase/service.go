package purchase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	appctx "github.com/rafathanna/invento-app/internal/core/context"
	"github.com/rafathanna/invento-app/internal/domain/documents"
	"github.com/rafathanna/invento-app/pkg/logger"
)

// Service provides the purchase invoice workflow.
type Service struct {
	repo Repository
	last *documents.Snapshot
}

// NewService creates a new purchase invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) (*ListResult, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get purchase invoices: %w", err)
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("invoice id is required")
	}
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase invoice %d: %w", id, err)
	}
	return inv, nil
}

// Submit validates the draft and posts it atomically; same contract as the
// sales path.
func (s *Service) Submit(ctx context.Context, draft *documents.Draft, supplierName string) (*documents.Snapshot, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	ctx = appctx.WithActor(ctx, draft.CreatedBy)

	in := CreateInvoice{
		SupplierID:    draft.CounterpartyID,
		CreatedBy:     draft.CreatedBy,
		TaxPercentage: draft.TaxPercentage.InexactFloat64(),
		Items:         documents.WireItems(draft.Lines),
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create purchase invoice: %w", err)
	}

	snap := draft.Snapshot(id, "", supplierName, time.Now())
	draft.Reset()
	s.last = &snap

	logger.Info(ctx, "purchase invoice created",
		"invoice_id", id,
		"supplier_id", snap.CounterpartyID,
		"lines", len(snap.Lines),
		"total", snap.Totals.Total.String(),
	)
	return &snap, nil
}

// LastSnapshot returns the most recently submitted invoice's snapshot.
func (s *Service) LastSnapshot() *documents.Snapshot {
	return s.last
}

// Cancel transitions the invoice to Cancelled, recording the actor.
func (s *Service) Cancel(ctx context.Context, inv *Invoice, cancelledBy string) error {
	if strings.TrimSpace(cancelledBy) == "" {
		return apperror.NewValidation("cancelled-by name is required").
			WithDetail("field", "cancelledBy")
	}
	if !inv.Status.CanCancel() {
		return apperror.NewAlreadyCancelled(inv.ID)
	}
	ctx = appctx.WithActor(ctx, cancelledBy)

	if err := s.repo.Cancel(ctx, inv.ID, cancelledBy); err != nil {
		return fmt.Errorf("cancel purchase invoice %d: %w", inv.ID, err)
	}

	inv.Status = documents.StatusCancelled
	inv.CancelledBy = &cancelledBy

	logger.Info(ctx, "purchase invoice cancelled",
		"invoice_id", inv.ID, "cancelled_by", cancelledBy)
	return nil
}

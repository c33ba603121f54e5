package sales

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

// Service provides the sales invoice workflow: listing, the draft submission
// path, and cancellation.
type Service struct {
	repo Repository

	// last is the snapshot of the most recently submitted invoice, kept only
	// for document rendering.
	last *documents.Snapshot
}

// NewService creates a new sales invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetAll lists sales invoices with their aggregate totals.
func (s *Service) GetAll(ctx context.Context) (*ListResult, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sales invoices: %w", err)
	}
	return result, nil
}

// GetByID loads one sales invoice.
func (s *Service) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	if id <= 0 {
		return nil, apperror.NewValidation("invoice id is required")
	}
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sales invoice %d: %w", id, err)
	}
	return inv, nil
}

// Submit validates the draft and posts it atomically. On success the draft is
// reset to its defaults and the returned snapshot mirrors the submitted
// payload exactly; on failure the draft is left intact.
func (s *Service) Submit(ctx context.Context, draft *documents.Draft, customerName string) (*documents.Snapshot, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	ctx = appctx.WithActor(ctx, draft.CreatedBy)

	in := CreateInvoice{
		CustomerID:    draft.CounterpartyID,
		CreatedBy:     draft.CreatedBy,
		TaxPercentage: draft.TaxPercentage.InexactFloat64(),
		Items:         documents.WireItems(draft.Lines),
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create sales invoice: %w", err)
	}

	snap := draft.Snapshot(id, "", customerName, time.Now())
	draft.Reset()
	s.last = &snap

	logger.Info(ctx, "sales invoice created",
		"invoice_id", id,
		"customer_id", snap.CounterpartyID,
		"lines", len(snap.Lines),
		"total", snap.Totals.Total.String(),
	)
	return &snap, nil
}

// LastSnapshot returns the most recently submitted invoice's snapshot, or nil
// when nothing has been submitted yet.
func (s *Service) LastSnapshot() *documents.Snapshot {
	return s.last
}

// Cancel transitions a Pending or Completed invoice to Cancelled, recording
// the actor. The transition is irreversible; an already-cancelled invoice is
// rejected before any request is sent.
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
		return fmt.Errorf("cancel sales invoice %d: %w", inv.ID, err)
	}

	inv.Status = documents.StatusCancelled
	inv.CancelledBy = &cancelledBy

	logger.Info(ctx, "sales invoice cancelled",
		"invoice_id", inv.ID, "cancelled_by", cancelledBy)
	return nil
}

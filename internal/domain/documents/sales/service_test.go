package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafathanna/invento-app/internal/core/apperror"
	appctx "github.com/rafathanna/invento-app/internal/core/context"
	"github.com/rafathanna/invento-app/internal/core/types"
	"github.com/rafathanna/invento-app/internal/domain/documents"
)

type mockRepo struct {
	createCalls int
	cancelCalls int
	createErr   error
	lastCreate  CreateInvoice
	lastCancel  string
	lastActor   string
}

func (m *mockRepo) GetAll(ctx context.Context) (*ListResult, error) { return &ListResult{}, nil }

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Invoice, error) {
	return &Invoice{ID: id, Status: documents.StatusPending}, nil
}

func (m *mockRepo) Create(ctx context.Context, in CreateInvoice) (int64, error) {
	m.createCalls++
	m.lastCreate = in
	m.lastActor = appctx.GetActor(ctx)
	if m.createErr != nil {
		return 0, m.createErr
	}
	return 42, nil
}

func (m *mockRepo) Cancel(ctx context.Context, invoiceID int64, cancelledBy string) error {
	m.cancelCalls++
	m.lastCancel = cancelledBy
	m.lastActor = appctx.GetActor(ctx)
	return nil
}

func validDraft() *documents.Draft {
	d := documents.NewSalesDraft(func(int64, int64) float64 { return 100 })
	d.CounterpartyID = 3
	d.CreatedBy = "tester"
	_ = d.AddLine(documents.NewLine(1, "A", 1, "Main", 2, types.MustMoney("50")))
	_ = d.AddLine(documents.NewLine(2, "B", 1, "Main", 3, types.MustMoney("50")))
	return d
}

func TestSubmit_InvalidDraftMakesNoRequest(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	d := documents.NewSalesDraft(nil) // nothing filled in

	_, err := svc.Submit(context.Background(), d, "Acme")

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.createCalls, "invalid draft must not reach the API")
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	d := validDraft()

	snap, err := svc.Submit(context.Background(), d, "Acme Corp")

	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, int64(3), repo.lastCreate.CustomerID)
	assert.Len(t, repo.lastCreate.Items, 2)
	assert.Equal(t, "tester", repo.lastActor, "creator travels on the request context")

	// Snapshot mirrors the submitted payload.
	assert.Equal(t, int64(42), snap.InvoiceID)
	assert.Equal(t, "Acme Corp", snap.CounterpartyName)
	assert.Equal(t, "285.00", types.FormatAmount(snap.Totals.Total))

	// Draft resets to defaults after success.
	assert.Empty(t, d.Lines)
	assert.Zero(t, d.CounterpartyID)

	assert.Equal(t, snap, svc.LastSnapshot())
}

func TestSubmit_RepoErrorKeepsDraft(t *testing.T) {
	repo := &mockRepo{createErr: apperror.NewAPI(500, "boom", nil)}
	svc := NewService(repo)
	d := validDraft()

	_, err := svc.Submit(context.Background(), d, "Acme")

	require.Error(t, err)
	assert.Len(t, d.Lines, 2, "failed submission leaves the draft intact")
	assert.Nil(t, svc.LastSnapshot())
}

func TestCancel(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	inv := &Invoice{ID: 7, Status: documents.StatusPending}

	require.NoError(t, svc.Cancel(context.Background(), inv, "R. Hanna"))

	assert.Equal(t, documents.StatusCancelled, inv.Status)
	require.NotNil(t, inv.CancelledBy)
	assert.Equal(t, "R. Hanna", *inv.CancelledBy)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, "R. Hanna", repo.lastActor)
}

func TestCancel_RequiresActor(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	inv := &Invoice{ID: 7, Status: documents.StatusPending}

	err := svc.Cancel(context.Background(), inv, "   ")

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	inv := &Invoice{ID: 7, Status: documents.StatusCancelled}

	err := svc.Cancel(context.Background(), inv, "R. Hanna")

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeAlreadyCancelled, appErr.Code)
	assert.Zero(t, repo.cancelCalls, "second cancel never reaches the API")
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gemstore/internal/infra"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/queries"
	"gemstore/tests/common/builder"
	queriesmock "gemstore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func TestCheckoutQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByNumber maps missing rows to ErrNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCheckoutReadStore(ctrl)
		store.EXPECT().ViewByNumber(ctx, "000-000-000-000").Return(nil, notFoundErr())

		_, err := queries.NewCheckoutQueries(store).GetByNumber(ctx, "000-000-000-000")
		assert.ErrorIs(t, err, queries.ErrNotFound)
	})

	t.Run("List requires the sales view capability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCheckoutReadStore(ctrl)

		q := queries.NewCheckoutQueries(store)
		_, err := q.List(ctx, builder.NewActorBuilder().Build(), queries.Page{})
		assert.ErrorIs(t, err, queries.ErrForbidden)
	})

	t.Run("List normalizes the page before hitting the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCheckoutReadStore(ctrl)
		store.EXPECT().ListPaged(ctx, int32(50), int32(0)).
			Return([]*queries.CheckoutView{builder.NewCheckoutBuilder().BuildView()}, nil)

		q := queries.NewCheckoutQueries(store)
		views, err := q.List(ctx, builder.NewActorBuilder().AsOperator().Build(), queries.Page{Number: -3, Size: 0})
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByTransaction is operator-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)

		q := queries.NewOrderQueries(store)
		_, err := q.GetByTransaction(ctx, builder.NewActorBuilder().Build(), "CAP-1")
		assert.ErrorIs(t, err, queries.ErrForbidden)
	})

	t.Run("ListByUser pages without a capability check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		userID := uuid.New()
		store.EXPECT().ListByUserPaged(ctx, userID, int32(20), int32(40)).
			Return([]*queries.OrderView{builder.NewOrderBuilder().WithUserID(userID).BuildView()}, nil)

		q := queries.NewOrderQueries(store)
		views, err := q.ListByUser(ctx, userID, queries.Page{Number: 2, Size: 20})
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})
}

func TestInvoiceQueries(t *testing.T) {
	ctx := context.Background()

	newSut := func(t *testing.T) (queries.InvoiceQueries, *queriesmock.MockInvoiceReadStore, *queriesmock.MockDocumentRenderer) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockInvoiceReadStore(ctrl)
		renderer := queriesmock.NewMockDocumentRenderer(ctrl)
		return queries.NewInvoiceQueries(store, renderer), store, renderer
	}

	t.Run("RenderByNumber returns the rendered document", func(t *testing.T) {
		q, store, renderer := newSut(t)
		view := builder.NewInvoiceBuilder().BuildView()
		store.EXPECT().ViewByNumber(ctx, view.Number).Return(view, nil)
		renderer.EXPECT().Render(view).Return([]byte("%PDF-1.7"), nil)

		data, err := q.RenderByNumber(ctx, view.Number)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7"), data)
	})

	t.Run("renderer failure is marked ErrRenderFailure", func(t *testing.T) {
		q, store, renderer := newSut(t)
		view := builder.NewInvoiceBuilder().BuildView()
		store.EXPECT().ViewByOrderNumber(ctx, view.OrderNumber).Return(view, nil)
		renderer.EXPECT().Render(view).Return(nil, errs.New("font missing"))

		_, _, err := q.RenderByOrderNumber(ctx, view.OrderNumber)
		assert.ErrorIs(t, err, queries.ErrRenderFailure)
	})

	t.Run("RenderByOrderNumber returns the invoice number with the document", func(t *testing.T) {
		q, store, renderer := newSut(t)
		view := builder.NewInvoiceBuilder().BuildView()
		store.EXPECT().ViewByOrderNumber(ctx, view.OrderNumber).Return(view, nil)
		renderer.EXPECT().Render(view).Return([]byte("%PDF-1.7"), nil)

		num, data, err := q.RenderByOrderNumber(ctx, view.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, view.Number, num)
		assert.Equal(t, []byte("%PDF-1.7"), data)
	})

	t.Run("missing invoice maps to ErrNotFound before rendering", func(t *testing.T) {
		q, store, _ := newSut(t)
		store.EXPECT().ViewByNumber(ctx, "GEMSTORE-2026-09-01-999999").Return(nil, notFoundErr())

		_, err := q.RenderByNumber(ctx, "GEMSTORE-2026-09-01-999999")
		assert.ErrorIs(t, err, queries.ErrNotFound)
	})
}

package queries

import (
	"context"

	"gemstore/internal/infra"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/shared"
)

// ErrNotFound is the read side's single not-found sentinel; handlers phrase
// the resource themselves.
var (
	ErrNotFound  = errs.New("not found")
	ErrForbidden = errs.New("forbidden")
)

type checkoutQueriesImpl struct {
	store CheckoutReadStore
}

func NewCheckoutQueries(store CheckoutReadStore) CheckoutQueries {
	return &checkoutQueriesImpl{store: store}
}

func (q *checkoutQueriesImpl) GetByNumber(ctx context.Context, num string) (*CheckoutView, error) {
	view, err := q.store.ViewByNumber(ctx, num)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *checkoutQueriesImpl) List(ctx context.Context, actor shared.Actor, page Page) ([]*CheckoutView, error) {
	if !actor.CanViewAllSales() {
		return nil, ErrForbidden
	}

	page = page.Normalize()
	return q.store.ListPaged(ctx, page.Limit(), page.Offset())
}

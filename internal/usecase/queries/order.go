package queries

import (
	"context"

	"gemstore/internal/infra"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/shared"

	"github.com/google/uuid"
)

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, num string) (*OrderView, error) {
	view, err := q.store.ViewByNumber(ctx, num)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByTransaction(ctx context.Context, actor shared.Actor, transaction string) (*OrderView, error) {
	if !actor.CanViewAllSales() {
		return nil, ErrForbidden
	}

	view, err := q.store.ViewByTransaction(ctx, transaction)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, actor shared.Actor, page Page) ([]*OrderView, error) {
	if !actor.CanViewAllSales() {
		return nil, ErrForbidden
	}

	page = page.Normalize()
	return q.store.ListPaged(ctx, page.Limit(), page.Offset())
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]*OrderView, error) {
	page = page.Normalize()
	return q.store.ListByUserPaged(ctx, userID, page.Limit(), page.Offset())
}

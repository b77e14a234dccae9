package repository

import (
	"context"

	"gemstore/internal/domain/item"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(pool db.DBTX) *ItemRepository {
	return &ItemRepository{db: pool}
}

func (r *ItemRepository) FindByNumber(ctx context.Context, num string) (*item.Item, error) {
	var it item.Item
	err := r.db.QueryRow(ctx, `
		SELECT number, name, price_cents, stock FROM items WHERE number = $1`, num).
		Scan(&it.Number, &it.Name, &it.PriceCents, &it.Stock)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by number", err)
	}

	return &it, nil
}

// AdjustStock applies the delta in one conditional update so concurrent
// reservations can never take stock below zero or lose an update.
func (r *ItemRepository) AdjustStock(ctx context.Context, tx db.DBTX, num string, delta int32) (int32, error) {
	q := r.db
	if tx != nil {
		q = tx
	}

	var newStock int32
	err := q.QueryRow(ctx, `
		UPDATE items SET stock = stock + $2
		WHERE number = $1 AND stock + $2 >= 0
		RETURNING stock`, num, delta).Scan(&newStock)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// Either the item does not exist or the delta would go negative;
			// disambiguate for the caller.
			if _, findErr := r.FindByNumber(ctx, num); findErr != nil {
				return 0, findErr
			}
			return 0, infra.WrapRepoErr("insufficient stock", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to adjust stock", err)
	}

	return newStock, nil
}

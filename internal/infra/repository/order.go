package repository

import (
	"context"
	"encoding/json"
	"time"

	"gemstore/internal/domain/item"
	"gemstore/internal/domain/order"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(pool db.DBTX) *OrderRepository {
	return &OrderRepository{db: pool}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	lines, err := json.Marshal(o.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order lines", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, number, user_id, lines, total_cents, state, transaction, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID(), o.Number(), o.UserID(), lines, o.TotalCents(), string(o.State()), o.Transaction(), o.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("order number or transaction already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}

	return nil
}

func (r *OrderRepository) FindByNumber(ctx context.Context, tx db.DBTX, num string) (*order.Order, error) {
	q := r.db
	if tx != nil {
		q = tx
	}
	row := q.QueryRow(ctx, `
		SELECT id, number, user_id, lines, total_cents, state, transaction, created_at
		FROM orders WHERE number = $1`, num)

	return scanOrder(row)
}

func (r *OrderRepository) FindByTransaction(ctx context.Context, transaction string) (*order.Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, number, user_id, lines, total_cents, state, transaction, created_at
		FROM orders WHERE transaction = $1`, transaction)

	return scanOrder(row)
}

// MarkCanceled is the one-way Waiting -> Canceled latch as a conditional
// update. Concurrent cancels serialize on the row lock; the loser sees zero
// rows affected and must not refund.
func (r *OrderRepository) MarkCanceled(ctx context.Context, tx db.DBTX, num string, override bool) (bool, error) {
	cond := `state = 'Waiting'`
	if override {
		cond = `state <> 'Canceled'`
	}

	tag, err := tx.Exec(ctx, `
		UPDATE orders SET state = 'Canceled' WHERE number = $1 AND `+cond, num)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel order", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) ViewByNumber(ctx context.Context, num string) (*queries.OrderView, error) {
	o, err := r.FindByNumber(ctx, nil, num)
	if err != nil {
		return nil, err
	}
	return orderToView(o), nil
}

func (r *OrderRepository) ViewByTransaction(ctx context.Context, transaction string) (*queries.OrderView, error) {
	o, err := r.FindByTransaction(ctx, transaction)
	if err != nil {
		return nil, err
	}
	return orderToView(o), nil
}

func (r *OrderRepository) ListPaged(ctx context.Context, limit, offset int32) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, user_id, lines, total_cents, state, transaction, created_at
		FROM orders ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return collectOrderViews(rows)
}

func (r *OrderRepository) ListByUserPaged(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, user_id, lines, total_cents, state, transaction, created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	return collectOrderViews(rows)
}

func collectOrderViews(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*queries.OrderView, error) {
	var result []*queries.OrderView
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, orderToView(o))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return result, nil
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var (
		id          uuid.UUID
		num         string
		userID      uuid.UUID
		rawLines    []byte
		totalCents  int64
		state       string
		transaction string
		createdAt   time.Time
	)

	if err := row.Scan(&id, &num, &userID, &rawLines, &totalCents, &state, &transaction, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	var lines []item.Line
	if err := json.Unmarshal(rawLines, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order lines", err)
	}

	st, err := order.NewState(state)
	if err != nil {
		return nil, infra.WrapRepoErr("unknown order state", err)
	}

	return order.ReconstructOrder(id, num, userID, lines, totalCents, st, transaction, createdAt), nil
}

func orderToView(o *order.Order) *queries.OrderView {
	return &queries.OrderView{
		Number:      o.Number(),
		UserID:      o.UserID(),
		Lines:       o.Lines(),
		TotalCents:  o.TotalCents(),
		State:       string(o.State()),
		Transaction: o.Transaction(),
		CreatedAt:   o.CreatedAt(),
	}
}

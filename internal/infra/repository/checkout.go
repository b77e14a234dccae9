package repository

import (
	"context"
	"encoding/json"
	"time"

	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/item"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutRepository struct {
	db db.DBTX
}

func NewCheckoutRepository(pool db.DBTX) *CheckoutRepository {
	return &CheckoutRepository{db: pool}
}

func (r *CheckoutRepository) Create(ctx context.Context, tx db.DBTX, snap *checkout.Snapshot) error {
	lines, err := json.Marshal(snap.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode checkout lines", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO checkouts (id, number, user_id, lines, total_cents, settled, intent_created, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		snap.ID(), snap.Number(), snap.UserID(), lines, snap.TotalCents(), snap.Settled(), snap.IntentCreated(), snap.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("checkout number already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create checkout", err)
	}

	return nil
}

func (r *CheckoutRepository) FindByNumber(ctx context.Context, num string) (*checkout.Snapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, number, user_id, lines, total_cents, settled, intent_created, created_at
		FROM checkouts WHERE number = $1`, num)

	return scanCheckout(row)
}

func (r *CheckoutRepository) MarkIntentCreated(ctx context.Context, num string) error {
	tag, err := r.db.Exec(ctx, `UPDATE checkouts SET intent_created = TRUE WHERE number = $1`, num)
	if err != nil {
		return infra.WrapRepoErr("failed to mark checkout intent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("checkout not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CheckoutRepository) MarkSettled(ctx context.Context, tx db.DBTX, num string) error {
	tag, err := tx.Exec(ctx, `UPDATE checkouts SET settled = TRUE WHERE number = $1`, num)
	if err != nil {
		return infra.WrapRepoErr("failed to mark checkout settled", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("checkout not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteExpired purges snapshots older than the cutoff, sparing unsettled
// snapshots that already have a payment intent in flight.
func (r *CheckoutRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM checkouts
		WHERE created_at < $1 AND (NOT intent_created OR settled)`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired checkouts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CheckoutRepository) ViewByNumber(ctx context.Context, num string) (*queries.CheckoutView, error) {
	snap, err := r.FindByNumber(ctx, num)
	if err != nil {
		return nil, err
	}
	return checkoutToView(snap), nil
}

func (r *CheckoutRepository) ListPaged(ctx context.Context, limit, offset int32) ([]*queries.CheckoutView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, user_id, lines, total_cents, settled, intent_created, created_at
		FROM checkouts ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list checkouts", err)
	}
	defer rows.Close()

	var result []*queries.CheckoutView
	for rows.Next() {
		snap, err := scanCheckout(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, checkoutToView(snap))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read checkout rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCheckout(row rowScanner) (*checkout.Snapshot, error) {
	var (
		id            uuid.UUID
		num           string
		userID        uuid.UUID
		rawLines      []byte
		totalCents    int64
		settled       bool
		intentCreated bool
		createdAt     time.Time
	)

	if err := row.Scan(&id, &num, &userID, &rawLines, &totalCents, &settled, &intentCreated, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan checkout", err)
	}

	var lines []item.Line
	if err := json.Unmarshal(rawLines, &lines); err != nil {
		return nil, infra.WrapRepoErr("failed to decode checkout lines", err)
	}

	return checkout.ReconstructSnapshot(id, num, userID, lines, totalCents, settled, intentCreated, createdAt), nil
}

func checkoutToView(snap *checkout.Snapshot) *queries.CheckoutView {
	return &queries.CheckoutView{
		Number:        snap.Number(),
		UserID:        snap.UserID(),
		Lines:         snap.Lines(),
		TotalCents:    snap.TotalCents(),
		Settled:       snap.Settled(),
		IntentCreated: snap.IntentCreated(),
		CreatedAt:     snap.CreatedAt(),
	}
}

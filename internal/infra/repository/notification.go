package repository

import (
	"context"
	"time"

	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(pool db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: pool}
}

// CreateJob enqueues an outbox row inside the caller's transaction. A mail
// worker drains the table; a settlement that rolls back leaves nothing to send.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, 'queued')`,
		uuid.New(), kind, topic, payload, pgconv.TimeToPgtype(runAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	le := pgtype.Text{Valid: false}
	if lastError != nil {
		le = pgtype.Text{String: *lastError, Valid: true}
	}

	_, err := tx.Exec(ctx, `
		UPDATE notification_jobs SET status = $2, last_error = $3, updated_at = now()
		WHERE id = $1`,
		jobID, status, le,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}

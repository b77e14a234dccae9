package commands

import (
	"context"
	"errors"

	"gemstore/internal/domain/order"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/pkg/metrics"
	"gemstore/internal/usecase/shared"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrInvalidState  = errs.New("order is not cancelable in its current state")
)

type OrderCommands interface {
	// CancelOrder flips a Waiting order to Canceled and refunds the capture.
	// Owners cancel their own Waiting orders; admins may cancel any order
	// that is not already canceled.
	CancelOrder(ctx context.Context, actor shared.Actor, orderNumber string) error
}

type orderUseCaseImpl struct {
	uow       UnitOfWork
	orderRepo OrderRepository
	gateway   PaymentGateway
	metrics   *metrics.Metrics
}

func NewOrderUseCase(
	uow UnitOfWork,
	orderRepo OrderRepository,
	gateway PaymentGateway,
	m *metrics.Metrics,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:       uow,
		orderRepo: orderRepo,
		gateway:   gateway,
		metrics:   m,
	}
}

func (u *orderUseCaseImpl) CancelOrder(ctx context.Context, actor shared.Actor, orderNumber string) error {
	override := actor.CanOverrideCancel()

	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := u.orderRepo.FindByNumber(ctx, tx, orderNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := o.AuthorizeCancel(actor.ID, override); err != nil {
			switch {
			case errors.Is(err, order.ErrOwnershipViolation):
				return ErrForbidden
			default:
				return errs.Mark(err, ErrInvalidState)
			}
		}

		// The conditional update is the single cancellation winner: a
		// concurrent canceler blocks on the row lock, re-evaluates the
		// state predicate and changes nothing. Only the winner reaches the
		// refund call, so the capture is refunded at most once.
		changed, err := u.orderRepo.MarkCanceled(ctx, tx, orderNumber, override)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !changed {
			return ErrInvalidState
		}

		// Refund inside the transaction: a provider failure rolls the state
		// flip back and leaves the order cancelable again.
		if _, err := u.gateway.Refund(ctx, o.Transaction(), o.TotalCents()); err != nil {
			return errs.Mark(err, ErrGatewayFailure)
		}

		return nil
	})
	if err != nil {
		return err
	}

	u.metrics.OrdersCanceled.Inc()
	return nil
}

package commands

import (
	"context"
	"encoding/json"

	"gemstore/internal/domain/address"
	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/invoice"
	"gemstore/internal/domain/number"
	"gemstore/internal/domain/order"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/pkg/metrics"
	"gemstore/internal/usecase/queries"
	"gemstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrForbidden              = errs.New("forbidden")
	ErrCheckoutAlreadySettled = errs.New("checkout already settled")
	ErrInsufficientStock      = errs.New("insufficient stock")
	ErrGatewayFailure         = errs.New("payment gateway failure")
)

type PaymentCommands interface {
	CreateIntent(ctx context.Context, actor shared.Actor, checkoutNumber string) (*IntentResult, error)

	// CaptureIntent settles a checkout: capture funds at the provider, then
	// reserve stock, persist the order, emit the invoice and queue the
	// confirmation mail in one transaction. Replays of an already settled
	// capture return the existing order.
	CaptureIntent(ctx context.Context, actor shared.Actor, intentID, checkoutNumber string) (*queries.OrderView, error)
}

type paymentUseCaseImpl struct {
	uow          UnitOfWork
	gateway      PaymentGateway
	checkoutRepo CheckoutRepository
	orderRepo    OrderRepository
	itemRepo     ItemRepository
	invoiceRepo  InvoiceRepository
	addressStore AddressReadStore
	notifyRepo   NotificationRepository
	orderQueries queries.OrderQueries
	clock        clock.Clock
	metrics      *metrics.Metrics
}

func NewPaymentUseCase(
	uow UnitOfWork,
	gateway PaymentGateway,
	checkoutRepo CheckoutRepository,
	orderRepo OrderRepository,
	itemRepo ItemRepository,
	invoiceRepo InvoiceRepository,
	addressStore AddressReadStore,
	notifyRepo NotificationRepository,
	orderQueries queries.OrderQueries,
	clock clock.Clock,
	m *metrics.Metrics,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:          uow,
		gateway:      gateway,
		checkoutRepo: checkoutRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
		addressStore: addressStore,
		notifyRepo:   notifyRepo,
		orderQueries: orderQueries,
		clock:        clock,
		metrics:      m,
	}
}

func (p *paymentUseCaseImpl) CreateIntent(ctx context.Context, actor shared.Actor, checkoutNumber string) (*IntentResult, error) {
	snap, err := p.loadOwnedCheckout(ctx, actor, checkoutNumber)
	if err != nil {
		return nil, err
	}
	if snap.Settled() {
		return nil, ErrCheckoutAlreadySettled
	}

	if err := p.validateStock(ctx, snap); err != nil {
		return nil, err
	}

	result, err := p.gateway.CreateIntent(ctx, snap.TotalCents())
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	// Recording the intent shields the snapshot from the expiry sweep while
	// the shopper is off approving the payment.
	if err := p.checkoutRepo.MarkIntentCreated(ctx, snap.Number()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result, nil
}

func (p *paymentUseCaseImpl) CaptureIntent(ctx context.Context, actor shared.Actor, intentID, checkoutNumber string) (*queries.OrderView, error) {
	snap, err := p.loadOwnedCheckout(ctx, actor, checkoutNumber)
	if err != nil {
		return nil, err
	}

	captured, err := p.gateway.Capture(ctx, intentID)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayFailure)
	}

	// A redelivered confirmation for an already settled capture returns the
	// existing order instead of settling twice, so the settled flag is
	// consulted only after this lookup.
	existing, err := p.orderRepo.FindByTransaction(ctx, captured.CaptureID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return p.orderQueries.GetByNumber(ctx, existing.Number())
	}
	if snap.Settled() {
		return nil, ErrCheckoutAlreadySettled
	}

	billing, shipping := p.loadAddresses(ctx, snap.UserID())

	orderNumber, err := p.settle(ctx, snap, captured.CaptureID, billing, shipping)
	if err != nil {
		return nil, err
	}

	p.metrics.OrdersCreated.Inc()

	view, err := p.orderQueries.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (p *paymentUseCaseImpl) loadOwnedCheckout(ctx context.Context, actor shared.Actor, checkoutNumber string) (*checkout.Snapshot, error) {
	snap, err := p.checkoutRepo.FindByNumber(ctx, checkoutNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCheckoutNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snap.UserID() != actor.ID && !actor.CanViewAllSales() {
		return nil, ErrForbidden
	}

	return snap, nil
}

// validateStock rejects a payment attempt early when the catalog can no
// longer cover the cart. The authoritative check is the conditional
// decrement at settlement; this one just spares the shopper a doomed
// provider round trip.
func (p *paymentUseCaseImpl) validateStock(ctx context.Context, snap *checkout.Snapshot) error {
	for _, line := range snap.Lines() {
		catalogItem, err := p.itemRepo.FindByNumber(ctx, line.ItemNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Newf("item not found: %s", line.ItemNumber), ErrItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if catalogItem.Stock < line.Quantity {
			return errs.Mark(errs.Newf("insufficient stock for item: %s", line.Name), ErrInsufficientStock)
		}
	}

	return nil
}

// loadAddresses fetches the shopper's saved addresses best effort. A missing
// address leaves its block empty on the invoice.
func (p *paymentUseCaseImpl) loadAddresses(ctx context.Context, userID uuid.UUID) (address.Address, address.Address) {
	var billing, shipping address.Address
	if a, err := p.addressStore.BillingByUser(ctx, userID); err == nil {
		billing = *a
	}
	if a, err := p.addressStore.ShippingByUser(ctx, userID); err == nil {
		shipping = *a
	}
	return billing, shipping
}

// settle runs the transactional half of the capture flow and returns the new
// order number. A sales number collision aborts the whole transaction, so
// the retry wraps the transaction rather than the single insert.
func (p *paymentUseCaseImpl) settle(
	ctx context.Context,
	snap *checkout.Snapshot,
	captureID string,
	billing, shipping address.Address,
) (string, error) {
	for attempt := 0; attempt < numberAttempts; attempt++ {
		orderNumber := number.NewRandom()

		err := p.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			return p.settleTx(ctx, tx, snap, orderNumber, captureID, billing, shipping)
		})
		if err == nil {
			return orderNumber, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Either the sales number collided or a racing capture already
			// settled this transaction. Resolve the race before retrying
			// with a fresh number.
			existing, findErr := p.orderRepo.FindByTransaction(ctx, captureID)
			if findErr == nil {
				return existing.Number(), nil
			}
			continue
		}
		return "", err
	}

	return "", ErrNumberExhausted
}

func (p *paymentUseCaseImpl) settleTx(
	ctx context.Context,
	tx db.DBTX,
	snap *checkout.Snapshot,
	orderNumber, captureID string,
	billing, shipping address.Address,
) error {
	now := p.clock.Now()

	// All-or-none reservation: any line failing its conditional decrement
	// rolls back every previous one.
	for _, line := range snap.Lines() {
		if _, err := p.itemRepo.AdjustStock(ctx, tx, line.ItemNumber, -line.Quantity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(errs.Newf("insufficient stock for item: %s", line.Name), ErrInsufficientStock)
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(errs.Newf("item not found: %s", line.ItemNumber), ErrItemNotFound)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
	}

	newOrder, err := order.NewOrder(orderNumber, snap.UserID(), snap.Lines(), snap.TotalCents(), captureID, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := p.orderRepo.Create(ctx, tx, newOrder); err != nil {
		return err
	}

	counter, err := p.invoiceRepo.NextNumber(ctx, tx, now)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	inv, err := invoice.NewInvoice(
		invoice.FormatNumber(now, counter),
		orderNumber,
		billing, shipping,
		snap.Lines(),
		snap.TotalCents(),
		now,
	)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := p.invoiceRepo.Create(ctx, tx, inv); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := p.queueConfirmation(ctx, tx, newOrder, inv); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := p.checkoutRepo.MarkSettled(ctx, tx, snap.Number()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (p *paymentUseCaseImpl) queueConfirmation(ctx context.Context, tx db.DBTX, o *order.Order, inv *invoice.Invoice) error {
	payload, err := json.Marshal(map[string]any{
		"type":           "order_confirmation",
		"order_number":   o.Number(),
		"invoice_number": inv.Number(),
		"user_id":        o.UserID(),
		"total_cents":    o.TotalCents(),
	})
	if err != nil {
		return err
	}

	return p.notifyRepo.CreateJob(ctx, tx, "email", "order_confirmation", payload, p.clock.Now())
}

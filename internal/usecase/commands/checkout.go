package commands

import (
	"context"

	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/item"
	"gemstore/internal/domain/number"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/pkg/errs"
	"gemstore/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmptyCheckout           = errs.New("checkout requires at least one line item")
	ErrInvalidQuantity         = errs.New("quantity must be positive")
	ErrItemNotFound            = errs.New("item not found")
	ErrCheckoutNotFound        = errs.New("checkout not found")
	ErrNumberExhausted         = errs.New("could not allocate a unique sales number")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// numberAttempts bounds the retry loop for random sales numbers. The token
// space is 9*10^11, so hitting this limit means something other than luck.
const numberAttempts = 5

type CheckoutLineInput struct {
	ItemNumber string
	Quantity   int32
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, userID uuid.UUID, lines []CheckoutLineInput) (*queries.CheckoutView, error)
}

type checkoutUseCaseImpl struct {
	checkoutRepo    CheckoutRepository
	itemRepo        ItemRepository
	checkoutQueries queries.CheckoutQueries
	db              db.DBTX
	clock           clock.Clock
}

func NewCheckoutUseCase(
	checkoutRepo CheckoutRepository,
	itemRepo ItemRepository,
	checkoutQueries queries.CheckoutQueries,
	pool db.DBTX,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		checkoutRepo:    checkoutRepo,
		itemRepo:        itemRepo,
		checkoutQueries: checkoutQueries,
		db:              pool,
		clock:           clock,
	}
}

// CreateCheckout prices the requested items against the live catalog and
// freezes the result as an unsettled snapshot. Prices are locked here; later
// catalog changes never reprice an existing checkout.
func (c *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, userID uuid.UUID, inputs []CheckoutLineInput) (*queries.CheckoutView, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyCheckout
	}

	lines, err := c.priceLines(ctx, inputs)
	if err != nil {
		return nil, err
	}

	snap, err := c.persistWithFreshNumber(ctx, userID, lines)
	if err != nil {
		return nil, err
	}

	view, err := c.checkoutQueries.GetByNumber(ctx, snap.Number())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (c *checkoutUseCaseImpl) priceLines(ctx context.Context, inputs []CheckoutLineInput) ([]item.Line, error) {
	lines := make([]item.Line, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, errs.Mark(errs.Newf("invalid quantity for item %s", in.ItemNumber), ErrInvalidQuantity)
		}

		catalogItem, err := c.itemRepo.FindByNumber(ctx, in.ItemNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(errs.Newf("item not found: %s", in.ItemNumber), ErrItemNotFound)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		lines = append(lines, item.Line{
			ItemNumber:     catalogItem.Number,
			Name:           catalogItem.Name,
			UnitPriceCents: catalogItem.PriceCents,
			Quantity:       in.Quantity,
		})
	}

	return lines, nil
}

// persistWithFreshNumber generates a random sales number and retries on a
// duplicate-key collision with a new one.
func (c *checkoutUseCaseImpl) persistWithFreshNumber(ctx context.Context, userID uuid.UUID, lines []item.Line) (*checkout.Snapshot, error) {
	for attempt := 0; attempt < numberAttempts; attempt++ {
		snap, err := checkout.NewSnapshot(number.NewRandom(), userID, lines, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrEmptyCheckout)
		}

		err = c.checkoutRepo.Create(ctx, c.db, snap)
		if err == nil {
			return snap, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil, ErrNumberExhausted
}

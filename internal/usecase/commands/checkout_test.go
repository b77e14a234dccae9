//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gemstore/internal/domain/checkout"
	"gemstore/internal/domain/number"
	"gemstore/internal/infra"
	"gemstore/internal/pkg/clock"
	"gemstore/internal/usecase/commands"
	"gemstore/internal/usecase/queries"
	"gemstore/tests/common/builder"
	commandsmock "gemstore/tests/mock/commands"
	queriesmock "gemstore/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	checkoutRepo *commandsmock.MockCheckoutRepository
	itemRepo     *commandsmock.MockItemRepository
	queries      *queriesmock.MockCheckoutQueries
}

func newCheckoutUseCase(t *testing.T) (commands.CheckoutCommands, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		checkoutRepo: commandsmock.NewMockCheckoutRepository(ctrl),
		itemRepo:     commandsmock.NewMockItemRepository(ctrl),
		queries:      queriesmock.NewMockCheckoutQueries(ctrl),
	}
	uc := commands.NewCheckoutUseCase(
		m.checkoutRepo, m.itemRepo, m.queries, nil,
		clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)),
	)
	return uc, m
}

func TestCreateCheckout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("prices lines from the catalog and returns the stored view", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)

		ring := builder.NewItemBuilder().Build()
		pendant := builder.NewItemBuilder().WithNumber("GEM-0002").WithName("Opal Pendant").WithPriceCents(1000).Build()

		m.itemRepo.EXPECT().FindByNumber(ctx, "GEM-0001").Return(ring, nil)
		m.itemRepo.EXPECT().FindByNumber(ctx, "GEM-0002").Return(pendant, nil)

		var storedNumber string
		m.checkoutRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, snap *checkout.Snapshot) error {
				storedNumber = snap.Number()
				assert.True(t, number.Valid(snap.Number()))
				assert.Equal(t, int64(3500), snap.TotalCents())
				assert.Equal(t, "Amethyst Ring", snap.Lines()[0].Name)
				return nil
			})
		m.queries.EXPECT().GetByNumber(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, num string) (*queries.CheckoutView, error) {
				assert.Equal(t, storedNumber, num)
				return builder.NewCheckoutBuilder().WithNumber(num).WithUserID(userID).BuildView(), nil
			})

		view, err := uc.CreateCheckout(ctx, userID, builder.NewCheckoutBuilder().BuildInputs())
		require.NoError(t, err)
		assert.Equal(t, storedNumber, view.Number)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.CreateCheckout(ctx, userID, nil)
		assert.ErrorIs(t, err, commands.ErrEmptyCheckout)
	})

	t.Run("non-positive quantity is rejected before catalog lookup", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.CreateCheckout(ctx, userID, []commands.CheckoutLineInput{{ItemNumber: "GEM-0001", Quantity: 0}})
		assert.ErrorIs(t, err, commands.ErrInvalidQuantity)
	})

	t.Run("unknown item maps to ErrItemNotFound", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.itemRepo.EXPECT().FindByNumber(ctx, "GEM-9999").
			Return(nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound))

		_, err := uc.CreateCheckout(ctx, userID, []commands.CheckoutLineInput{{ItemNumber: "GEM-9999", Quantity: 1}})
		assert.ErrorIs(t, err, commands.ErrItemNotFound)
		assert.Contains(t, err.Error(), "GEM-9999")
	})

	t.Run("number collision retries with a fresh number", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)

		m.itemRepo.EXPECT().FindByNumber(ctx, "GEM-0001").Return(builder.NewItemBuilder().Build(), nil)

		var numbers []string
		dup := infra.WrapRepoErr("duplicate number", nil, infra.KindDuplicateKey)
		m.checkoutRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, snap *checkout.Snapshot) error {
				numbers = append(numbers, snap.Number())
				if len(numbers) == 1 {
					return dup
				}
				return nil
			}).Times(2)
		m.queries.EXPECT().GetByNumber(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, num string) (*queries.CheckoutView, error) {
				return builder.NewCheckoutBuilder().WithNumber(num).BuildView(), nil
			})

		_, err := uc.CreateCheckout(ctx, userID, []commands.CheckoutLineInput{{ItemNumber: "GEM-0001", Quantity: 1}})
		require.NoError(t, err)
		require.Len(t, numbers, 2)
		assert.NotEqual(t, numbers[0], numbers[1])
	})

	t.Run("persistent collisions give up with ErrNumberExhausted", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)

		m.itemRepo.EXPECT().FindByNumber(ctx, "GEM-0001").Return(builder.NewItemBuilder().Build(), nil)
		m.checkoutRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate number", nil, infra.KindDuplicateKey)).Times(5)

		_, err := uc.CreateCheckout(ctx, userID, []commands.CheckoutLineInput{{ItemNumber: "GEM-0001", Quantity: 1}})
		assert.ErrorIs(t, err, commands.ErrNumberExhausted)
	})
}

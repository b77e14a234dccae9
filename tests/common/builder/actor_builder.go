//go:build unit || e2e

package builder

import (
	"gemstore/internal/domain/item"
	"gemstore/internal/domain/user"
	"gemstore/internal/usecase/shared"

	"github.com/google/uuid"
)

type ActorBuilder struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		ID:   uuid.New(),
		Role: user.RoleCustomer,
	}
}

func (a *ActorBuilder) Build() shared.Actor {
	return shared.Actor{ID: a.ID, Role: a.Role}
}

// Fluent builder methods
func (a *ActorBuilder) WithID(id uuid.UUID) *ActorBuilder {
	a.ID = id
	return a
}

func (a *ActorBuilder) AsOperator() *ActorBuilder {
	a.Role = user.RoleOperator
	return a
}

func (a *ActorBuilder) AsAdmin() *ActorBuilder {
	a.Role = user.RoleAdmin
	return a
}

type ItemBuilder struct {
	Number     string
	Name       string
	PriceCents int64
	Stock      int32
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		Number:     "GEM-0001",
		Name:       "Amethyst Ring",
		PriceCents: 2500,
		Stock:      10,
	}
}

func (i *ItemBuilder) Build() *item.Item {
	return &item.Item{
		Number:     i.Number,
		Name:       i.Name,
		PriceCents: i.PriceCents,
		Stock:      i.Stock,
	}
}

// Fluent builder methods
func (i *ItemBuilder) WithNumber(num string) *ItemBuilder {
	i.Number = num
	return i
}

func (i *ItemBuilder) WithName(name string) *ItemBuilder {
	i.Name = name
	return i
}

func (i *ItemBuilder) WithPriceCents(cents int64) *ItemBuilder {
	i.PriceCents = cents
	return i
}

func (i *ItemBuilder) WithStock(stock int32) *ItemBuilder {
	i.Stock = stock
	return i
}

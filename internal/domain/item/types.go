package item

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Item is the catalog view of a sellable article. The catalog itself is an
// external collaborator; this type only carries what the settlement core
// needs (pricing and stock checks).
type Item struct {
	Number     string
	Name       string
	PriceCents int64
	Stock      int32
}

// Line is a frozen (item, quantity, unit price) triple as stored on checkout
// snapshots, orders and invoices. Once written it is never re-joined against
// the live catalog.
type Line struct {
	ItemNumber     string `json:"item_number"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int32  `json:"quantity"`
}

func (l Line) Validate() error {
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

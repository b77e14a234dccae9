package repository

import (
	"context"

	"gemstore/internal/domain/address"
	"gemstore/internal/infra"
	"gemstore/internal/infra/db"
	"gemstore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// AddressReadStore reads the billing and shipping addresses a user saved in
// their profile. Addresses are snapshotted onto invoices at capture time, so
// only reads live here.
type AddressReadStore struct {
	db db.DBTX
}

func NewAddressReadStore(pool db.DBTX) *AddressReadStore {
	return &AddressReadStore{db: pool}
}

func (r *AddressReadStore) BillingByUser(ctx context.Context, userID uuid.UUID) (*address.Address, error) {
	return r.addressByUser(ctx, `
		SELECT name, street, city, postal_code, country
		FROM billing_addresses WHERE user_id = $1`, userID)
}

func (r *AddressReadStore) ShippingByUser(ctx context.Context, userID uuid.UUID) (*address.Address, error) {
	return r.addressByUser(ctx, `
		SELECT name, street, city, postal_code, country
		FROM shipping_addresses WHERE user_id = $1`, userID)
}

func (r *AddressReadStore) addressByUser(ctx context.Context, query string, userID uuid.UUID) (*address.Address, error) {
	var a address.Address
	err := r.db.QueryRow(ctx, query, userID).Scan(&a.Name, &a.Street, &a.City, &a.PostalCode, &a.Country)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find address", err)
	}

	return &a, nil
}

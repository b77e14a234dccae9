package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the caller's capability level. customer is a plain shopper;
// operator may list all checkouts/orders; admin may additionally
// force-cancel orders owned by other users.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanViewAllSales gates the paged listings of every checkout and order.
func (r Role) CanViewAllSales() bool {
	return r == RoleOperator || r == RoleAdmin
}

// CanOverrideCancel reports whether the role may cancel any order in any
// state, not only its own Waiting orders.
func (r Role) CanOverrideCancel() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

package user

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"

	// RolePayment identifies the payment confirmation callback. It is never
	// accepted from a token.
	RolePayment Role = "payment"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r can be carried by an authenticated principal.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDecorator, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	// the storefront historically called customers "user"
	if s == "user" {
		return RoleCustomer, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

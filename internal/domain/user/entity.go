package user

// Principal is the acting identity handed to every orchestrator call.
type Principal struct {
	Email       string
	DisplayName string
	Role        Role
}

func NewPrincipal(email, displayName, role string) (Principal, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Principal{}, err
	}
	r, err := NewRole(role)
	if err != nil {
		return Principal{}, err
	}
	return Principal{Email: e.Value(), DisplayName: displayName, Role: r}, nil
}

// PaymentCallback is the system principal used when the payment provider
// confirms a checkout session.
func PaymentCallback() Principal {
	return Principal{Role: RolePayment, DisplayName: "payment-callback"}
}

func (p Principal) IsAdmin() bool     { return p.Role == RoleAdmin }
func (p Principal) IsDecorator() bool { return p.Role == RoleDecorator }
func (p Principal) IsCustomer() bool  { return p.Role == RoleCustomer }

// Is reports whether the principal's email matches email.
func (p Principal) Is(email string) bool {
	return email != "" && NormalizeEmail(p.Email) == NormalizeEmail(email)
}

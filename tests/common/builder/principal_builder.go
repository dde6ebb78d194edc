//go:build unit || e2e

package builder

import "styledecor/internal/domain/user"

type PrincipalBuilder struct {
	Email       string
	DisplayName string
	Role        user.Role
}

func NewPrincipalBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		Email:       "customer@example.com",
		DisplayName: "Casey Customer",
		Role:        user.RoleCustomer,
	}
}

func (p *PrincipalBuilder) With(mutate func(*PrincipalBuilder)) *PrincipalBuilder {
	mutate(p)
	return p
}

func (p *PrincipalBuilder) AsDecorator() *PrincipalBuilder {
	p.Email = "decorator@example.com"
	p.DisplayName = "Dana Decorator"
	p.Role = user.RoleDecorator
	return p
}

func (p *PrincipalBuilder) AsAdmin() *PrincipalBuilder {
	p.Email = "admin@example.com"
	p.DisplayName = "Avery Admin"
	p.Role = user.RoleAdmin
	return p
}

func (p *PrincipalBuilder) Build() user.Principal {
	return user.Principal{Email: p.Email, DisplayName: p.DisplayName, Role: p.Role}
}

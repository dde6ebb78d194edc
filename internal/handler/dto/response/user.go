package response

import "styledecor/internal/domain/user"

type MeResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func FromPrincipal(p user.Principal) *MeResponse {
	return &MeResponse{Email: p.Email, DisplayName: p.DisplayName, Role: p.Role.String()}
}

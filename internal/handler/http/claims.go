package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/gta-labs/gta-backend-go/internal/domain/auth"
)

func currentUserID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}

// currentEmployeeID returns the employee linked to the authenticated user,
// or empty for accounts without an employee record (pure admin accounts).
func currentEmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["employee_id"].(string)
	return id
}

func currentRole(r *http.Request) auth.Role {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return auth.Role(role)
}

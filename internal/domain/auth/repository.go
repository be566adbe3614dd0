package auth

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// ListAdminIDs returns the IDs of all admin users. Used to fan out
	// approval notifications.
	ListAdminIDs(ctx context.Context) ([]string, error)
}

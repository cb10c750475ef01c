package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	// NamesByUserIDs resolves public ids to display names for joins.
	NamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error)
	Delete(ctx context.Context, userID string) error
}

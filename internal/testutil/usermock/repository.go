package usermock

import (
	"context"

	domain "loanbridge/internal/domain/user"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, u *domain.User) error
	SaveFn           func(ctx context.Context, u *domain.User) error
	GetByUserIDFn    func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	ListFn           func(ctx context.Context) ([]domain.User, error)
	ListByRoleFn     func(ctx context.Context, role domain.Role) ([]domain.User, error)
	NamesByUserIDsFn func(ctx context.Context, userIDs []string) (map[string]string, error)
	DeleteFn         func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) NamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	if m.NamesByUserIDsFn != nil {
		return m.NamesByUserIDsFn(ctx, userIDs)
	}
	return map[string]string{}, nil
}

func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}

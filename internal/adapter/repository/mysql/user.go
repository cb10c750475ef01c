package mysql

import (
	"context"

	userDomain "loanbridge/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Where("role = ?", role).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) NamesByUserIDs(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}
	var rows []struct {
		UserID string
		Name   string
	}
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Select("user_id", "name").
		Where("user_id IN ?", userIDs).
		Find(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Name
	}
	return out, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userDomain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

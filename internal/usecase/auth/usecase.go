package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanbridge/internal/domain/user"
	"loanbridge/pkg/id"
	"loanbridge/pkg/password"
	"loanbridge/pkg/token"

	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Usecase struct {
	users  user.Repository
	tokens *token.Manager
}

func NewUsecase(users user.Repository, tokens *token.Manager) *Usecase {
	return &Usecase{users: users, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserSummary struct {
	UserID string    `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserSummary, error) {
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrInvalidRole, err)
	}

	_, err = u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}

	return &UserSummary{UserID: usr.UserID, Name: usr.Name, Email: usr.Email, Role: usr.Role}, nil
}

func (u *Usecase) Login(ctx context.Context, email, pass string) (*Session, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !password.Verify(usr.PasswordHash, pass) {
		return nil, ErrInvalidCredentials
	}

	tok, exp, err := u.tokens.Generate(usr.UserID, string(usr.Role))
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     tok,
		ExpiresAt: exp,
		User:      UserSummary{UserID: usr.UserID, Name: usr.Name, Email: usr.Email, Role: usr.Role},
	}, nil
}

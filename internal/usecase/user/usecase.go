package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userDomain "loanbridge/internal/domain/user"
	"loanbridge/pkg/id"
	"loanbridge/pkg/password"

	"gorm.io/gorm"
)

type Usecase struct{ users userDomain.Repository }

func NewUsecase(users userDomain.Repository) *Usecase { return &Usecase{users: users} }

func (u *Usecase) Profile(ctx context.Context, actor userDomain.Actor) (*userDomain.User, error) {
	usr, err := u.users.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

// UpdateProfileInput uses pointers so only fields present in the request
// get written; role and email are never updatable through this path.
type UpdateProfileInput struct {
	Name             *string
	Phone            *string
	Address          *string
	NetSalary        *float64
	Employer         *string
	Occupation       *string
	EmploymentStatus *string
	EmployerAddress  *string
	EmployerPhone    *string
	DateOfBirth      *time.Time
	NationalID       *string
}

func (u *Usecase) UpdateProfile(ctx context.Context, actor userDomain.Actor, in UpdateProfileInput) (*userDomain.User, error) {
	usr, err := u.Profile(ctx, actor)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		usr.Name = *in.Name
	}
	if in.Phone != nil {
		usr.Phone = *in.Phone
	}
	if in.Address != nil {
		usr.Address = *in.Address
	}
	if in.NetSalary != nil {
		usr.NetSalary = in.NetSalary
	}
	if in.Employer != nil {
		usr.Employer = *in.Employer
	}
	if in.Occupation != nil {
		usr.Occupation = *in.Occupation
	}
	if in.EmploymentStatus != nil {
		usr.EmploymentStatus = *in.EmploymentStatus
	}
	if in.EmployerAddress != nil {
		usr.EmployerAddress = *in.EmployerAddress
	}
	if in.EmployerPhone != nil {
		usr.EmployerPhone = *in.EmployerPhone
	}
	if in.DateOfBirth != nil {
		usr.DateOfBirth = in.DateOfBirth
	}
	if in.NationalID != nil {
		usr.NationalID = *in.NationalID
	}

	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context) ([]userDomain.User, error) {
	return u.users.List(ctx)
}

type LenderDTO struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func (u *Usecase) Lenders(ctx context.Context) ([]LenderDTO, error) {
	lenders, err := u.users.ListByRole(ctx, userDomain.RoleLender)
	if err != nil {
		return nil, err
	}
	out := make([]LenderDTO, 0, len(lenders))
	for _, l := range lenders {
		out = append(out, LenderDTO{UserID: l.UserID, Name: l.Name, Email: l.Email})
	}
	return out, nil
}

type AdminCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (u *Usecase) AdminCreate(ctx context.Context, in AdminCreateInput) (*userDomain.User, error) {
	role, err := userDomain.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", userDomain.ErrInvalidRole, err)
	}

	_, err = u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, userDomain.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	usr := &userDomain.User{
		UserID:       id.NewID32(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

type AdminUpdateInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

func (u *Usecase) AdminUpdate(ctx context.Context, userID string, in AdminUpdateInput) (*userDomain.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		usr.Name = *in.Name
	}
	if in.Email != nil {
		usr.Email = *in.Email
	}
	if in.Role != nil {
		role, err := userDomain.ParseRole(*in.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", userDomain.ErrInvalidRole, err)
		}
		usr.Role = role
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = hash
	}

	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Delete is the admin-only hard removal; loan records keep their applicant
// snapshot so history is unaffected.
func (u *Usecase) Delete(ctx context.Context, userID string) error {
	err := u.users.Delete(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return userDomain.ErrNotFound
	}
	return err
}

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"loanbridge/internal/domain/user"
	"loanbridge/internal/testutil/usermock"
	"loanbridge/pkg/password"
	"loanbridge/pkg/token"
)

func testTokens() *token.Manager { return token.NewManager("test-secret", time.Hour) }

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()

	var created *user.User
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, testTokens())

	out, err := uc.Register(ctx, RegisterInput{
		Name: "Bea", Email: "bea@example.com", Password: "s3cret!", Role: "borrower",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created == nil {
		t.Fatalf("user not persisted")
	}
	if len(created.UserID) != 32 {
		t.Fatalf("bad user id %q", created.UserID)
	}
	if created.PasswordHash == "s3cret!" || created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if !password.Verify(created.PasswordHash, "s3cret!") {
		t.Fatalf("stored hash does not verify")
	}
	if out.Role != user.RoleBorrower || out.Email != "bea@example.com" {
		t.Fatalf("unexpected summary: %+v", out)
	}
}

func TestRegister_DefaultsToBorrower(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, testTokens())

	out, err := uc.Register(context.Background(), RegisterInput{
		Name: "NoRole", Email: "norole@example.com", Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if out.Role != user.RoleBorrower {
		t.Fatalf("empty role should default to borrower, got %s", out.Role)
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, testTokens())
	_, err := uc.Register(context.Background(), RegisterInput{
		Name: "X", Email: "x@example.com", Password: "pw123456", Role: "superuser",
	})
	if !errors.Is(err, user.ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole, got %v", err)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{UserID: "U-1", Email: email}, nil
		},
	}
	uc := NewUsecase(users, testTokens())

	_, err := uc.Register(context.Background(), RegisterInput{
		Name: "Dup", Email: "dup@example.com", Password: "pw123456", Role: "lender",
	})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := password.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return &user.User{
				UserID: "U-1", Name: "Bea", Email: email,
				PasswordHash: hash, Role: user.RoleBorrower,
			}, nil
		},
	}
	tokens := testTokens()
	uc := NewUsecase(users, tokens)

	sess, err := uc.Login(context.Background(), "bea@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token == "" || sess.ExpiresAt.Before(time.Now()) {
		t.Fatalf("bad session: %+v", sess)
	}
	claims, err := tokens.Parse(sess.Token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != "U-1" || claims.Role != "borrower" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	hash, _ := password.Hash("right")
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == "known@example.com" {
				return &user.User{UserID: "U-1", PasswordHash: hash, Role: user.RoleBorrower}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, testTokens())
	ctx := context.Background()

	// wrong password
	if _, err := uc.Login(ctx, "known@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	// unknown email reports the same error, not a 404
	if _, err := uc.Login(ctx, "nobody@example.com", "right"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

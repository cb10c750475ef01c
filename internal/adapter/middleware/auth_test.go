package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"loanbridge/internal/domain/user"
	"loanbridge/pkg/token"
)

func authEcho(tokens *token.Manager, roles ...user.Role) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	mws := []echo.MiddlewareFunc{Auth(tokens)}
	if len(roles) > 0 {
		mws = append(mws, RequireRoles(roles...))
	}
	e.GET("/whoami", func(c echo.Context) error {
		actor, _ := ActorFrom(c)
		return c.JSON(http.StatusOK, map[string]string{"user_id": actor.UserID, "role": string(actor.Role)})
	}, mws...)
	return e
}

func getWithToken(e *echo.Echo, raw string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if raw != "" {
		req.Header.Set(echo.HeaderAuthorization, raw)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	s, _, err := tokens.Generate("BR-1", "borrower")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rec := getWithToken(authEcho(tokens), "Bearer "+s)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["user_id"] != "BR-1" || body["role"] != "borrower" {
		t.Fatalf("actor not propagated: %+v", body)
	}
}

func TestAuth_MissingAndMalformedHeader(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	e := authEcho(tokens)

	for name, hdr := range map[string]string{
		"no header":      "",
		"wrong scheme":   "Basic abc123",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer not.a.jwt",
		"tampered token": "Bearer eyJhbGciOiJIUzI1NiJ9.e30.bad",
	} {
		rec := getWithToken(e, hdr)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: want 401, got %d", name, rec.Code)
		}
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := token.NewManager("test-secret", -time.Minute)
	s, _, err := tokens.Generate("BR-1", "borrower")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rec := getWithToken(authEcho(tokens), "Bearer "+s)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "token expired" {
		t.Fatalf("expiry should be reported distinctly: %+v", body)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer := token.NewManager("secret-a", time.Hour)
	verifier := token.NewManager("secret-b", time.Hour)
	s, _, _ := issuer.Generate("BR-1", "borrower")

	rec := getWithToken(authEcho(verifier), "Bearer "+s)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownRoleInToken(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	s, _, _ := tokens.Generate("BR-1", "superuser")

	rec := getWithToken(authEcho(tokens), "Bearer "+s)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("role outside the closed set: want 401, got %d", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	e := authEcho(tokens, user.RoleLender, user.RoleAdmin)

	lenderTok, _, _ := tokens.Generate("LD-1", "lender")
	if rec := getWithToken(e, "Bearer "+lenderTok); rec.Code != http.StatusOK {
		t.Fatalf("lender should pass: got %d", rec.Code)
	}

	adminTok, _, _ := tokens.Generate("AD-1", "admin")
	if rec := getWithToken(e, "Bearer "+adminTok); rec.Code != http.StatusOK {
		t.Fatalf("admin should pass: got %d", rec.Code)
	}

	borrowerTok, _, _ := tokens.Generate("BR-1", "borrower")
	if rec := getWithToken(e, "Bearer "+borrowerTok); rec.Code != http.StatusForbidden {
		t.Fatalf("borrower should be forbidden: got %d", rec.Code)
	}
}

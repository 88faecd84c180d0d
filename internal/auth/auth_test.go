package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("correct horse", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("battery staple", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestManagerIssueAndParse(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	actor := uuid.New()
	tenant := uuid.New()
	token, err := m.Issue(actor, RoleDoctor, tenant)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Role != RoleDoctor {
		t.Fatalf("role = %q", claims.Role)
	}
	gotActor, err := claims.Actor()
	if err != nil || gotActor != actor {
		t.Fatalf("actor = %s (%v), want %s", gotActor, err, actor)
	}
	gotTenant, err := claims.Tenant()
	if err != nil || gotTenant != tenant {
		t.Fatalf("tenant = %s (%v), want %s", gotTenant, err, tenant)
	}
}

func TestManagerRejectsForeignSignature(t *testing.T) {
	m1, _ := NewManager("secret-one", time.Hour)
	m2, _ := NewManager("secret-two", time.Hour)

	token, err := m1.Issue(uuid.New(), RoleAdmin, uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestManagerRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("secret", time.Nanosecond)

	token, err := m.Issue(uuid.New(), RoleAdmin, uuid.New())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("", time.Hour); !errors.Is(err, ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
}

func TestMiddlewareAndRoles(t *testing.T) {
	m, _ := NewManager("secret", time.Hour)
	tenant := uuid.New()

	e := echo.New()
	protected := func(c echo.Context) error {
		got, err := TenantID(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, got.String())
	}
	e.GET("/admin", protected, Middleware(m), RequireRole(RoleAdmin))

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status %d, want 401", rec.Code)
	}
	if rec := do("Bearer not-a-token"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d, want 401", rec.Code)
	}

	doctorToken, _ := m.Issue(uuid.New(), RoleDoctor, tenant)
	if rec := do("Bearer " + doctorToken); rec.Code != http.StatusForbidden {
		t.Fatalf("doctor on admin route: status %d, want 403", rec.Code)
	}

	adminToken, _ := m.Issue(uuid.New(), RoleAdmin, tenant)
	rec := do("Bearer " + adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: status %d, want 200", rec.Code)
	}
	if rec.Body.String() != tenant.String() {
		t.Fatalf("tenant = %q, want %q", rec.Body.String(), tenant)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/repository"
)

func newIdentityFixture(t *testing.T) (*fixture, *IdentityService, *auth.Manager) {
	t.Helper()
	f := newFixture(t)
	tokens, err := auth.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	identity := NewIdentityService(
		repository.NewGormHospitalRepository(f.db),
		repository.NewGormDoctorRepository(f.db),
		tokens,
	)
	return f, identity, tokens
}

func TestRegisterAndLoginAdmin(t *testing.T) {
	_, identity, tokens := newIdentityFixture(t)
	ctx := context.Background()

	h, err := identity.RegisterHospital(ctx, "St. Luke's", "Grace", "grace@stlukes.test", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if h.PasswordHash == "s3cret" {
		t.Fatal("password must be stored hashed")
	}

	token, got, err := identity.LoginAdmin(ctx, "grace@stlukes.test", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != h.ID {
		t.Fatalf("logged into hospital %s, want %s", got.ID, h.ID)
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != auth.RoleAdmin {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
	tenant, err := claims.Tenant()
	if err != nil {
		t.Fatalf("tenant: %v", err)
	}
	if tenant != h.ID {
		t.Fatalf("tenant = %s, want %s", tenant, h.ID)
	}
}

func TestLoginAdminRejectsBadCredentials(t *testing.T) {
	_, identity, _ := newIdentityFixture(t)
	ctx := context.Background()

	if _, err := identity.RegisterHospital(ctx, "St. Luke's", "Grace", "grace@stlukes.test", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := identity.LoginAdmin(ctx, "grace@stlukes.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := identity.LoginAdmin(ctx, "nobody@stlukes.test", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, identity, _ := newIdentityFixture(t)
	ctx := context.Background()

	if _, err := identity.RegisterHospital(ctx, "First", "A", "dup@hospital.test", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := identity.RegisterHospital(ctx, "Second", "B", "dup@hospital.test", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestDoctorCredentialsAndLogin(t *testing.T) {
	f, identity, tokens := newIdentityFixture(t)
	ctx := context.Background()

	if err := identity.SetDoctorCredentials(ctx, f.hospital.ID, f.doctor.ID, "dr.mensah", "rounds"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}

	token, d, err := identity.LoginDoctor(ctx, "dr.mensah", "rounds")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if d.ID != f.doctor.ID {
		t.Fatalf("logged in as %s, want %s", d.ID, f.doctor.ID)
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != auth.RoleDoctor {
		t.Fatalf("role = %q, want doctor", claims.Role)
	}
	tenant, err := claims.Tenant()
	if err != nil {
		t.Fatalf("tenant: %v", err)
	}
	if tenant != f.hospital.ID {
		t.Fatalf("tenant = %s, want the doctor's hospital", tenant)
	}

	if _, _, err := identity.LoginDoctor(ctx, "dr.mensah", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDoctorWithoutCredentialsCannotLogin(t *testing.T) {
	_, identity, _ := newIdentityFixture(t)

	if _, _, err := identity.LoginDoctor(context.Background(), "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	userdomain "github.com/smallbiznis/familia/internal/user/domain"
	"github.com/smallbiznis/familia/pkg/db"
	"go.uber.org/zap"
)

func newLocalProvider(t *testing.T) *LocalProvider {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := conn.AutoMigrate(&userdomain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewLocal(conn, zap.NewNop())
}

func TestLocalSignUpMintsIdentity(t *testing.T) {
	p := newLocalProvider(t)

	ident, err := p.SignUp(context.Background(), "jane@example.com", "s3cret!pass")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if ident.Email != "jane@example.com" {
		t.Fatalf("email = %q", ident.Email)
	}
	if _, err := uuid.Parse(ident.UserID); err != nil {
		t.Fatalf("user id %q is not a uuid: %v", ident.UserID, err)
	}
}

func TestLocalSignUpRejectsDuplicateEmail(t *testing.T) {
	p := newLocalProvider(t)

	if _, err := p.SignUp(context.Background(), "jane@example.com", "s3cret!pass"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, err := p.SignUp(context.Background(), "jane@example.com", "another-pass"); err != ErrSignUpFailed {
		t.Fatalf("second SignUp err = %v, want ErrSignUpFailed", err)
	}
}

func TestLocalSignUpRequiresCredentials(t *testing.T) {
	p := newLocalProvider(t)

	if _, err := p.SignUp(context.Background(), "", "s3cret!pass"); err != ErrSignUpFailed {
		t.Fatalf("empty email err = %v, want ErrSignUpFailed", err)
	}
	if _, err := p.SignUp(context.Background(), "jane@example.com", ""); err != ErrSignUpFailed {
		t.Fatalf("empty password err = %v, want ErrSignUpFailed", err)
	}
}

func TestLocalVerifyToken(t *testing.T) {
	p := newLocalProvider(t)

	minted, err := p.SignUp(context.Background(), "jane@example.com", "s3cret!pass")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	ident, err := p.VerifyToken(context.Background(), minted.UserID)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if ident.UserID != minted.UserID {
		t.Fatalf("user id = %q, want %q", ident.UserID, minted.UserID)
	}
}

func TestLocalVerifyTokenRejectsGarbage(t *testing.T) {
	p := newLocalProvider(t)

	if _, err := p.VerifyToken(context.Background(), "not-a-uuid"); err != ErrInvalidToken {
		t.Fatalf("garbage token err = %v, want ErrInvalidToken", err)
	}
	if _, err := p.VerifyToken(context.Background(), uuid.NewString()); err != ErrInvalidToken {
		t.Fatalf("unknown token err = %v, want ErrInvalidToken", err)
	}
}

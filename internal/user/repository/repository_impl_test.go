package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/familia/internal/user/domain"
	"github.com/smallbiznis/familia/pkg/db"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) domain.Repository {
	t.Helper()

	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.User{}, &domain.UserProfile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	return New(conn, zap.NewNop(), node)
}

func TestFindByEmailAbsent(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected no error for absent user, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestSaveProfileAssignsIDAndSerial(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.NewString()

	profile, err := repo.SaveProfile(context.Background(), &domain.UserProfile{
		Name:      "Ann",
		Surname:   "Lee",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:    userID,
	})
	if err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}
	if profile.ID == 0 {
		t.Fatal("expected profile id to be assigned")
	}
	if profile.Serial == "" {
		t.Fatal("expected profile serial to be assigned")
	}
	if _, err := ulid.Parse(profile.Serial); err != nil {
		t.Fatalf("expected serial ULID, got %v", err)
	}

	found, err := repo.FindProfileByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("failed to find profile: %v", err)
	}
	if found == nil {
		t.Fatal("expected profile")
	}
	if found.ID != profile.ID {
		t.Fatalf("expected profile id %d, got %d", profile.ID, found.ID)
	}
}

func TestFindProfileByUserIDAbsent(t *testing.T) {
	repo := newTestRepo(t)

	profile, err := repo.FindProfileByUserID(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("expected no error for absent profile, got %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}
}

func TestSaveProfileEnforcesUniqueUser(t *testing.T) {
	repo := newTestRepo(t)
	userID := uuid.NewString()

	first := &domain.UserProfile{
		Name:      "Ann",
		Surname:   "Lee",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:    userID,
	}
	if _, err := repo.SaveProfile(context.Background(), first); err != nil {
		t.Fatalf("failed to save first profile: %v", err)
	}

	second := &domain.UserProfile{
		Name:      "Ann",
		Surname:   "Lee",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:    userID,
	}
	if _, err := repo.SaveProfile(context.Background(), second); err == nil {
		t.Fatal("expected unique constraint failure for second profile")
	}
}

func TestFindByEmailPresent(t *testing.T) {
	conn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := conn.AutoMigrate(&domain.User{}, &domain.UserProfile{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}
	repo := New(conn, zap.NewNop(), node)

	seeded := domain.NewUser(uuid.NewString(), "ann@example.com")
	if err := conn.Create(seeded).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	found, err := repo.FindByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("failed to find user: %v", err)
	}
	if found == nil {
		t.Fatal("expected user")
	}
	if found.ID != seeded.ID {
		t.Fatalf("expected user id %s, got %s", seeded.ID, found.ID)
	}
	if found.IsSuperAdmin {
		t.Fatal("expected is_super_admin false")
	}
	if found.EmailConfirmedAt != nil {
		t.Fatal("expected email_confirmed_at nil")
	}
}

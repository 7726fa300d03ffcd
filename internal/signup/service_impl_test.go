package signup

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/familia/internal/providers/identity"
	"github.com/smallbiznis/familia/internal/signup/domain"
	userdomain "github.com/smallbiznis/familia/internal/user/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepository struct {
	userByEmail  *userdomain.User
	profile      *userdomain.UserProfile
	findErr      error
	saveErr      error
	savedProfile *userdomain.UserProfile
	saveCalls    int
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	_ = ctx
	_ = email
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.userByEmail, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*userdomain.User, error) {
	_ = ctx
	_ = id
	return f.userByEmail, nil
}

func (f *fakeRepository) FindProfileByUserID(ctx context.Context, userID string) (*userdomain.UserProfile, error) {
	_ = ctx
	_ = userID
	return f.profile, nil
}

func (f *fakeRepository) SaveProfile(ctx context.Context, profile *userdomain.UserProfile) (*userdomain.UserProfile, error) {
	_ = ctx
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	saved := *profile
	saved.ID = 42
	saved.Serial = "01JC5H0A9S3QZK8M2W4Y6E7R0T"
	f.savedProfile = &saved
	return &saved, nil
}

type fakeProvider struct {
	identity    *identity.Identity
	err         error
	signUpCalls int
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) (*identity.Identity, error) {
	_ = ctx
	_ = password
	f.signUpCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.identity != nil {
		return f.identity, nil
	}
	return &identity.Identity{UserID: uuid.NewString(), Email: email}, nil
}

func (f *fakeProvider) VerifyToken(ctx context.Context, token string) (*identity.Identity, error) {
	_ = ctx
	_ = token
	return nil, identity.ErrInvalidToken
}

func newTestService(repo *fakeRepository, provider *fakeProvider) domain.Service {
	return NewService(Params{
		Log:      zap.NewNop(),
		Users:    repo,
		Identity: provider,
	})
}

func testRequest() domain.Request {
	return domain.Request{
		Email:     "ann@example.com",
		Password:  "correct-horse",
		Name:      "Ann",
		Surname:   "Lee",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSignupFreshUser(t *testing.T) {
	repo := &fakeRepository{}
	provider := &fakeProvider{}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.False(t, body.IsError())
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, "User created successfully", body.Message)
	assert.Equal(t, 1, provider.signUpCalls)
	assert.Equal(t, 1, repo.saveCalls)

	user, ok := body.Data.(*userdomain.User)
	require.True(t, ok)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.False(t, user.IsSuperAdmin)
	assert.Nil(t, user.EmailConfirmedAt)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Ann", user.Profile.Name)
	assert.Equal(t, "Lee", user.Profile.Surname)
	assert.NotZero(t, user.Profile.ID)
	assert.NotEmpty(t, user.Profile.Serial)
	assert.Equal(t, user.ID, user.Profile.UserID)
}

func TestSignupRecoversPartialSignup(t *testing.T) {
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	existing := &userdomain.User{
		ID:               uuid.NewString(),
		Email:            "ann@example.com",
		IsSuperAdmin:     true,
		EmailConfirmedAt: &confirmedAt,
	}
	repo := &fakeRepository{userByEmail: existing}
	provider := &fakeProvider{}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.False(t, body.IsError())
	assert.Equal(t, http.StatusCreated, body.StatusCode)
	assert.Equal(t, "User created successfully", body.Message)

	// The remote identity already exists, so the provider must not be
	// called again.
	assert.Zero(t, provider.signUpCalls)
	assert.Equal(t, 1, repo.saveCalls)

	user, ok := body.Data.(*userdomain.User)
	require.True(t, ok)
	assert.True(t, user.IsSuperAdmin)
	require.NotNil(t, user.EmailConfirmedAt)
	assert.True(t, confirmedAt.Equal(*user.EmailConfirmedAt))
	require.NotNil(t, user.Profile)
	assert.Equal(t, existing.ID, user.Profile.UserID)
}

func TestSignupRejectsDuplicate(t *testing.T) {
	existing := &userdomain.User{
		ID:    uuid.NewString(),
		Email: "ann@example.com",
	}
	repo := &fakeRepository{
		userByEmail: existing,
		profile: &userdomain.UserProfile{
			ID:     7,
			Name:   "Ann",
			UserID: existing.ID,
		},
	}
	provider := &fakeProvider{}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.True(t, body.IsError())
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Equal(t, "It was not possible to create the user", body.Message)
	assert.Equal(t, domain.CodeDuplicateUser, body.Code)
	require.NotNil(t, body.Details)
	assert.Equal(t, "BILL-201", body.Details.Code)

	// A duplicate must not touch the provider or write anything.
	assert.Zero(t, provider.signUpCalls)
	assert.Zero(t, repo.saveCalls)
}

func TestSignupIdentityProviderFailure(t *testing.T) {
	repo := &fakeRepository{}
	provider := &fakeProvider{err: identity.ErrSignUpFailed}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.True(t, body.IsError())
	assert.Equal(t, http.StatusBadGateway, body.StatusCode)
	assert.Equal(t, domain.CodeIdentityProvider, body.Code)
	assert.Equal(t, "could not create user", body.Message)
	assert.Zero(t, repo.saveCalls)
}

func TestSignupStorageFailureOnLookup(t *testing.T) {
	repo := &fakeRepository{findErr: userdomain.ErrStorage}
	provider := &fakeProvider{}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.True(t, body.IsError())
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.Equal(t, domain.CodeStorage, body.Code)
	assert.Zero(t, provider.signUpCalls)
}

func TestSignupStorageFailureOnSaveProfile(t *testing.T) {
	repo := &fakeRepository{saveErr: userdomain.ErrStorage}
	provider := &fakeProvider{}
	svc := newTestService(repo, provider)

	body := svc.Signup(context.Background(), testRequest())

	require.True(t, body.IsError())
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.Equal(t, domain.CodeStorage, body.Code)
	// The remote identity was created; a retry recovers it (no rollback).
	assert.Equal(t, 1, provider.signUpCalls)
}

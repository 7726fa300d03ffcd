package signup

import (
	"context"
	"net/http"

	obsmetrics "github.com/smallbiznis/familia/internal/observability/metrics"
	"github.com/smallbiznis/familia/internal/providers/identity"
	"github.com/smallbiznis/familia/internal/signup/domain"
	userdomain "github.com/smallbiznis/familia/internal/user/domain"
	"github.com/smallbiznis/familia/pkg/response"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	msgUserCreated     = "User created successfully"
	msgDuplicateSignup = "It was not possible to create the user"
	msgIdentityFailed  = "could not create user"
	msgStorageFailed   = "internal server error"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Users    userdomain.Repository
	Identity identity.Provider
	Metrics  *obsmetrics.Metrics `optional:"true"`
}

type service struct {
	log      *zap.Logger
	users    userdomain.Repository
	identity identity.Provider
	metrics  *obsmetrics.Metrics
}

func NewService(p Params) domain.Service {
	return &service{
		log:      p.Log.Named("signup.service"),
		users:    p.Users,
		identity: p.Identity,
		metrics:  p.Metrics,
	}
}

// Signup reconciles a signup request against the local identity and
// profile records. Local state is authoritative: the identity provider
// is only called when no local user exists for the email, so a retried
// signup after a crash between identity creation and profile creation
// completes the profile instead of minting a duplicate identity. A
// signup for an email whose user already has a profile is rejected.
func (s *service) Signup(ctx context.Context, req domain.Request) response.Body {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.metrics.RecordSignupAttempt(ctx, "storage_error")
		return response.BuildError(http.StatusInternalServerError, domain.CodeStorage, msgStorageFailed, nil)
	}

	if user == nil {
		ident, err := s.identity.SignUp(ctx, req.Email, req.Password)
		if err != nil {
			s.log.Warn("identity provider rejected signup", zap.Error(err))
			s.metrics.RecordSignupAttempt(ctx, "identity_error")
			return response.BuildError(http.StatusBadGateway, domain.CodeIdentityProvider, msgIdentityFailed, nil)
		}
		user = userdomain.NewUser(ident.UserID, ident.Email)
	} else {
		profile, err := s.users.FindProfileByUserID(ctx, user.ID)
		if err != nil {
			s.metrics.RecordSignupAttempt(ctx, "storage_error")
			return response.BuildError(http.StatusInternalServerError, domain.CodeStorage, msgStorageFailed, nil)
		}
		if profile != nil {
			s.log.Info("duplicate signup rejected", zap.String("user_id", user.ID))
			s.metrics.RecordSignupDuplicate(ctx)
			s.metrics.RecordSignupAttempt(ctx, "duplicate")
			return response.BuildError(http.StatusBadRequest, domain.CodeDuplicateUser, msgDuplicateSignup,
				&response.Details{Code: domain.DetailDuplicateUser})
		}
		// Identity exists without a profile: a previous attempt crashed
		// after the remote identity was created. Finish it.
		s.log.Info("recovering partial signup", zap.String("user_id", user.ID))
		s.metrics.RecordSignupRecovered(ctx)
	}

	profile, err := s.users.SaveProfile(ctx, &userdomain.UserProfile{
		Name:      req.Name,
		Surname:   req.Surname,
		BirthDate: req.BirthDate,
		UserID:    user.ID,
	})
	if err != nil {
		s.metrics.RecordSignupAttempt(ctx, "storage_error")
		return response.BuildError(http.StatusInternalServerError, domain.CodeStorage, msgStorageFailed, nil)
	}
	user.Profile = profile

	s.metrics.RecordSignupAttempt(ctx, "created")
	return response.Build(user, http.StatusCreated, msgUserCreated)
}

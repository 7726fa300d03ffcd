package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config configures the GoTrue adapter.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GoTrueProvider talks to a GoTrue-compatible identity service. The
// service owns the users table this application reads, so a successful
// signup here is what makes the local row appear.
type GoTrueProvider struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

func NewGoTrue(cfg Config, log *zap.Logger) *GoTrueProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &GoTrueProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log.Named("identity.gotrue"),
	}
}

type signupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Some deployments nest the account under "user".
	User *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (p *GoTrueProvider) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	body, err := json.Marshal(signupPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/signup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error("signup request", zap.Error(err))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		p.log.Error("signup rejected", zap.Int("status", resp.StatusCode))
		return nil, ErrUnavailable
	case resp.StatusCode >= http.StatusBadRequest:
		p.log.Warn("signup rejected", zap.Int("status", resp.StatusCode))
		return nil, ErrSignUpFailed
	}

	var out signupResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode signup response: %w", err)
	}
	if out.User != nil {
		out.ID = out.User.ID
		out.Email = out.User.Email
	}
	if out.ID == "" {
		return nil, ErrSignUpFailed
	}

	return &Identity{UserID: out.ID, Email: out.Email}, nil
}

func (p *GoTrueProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", p.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error("verify token request", zap.Error(err))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, ErrUnavailable
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, ErrInvalidToken
	}

	var out signupResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if out.ID == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: out.ID, Email: out.Email}, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flight-booking/flight-booking-gateway/internal/domain"
	"github.com/flight-booking/flight-booking-gateway/internal/session"
)

// AuthUseCase proxies account operations to the provider and keeps the issued
// token and user record in the session store under the "token" and "user" keys.
type AuthUseCase interface {
	// Signup creates a provider account.
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)

	// Signin exchanges credentials for a token and stores both token and user
	// in the session.
	Signin(ctx context.Context, sessionID string, creds domain.Credentials) (*domain.AuthSession, error)

	// ResolveToken returns the token to attach to upstream calls: the caller's
	// own bearer token when present, otherwise the session's stored token,
	// otherwise "".
	ResolveToken(ctx context.Context, sessionID, headerToken string) string
}

// authUseCase implements AuthUseCase.
type authUseCase struct {
	gateway domain.ProviderGateway
	store   session.Store
}

// NewAuthUseCase creates an AuthUseCase.
func NewAuthUseCase(gateway domain.ProviderGateway, store session.Store) AuthUseCase {
	return &authUseCase{
		gateway: gateway,
		store:   store,
	}
}

// Signup implements AuthUseCase.
func (uc *authUseCase) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidRequest)
	}

	return uc.gateway.Signup(ctx, req)
}

// Signin implements AuthUseCase.
func (uc *authUseCase) Signin(ctx context.Context, sessionID string, creds domain.Credentials) (*domain.AuthSession, error) {
	if strings.TrimSpace(creds.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	if creds.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidRequest)
	}

	auth, err := uc.gateway.Signin(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Set(ctx, sessionID, session.KeyToken, auth.Token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	if err := uc.store.Set(ctx, sessionID, session.KeyUser, auth.User); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	return auth, nil
}

// ResolveToken implements AuthUseCase.
func (uc *authUseCase) ResolveToken(ctx context.Context, sessionID, headerToken string) string {
	if headerToken != "" {
		return headerToken
	}

	var token string
	if err := uc.store.Get(ctx, sessionID, session.KeyToken, &token); err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			// A broken session read degrades to an unauthenticated call.
			return ""
		}
		return ""
	}
	return token
}

// Ensure authUseCase implements AuthUseCase at compile time.
var _ AuthUseCase = (*authUseCase)(nil)

package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
	"github.com/mahabubulhasibshawon/dairy-admin/pkg/auth"
)

const loginPath = "/admin/login"

// AuthService opens and closes operator sessions. The API bearer token lives
// only in the token store; the operator holds a signed session token.
type AuthService struct {
	api    ports.BackendPort
	tokens ports.TokenStorePort
	signer *auth.Signer
	logger *zap.Logger
}

func NewAuthService(api ports.BackendPort, tokens ports.TokenStorePort, signer *auth.Signer, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, tokens: tokens, signer: signer, logger: logger}
}

// SessionTTL is how long a login stays valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.signer.TTL()
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Operator, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidCredentials)
	}
	var resp loginResponse
	err := s.api.Post(ctx, loginPath, map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, fmt.Errorf("%w: login returned no token", domain.ErrRequestFailed)
	}

	op := &domain.Operator{SessionID: uuid.NewString(), Username: username}
	if err := s.tokens.SetToken(ctx, op.SessionID, resp.Token, s.signer.TTL()); err != nil {
		return "", nil, fmt.Errorf("store token: %w", err)
	}
	token, err := s.signer.GenerateToken(username, op.SessionID)
	if err != nil {
		return "", nil, err
	}
	s.logger.Info("operator logged in", zap.String("operator", username), zap.String("session", op.SessionID))
	return token, op, nil
}

// Logout forgets the session's API token. Logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return errors.New("session not found in context")
	}
	if err := s.tokens.DeleteToken(ctx, session.ID); err != nil {
		return err
	}
	s.logger.Info("operator logged out", zap.String("operator", session.Username), zap.String("session", session.ID))
	return nil
}

// Authenticate checks a session token and that its API token is still held.
func (s *AuthService) Authenticate(ctx context.Context, sessionToken string) (auth.Session, error) {
	claims, err := s.signer.ValidateToken(sessionToken)
	if err != nil {
		return auth.Session{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if _, err := s.tokens.GetToken(ctx, claims.SessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Session{}, fmt.Errorf("%w: session ended", domain.ErrUnauthorized)
		}
		return auth.Session{}, err
	}
	return auth.Session{ID: claims.SessionID, Username: claims.Username}, nil
}

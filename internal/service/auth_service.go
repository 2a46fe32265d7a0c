package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sefazor/geradores-backend/internal/models"
	"github.com/sefazor/geradores-backend/internal/repository"
	bcryptPkg "github.com/sefazor/geradores-backend/pkg/bcrypt"
	jwtPkg "github.com/sefazor/geradores-backend/pkg/jwt"
	"go.uber.org/zap"
)

const tokenTypeBearer = "bearer"

type AuthService struct {
	userRepo UserStore
	hasher   PasswordHasher
	tokens   TokenIssuer
	log      *zap.Logger

	// compared against when the email is unknown so both failure paths
	// pay the same bcrypt cost
	dummyHash string
}

func NewAuthService(userRepo UserStore, hasher PasswordHasher, tokens TokenIssuer, log *zap.Logger) *AuthService {
	dummyHash, err := hasher.HashPassword("geradores-dummy-password")
	if err != nil {
		log.Warn("failed to prepare dummy password hash", zap.Error(err))
	}
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		log:       log,
		dummyHash: dummyHash,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. The existence check is an early exit; the unique
// index on email decides concurrent registrations.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcryptPkg.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Authenticate returns ErrAuthenticationFailed for an unknown email and for
// a wrong password alike.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if s.dummyHash != "" {
				_, _ = s.hasher.ComparePassword(s.dummyHash, password)
			}
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	ok, err := s.hasher.ComparePassword(user.PasswordHash, password)
	if err != nil {
		s.log.Error("stored password hash is malformed", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, ErrAuthenticationFailed
	}
	if !ok {
		return nil, ErrAuthenticationFailed
	}

	return user, nil
}

// Login authenticates and mints a bearer token bound to the user's email.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, _, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// CurrentUser resolves a bearer token to its user.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, jwtPkg.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

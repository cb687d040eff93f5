package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt and signs HS256 session tokens.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	// verifyPassword is utils.VerifyPassword outside of tests.
	verifyPassword func(password, hash string) bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// An empty cfg.TokenSignKey is refused with ErrTokenSignKeyIsNotSpecified;
// there is no fallback key. Missing issuer and duration take the config
// package defaults.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyIsNotSpecified
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = config.DefaultTokenIssuer
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = config.DefaultTokenDuration
	}

	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		verifyPassword: utils.VerifyPassword,
		logger:         logger,
	}, nil
}

// Register creates a new CLIENT account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if email, password or name is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" || req.Name == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         models.RoleClient,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Authenticate looks the account up by lower-cased email and verifies the
// password against the stored bcrypt hash.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrWrongCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		// same bcrypt work as a wrong password
		a.verifyPassword(password, utils.DummyPasswordHash())
		log.Info().Str("email", email).Msg("login attempt for unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.verifyPassword(password, user.PasswordHash) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// CreateToken issues a signed session token for user.
func (a *authService) CreateToken(ctx context.Context, user models.AuthUser) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string. Low-level JWT errors are
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

func (a *authService) ResolveIdentity(ctx context.Context, tokenString string) (models.AuthUser, error) {
	claims, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.AuthUser{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Info().Str("user_id", claims.UserID).Msg("token refers to a deleted user")
		return models.AuthUser{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", claims.UserID).Msg("identity lookup failed")
		return models.AuthUser{}, fmt.Errorf("identity lookup failed: %w", err)
	}

	return user.AuthUser(), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/store"
	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

// authService is the credential store. Passwords are bcrypt hashed, recovery
// tokens are single use and every password write goes through
// UpdateCredentials so the hash, the must-change flag and the token change
// atomically.
type authService struct {
	users      store.UserRepository
	partitions store.Partitioner

	hashCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	adminEmail    string
	adminPassword string
	adminName     string

	// newRecoveryToken is replaced in tests.
	newRecoveryToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService wires the credential store to its repositories and the
// security parameters of cfg.
func NewAuthService(users store.UserRepository, partitions store.Partitioner, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:            users,
		partitions:       partitions,
		hashCost:         cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		adminEmail:       normalizeEmail(cfg.AdminEmail),
		adminPassword:    cfg.AdminPassword,
		adminName:        cfg.AdminName,
		newRecoveryToken: utils.NewRecoveryToken,
		logger:           logger,
	}
}

// Register creates a normal account with a fresh recovery token and
// provisions its case partition. The token is returned only here.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to hash password")
		return models.RegisterResponse{}, err
	}

	token, err := a.newRecoveryToken()
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("failed to generate recovery token")
		return models.RegisterResponse{}, err
	}

	user, err := a.users.CreateUser(ctx, models.User{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         normalizeEmail(req.Email),
		PasswordHash:  hash,
		RecoveryToken: token,
		Role:          models.RoleNormal,
	})
	if err != nil {
		return models.RegisterResponse{}, mapStoreError(err)
	}

	// the partition is also provisioned lazily on first access, so a failure
	// here does not undo the registration
	if err = a.partitions.Ensure(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "*authService.Register").Int64("user_id", user.UserID).Msg("failed to provision partition")
	}

	log.Info().Str("func", "*authService.Register").Int64("user_id", user.UserID).Msg("user registered")
	return models.RegisterResponse{User: user, RecoveryToken: token}, nil
}

// Authenticate checks email and password. Unknown email and wrong password
// both yield ErrInvalidCredentials.
func (a *authService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("func", "*authService.Authenticate").Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		log.Warn().Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if err = a.partitions.Ensure(ctx, user.UserID); err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("failed to provision partition")
	}

	return user, nil
}

// ChangePassword rehashes the password of userID and clears the must-change
// flag. The recovery token is kept.
func (a *authService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if userID <= 0 {
		return ErrUnauthorized
	}

	log := logger.FromContext(ctx)

	if _, err := a.users.FindUserByID(ctx, userID); err != nil {
		return mapStoreError(err)
	}

	hash, err := utils.HashPassword(req.NewPassword, a.hashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", userID).Msg("failed to hash password")
		return err
	}

	if err = a.users.UpdateCredentials(ctx, models.CredentialsUpdate{UserID: userID, PasswordHash: hash}); err != nil {
		return mapStoreError(err)
	}

	log.Info().Str("func", "*authService.ChangePassword").Int64("user_id", userID).Msg("password changed")
	return nil
}

// ResetWithToken sets a new password when token matches the stored recovery
// token exactly, then rotates the token and returns the new one.
func (a *authService) ResetWithToken(ctx context.Context, req models.ResetPasswordRequest) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return "", ErrUnknownEmail
	}
	if err != nil {
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	if user.RecoveryToken == "" ||
		subtle.ConstantTimeCompare([]byte(user.RecoveryToken), []byte(req.RecoveryToken)) != 1 {
		log.Warn().Str("func", "*authService.ResetWithToken").Int64("user_id", user.UserID).Msg("recovery token mismatch")
		return "", ErrInvalidToken
	}

	return a.resetPassword(ctx, user.UserID, req.NewPassword, false, &user.RecoveryToken)
}

// AdminForceReset sets a temporary password on a normal account, forces a
// password change on its next login and rotates its recovery token.
func (a *authService) AdminForceReset(ctx context.Context, actor models.Identity, userID int64, req models.ForceResetRequest) (string, error) {
	if !actor.IsAdmin() {
		return "", ErrForbidden
	}

	target, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return "", mapStoreError(err)
	}
	if target.IsAdmin() {
		return "", invalidArgument(errors.New("admin accounts cannot be force reset"))
	}

	token, err := a.resetPassword(ctx, userID, req.TemporaryPassword, true, nil)
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*authService.AdminForceReset").
		Int64("admin_id", actor.UserID).
		Int64("user_id", userID).
		Msg("password force reset")
	return token, nil
}

// resetPassword writes a new hash and rotates the recovery token. A non-nil
// expected token must still be the stored one when the write lands.
func (a *authService) resetPassword(ctx context.Context, userID int64, password string, mustChange bool, expected *string) (string, error) {
	hash, err := utils.HashPassword(password, a.hashCost)
	if err != nil {
		return "", err
	}

	token, err := a.newRecoveryToken()
	if err != nil {
		return "", err
	}

	err = a.users.UpdateCredentials(ctx, models.CredentialsUpdate{
		UserID:                userID,
		PasswordHash:          hash,
		MustChangePassword:    mustChange,
		RecoveryToken:         &token,
		ExpectedRecoveryToken: expected,
	})
	if errors.Is(err, store.ErrRecoveryTokenChanged) {
		logger.FromContext(ctx).Warn().Str("func", "*authService.resetPassword").Int64("user_id", userID).Msg("recovery token already used")
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", mapStoreError(err)
	}

	return token, nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrUnauthorized
	}
	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

func (a *authService) ListUsers(ctx context.Context, actor models.Identity) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return a.users.ListUsers(ctx)
}

// EnsureAdmin creates the configured admin account when its email is not
// registered yet. It is safe to call on every start.
func (a *authService) EnsureAdmin(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	admin, err := a.users.FindUserByEmail(ctx, a.adminEmail)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(a.adminPassword, a.hashCost)
	if err != nil {
		return models.User{}, err
	}
	token, err := a.newRecoveryToken()
	if err != nil {
		return models.User{}, err
	}

	firstName, lastName, _ := strings.Cut(strings.TrimSpace(a.adminName), " ")
	admin, err = a.users.CreateUser(ctx, models.User{
		FirstName:     firstName,
		LastName:      strings.TrimSpace(lastName),
		Email:         a.adminEmail,
		PasswordHash:  hash,
		RecoveryToken: token,
		Role:          models.RoleAdmin,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// another instance seeded it first
		return a.users.FindUserByEmail(ctx, a.adminEmail)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("admin creation failed: %w", err)
	}

	log.Info().Str("func", "*authService.EnsureAdmin").Int64("user_id", admin.UserID).Msg("admin account created")
	return admin, nil
}

// CreateToken issues a signed session JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Every validation failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Identify resolves a session token to the current identity of its user.
// Role and the must-change flag are read from the store, not the token.
func (a *authService) Identify(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.users.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Identity{}, ErrUnauthorized
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.IdentityOf(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package auth is the sole authority for turning credentials into
// authenticated identity and for mutating user records in ways that affect
// authentication state.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayvico/ams-api/internal/application/audit"
	"github.com/jayvico/ams-api/internal/application/dto"
	"github.com/jayvico/ams-api/internal/domain"
	"github.com/jayvico/ams-api/internal/domain/entity"
	"github.com/jayvico/ams-api/internal/domain/repository"
	"github.com/jayvico/ams-api/internal/obs"
	pkgjwt "github.com/jayvico/ams-api/pkg/jwt"
	"github.com/jayvico/ams-api/pkg/logger"
)

// bcryptCost matches the hashing policy of the rest of the fleet tooling.
const bcryptCost = 12

const tempPasswordLength = 12

// TokenConfig signing policy for issued tokens.
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Issuer     string
}

// UseCase implements the authentication operations: login, registration,
// token refresh, profile self-service and the admin user management surface.
type UseCase struct {
	users    repository.UserRepository
	recorder *audit.Recorder
	tokens   TokenConfig
	log      *logger.Logger
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, recorder *audit.Recorder, tokens TokenConfig, log *logger.Logger) *UseCase {
	return &UseCase{users: users, recorder: recorder, tokens: tokens, log: log}
}

// Authenticate resolves email+password to a user. Unknown email, inactive
// account and wrong password all collapse into ErrInvalidCredentials so the
// response never discloses whether an email is registered.
func (uc *UseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		uc.log.Info().Str("user_id", user.ID).Msg("login rejected: account inactive")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// Not worth failing a valid login over a timestamp.
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("last login stamp failed")
	}
	now := time.Now().UTC()
	user.LastLoginAt = &now
	return user, nil
}

// Login authenticates and issues an access + refresh token pair.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest, cc audit.ClientContext) (*dto.AuthResponse, error) {
	user, err := uc.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			obs.LoginFailure()
			uc.recorder.Record(audit.LoginFailedEvent(in.Email, cc))
		}
		return nil, err
	}

	access, refresh, err := uc.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	obs.LoginSuccess()
	uc.recorder.Record(audit.LoginEvent(user.ID, cc))

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Register creates a user from self-registration. The email uniqueness check
// is the store's unique index: a losing concurrent insert comes back as
// ErrEmailAlreadyExists, with no read-then-write window.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest, cc audit.ClientContext) (*dto.AuthResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	access, refresh, err := uc.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	uc.recorder.Record(audit.RegisterEvent(user.ID, user.Email, user.Role, cc))

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(user),
	}, nil
}

// Refresh verifies a refresh token and mints a fresh access token carrying the
// user's CURRENT email and role, so a role change takes effect on next refresh.
// Access tokens presented here are rejected by class.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string, cc audit.ClientContext) (*dto.RefreshResponse, error) {
	claims, err := pkgjwt.Parse(uc.tokens.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if claims.TokenUse != pkgjwt.UseRefresh {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := pkgjwt.Generate(uc.tokens.Secret, user.ID, user.Email, user.Role,
		pkgjwt.UseAccess, uc.tokens.Issuer, uc.tokens.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	uc.recorder.Record(audit.TokenRefreshEvent(user.ID, cc))

	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Logout records the event; invalidation is client-side token discard, there
// is no server-side revocation list.
func (uc *UseCase) Logout(ctx context.Context, userID string, cc audit.ClientContext) {
	uc.recorder.Record(audit.LogoutEvent(userID, cc))
}

// GetProfile returns the public projection for the authenticated user.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

// UpdateProfile applies a self-service update (first/last name, email).
// An email collision surfaces as ErrEmailAlreadyExists via the unique index.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest, cc audit.ClientContext) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	changes := map[string]any{}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
		changes["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
		changes["lastName"] = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
		changes["email"] = *in.Email
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(audit.ProfileUpdateEvent(userID, changes, cc))

	out := dto.ToUserResponse(user)
	return &out, nil
}

// ChangePassword re-authenticates with the current password before accepting
// the new one, then clears the must-change-password flag.
func (uc *UseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest, cc audit.ClientContext) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.MustChangePassword = false
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}

	uc.recorder.Record(audit.ProfileUpdateEvent(userID, map[string]any{"password": "changed"}, cc))
	return nil
}

// ListUsers returns all users as public projections (admin only).
func (uc *UseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// CreateUser is the admin variant of Register. Without a password a temporary
// one is generated, returned exactly once, and the account is flagged to
// change it on first login. The audit entry is attributed to the admin.
func (uc *UseCase) CreateUser(ctx context.Context, adminID string, in dto.CreateUserRequest, cc audit.ClientContext) (*dto.CreateUserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}

	password := in.Password
	temporary := ""
	if password == "" {
		p, err := generateTempPassword()
		if err != nil {
			return nil, fmt.Errorf("generate temporary password: %w", err)
		}
		password, temporary = p, p
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:                 uuid.New().String(),
		Email:              in.Email,
		PasswordHash:       string(hash),
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Role:               in.Role,
		IsActive:           active,
		MustChangePassword: temporary != "",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(audit.UserCreateEvent(adminID, user.ID, user.Email, user.Role, cc))

	return &dto.CreateUserResponse{
		User:              dto.ToUserResponse(user),
		TemporaryPassword: temporary,
	}, nil
}

// UpdateUser applies an administrative update to any mutable field.
func (uc *UseCase) UpdateUser(ctx context.Context, adminID, targetID string, in dto.UpdateUserRequest, cc audit.ClientContext) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	changes := map[string]any{}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
		changes["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
		changes["lastName"] = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
		changes["email"] = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
		changes["role"] = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
		changes["isActive"] = *in.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.recorder.Record(audit.UserUpdateEvent(adminID, targetID, changes, cc))

	out := dto.ToUserResponse(user)
	return &out, nil
}

// DeactivateUser flips the active flag off. There is no reactivation endpoint;
// the flip is irreversible through the exposed API.
func (uc *UseCase) DeactivateUser(ctx context.Context, adminID, targetID string, cc audit.ClientContext) error {
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}

	uc.recorder.Record(audit.UserDeactivateEvent(adminID, targetID, cc))
	return nil
}

func (uc *UseCase) issueTokenPair(user *entity.User) (access, refresh string, err error) {
	access, err = pkgjwt.Generate(uc.tokens.Secret, user.ID, user.Email, user.Role,
		pkgjwt.UseAccess, uc.tokens.Issuer, uc.tokens.AccessTTL)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	refresh, err = pkgjwt.Generate(uc.tokens.Secret, user.ID, user.Email, user.Role,
		pkgjwt.UseRefresh, uc.tokens.Issuer, uc.tokens.RefreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("sign refresh token: %w", err)
	}
	return access, refresh, nil
}

const tempPasswordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789!@#$%"

func generateTempPassword() (string, error) {
	out := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordCharset[n.Int64()]
	}
	return string(out), nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"club-roster/internal/data/entity"
	"club-roster/internal/data/repository"
	"club-roster/internal/dto/request"
	"club-roster/internal/dto/response"
	"club-roster/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)
	Logout(ctx context.Context, accessToken string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Username uniqueness, case-insensitive
	existingUser, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username already taken")
	}

	// 3. Email uniqueness
	existingUser, err = s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 4. Optional club reference must exist
	var clubID *uuid.UUID
	if req.Club != nil {
		id, err := uuid.Parse(*req.Club)
		if err != nil {
			return nil, fmt.Errorf("validation failed: club: Must be a valid UUID")
		}
		club, err := s.repo.Club.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to check club", zap.Error(err), zap.String("club_id", id.String()))
			return nil, fmt.Errorf("failed to check club")
		}
		if club == nil {
			return nil, fmt.Errorf("club not found")
		}
		clubID = &id
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 6. Create user entity. Registration never reads a role from the
	// request; every new account starts as coach and promotion goes
	// through the admin-gated user update.
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         entity.RoleCoach,
		ClubID:       clubID,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by username, case-insensitive
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}

	// Unknown user and wrong password produce the same answer so the caller
	// cannot discover which usernames exist.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("account is deactivated")
	}

	// 3. Update last login timestamp
	now := time.Now()
	if err := s.repo.User.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("Failed to update last login",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue; the login itself succeeded
	}
	user.LastLogin = &now

	// 4. Issue token pair
	accessToken, refreshToken, err := s.issueTokens(user)
	if err != nil {
		s.log.Error("Failed to sign tokens", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.AuthToResponse(user, accessToken, refreshToken), nil
}

// Refresh rotates the token pair: a valid refresh token yields a brand-new
// access token and a brand-new refresh token. The old refresh token is not
// tracked server-side, so it stays technically verifiable until it expires;
// short lifetimes are the only mitigation.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	claims, err := utils.VerifyRefreshToken(s.config.JWT, refreshToken)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, fmt.Errorf("invalid or expired token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		s.log.Warn("Refresh token carries malformed user id", zap.String("user_id", claims.UserID))
		return nil, fmt.Errorf("invalid or expired token")
	}

	// Re-read the user so a deleted or deactivated account cannot keep
	// refreshing, and so the new access token carries the current role.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user for refresh", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("invalid or expired token")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	accessToken, newRefreshToken, err := s.issueTokens(user)
	if err != nil {
		s.log.Error("Failed to sign tokens", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("Tokens rotated", zap.String("user_id", user.ID.String()))

	return &response.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout is stateless: tokens are not tracked server-side, so the server only
// confirms the presented token was valid at call time and the client discards
// its copy.
func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := utils.VerifyAccessToken(s.config.JWT, accessToken)
	if err != nil {
		s.log.Warn("Logout with invalid token", zap.Error(err))
		return fmt.Errorf("invalid or expired token")
	}

	s.log.Info("User logged out", zap.String("user_id", claims.UserID))
	return nil
}

func (s *authService) issueTokens(user *entity.User) (accessToken, refreshToken string, err error) {
	accessToken, err = utils.SignAccessToken(s.config.JWT, user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", "", err
	}

	refreshToken, err = utils.SignRefreshToken(s.config.JWT, user.ID)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

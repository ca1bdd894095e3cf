package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/harulog/haru-diary/go-api-server/internal/model"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/database"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/logger"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/token"
	"github.com/harulog/haru-diary/go-api-server/internal/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db             *gorm.DB
	userRepository *user.UserRepository
	tokenManager   token.Manager
}

func NewAuthService(db *gorm.DB, userRepository *user.UserRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		tokenManager:   tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find user by sign_id
	found, err := a.userRepository.FindBySignID(ctx, a.db, request.SignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - sign_id not found", "sign_id", request.SignID)
			return nil, fmt.Errorf("error %w", ErrIncorrectSignIDPassword) // Security: don't reveal if sign_id exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "sign_id", request.SignID)
		return nil, fmt.Errorf("error %w", ErrIncorrectSignIDPassword)
	}

	// 3. Generate JWT tokens
	accessToken, err := a.tokenManager.GenerateAccessToken(found.SignID, found.Nickname)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(found.SignID, found.Nickname)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "sign_id", request.SignID)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) error {
	log := logger.FromContext(ctx)
	return database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.userRepository.IsExist(ctx, tx, request.SignID)
		if err != nil {
			log.Error("Failed to check user existence", "error", err)
			return fmt.Errorf("check user existence: %w", err)
		}
		if exists {
			log.Warn("User already exists", "sign_id", request.SignID)
			return fmt.Errorf("error %w", user.ErrUserAlreadyExists)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		newUser := model.NewUser(request.SignID, request.Nickname, request.Email, request.PhoneNumber, string(hashedPassword))
		if err := a.userRepository.Create(ctx, tx, newUser); err != nil {
			log.Error("Failed to create user", "error", err)
			return fmt.Errorf("create user: %w", err)
		}

		log.Info("User created successfully", "sign_id", request.SignID, "email", logger.MaskEmail(request.Email))
		return nil
	})
}

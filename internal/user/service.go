package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/harulog/haru-diary/go-api-server/internal/shared/database"
	"gorm.io/gorm"
)

type UserService struct {
	db             *gorm.DB
	userRepository *UserRepository
}

func NewUserService(db *gorm.DB, userRepository *UserRepository) *UserService {
	return &UserService{
		db:             db,
		userRepository: userRepository,
	}
}

func (s *UserService) GetProfile(ctx context.Context, signID string) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.userRepository.FindBySignID(ctx, tx, signID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 signID=%s %w", signID, ErrUserNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		response = &GetProfileResponse{
			ID:       user.ID,
			SignID:   user.SignID,
			Nickname: user.Nickname,
			Email:    user.Email,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

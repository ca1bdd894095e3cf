package user

import (
	"context"

	"github.com/harulog/haru-diary/go-api-server/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (u *UserRepository) IsExist(ctx context.Context, db *gorm.DB, signID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.User{}).
		Where("sign_id = ?", signID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (u *UserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	return db.WithContext(ctx).Create(user).Error
}

func (u *UserRepository) FindBySignID(ctx context.Context, db *gorm.DB, signID string) (*model.User, error) {
	var user model.User
	err := db.WithContext(ctx).Where("sign_id = ?", signID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

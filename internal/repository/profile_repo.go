package repository

import (
	"Atrium/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetByUserId(ctx context.Context, userID uint64) (*model.MemberProfile, error)
	Create(ctx context.Context, profile *model.MemberProfile) error
	Update(ctx context.Context, profile *model.MemberProfile) error
	UpdateType(ctx context.Context, userID uint64, membershipType string) error
}

type ProfileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &ProfileRepoImpl{db: db}
}

func (s *ProfileRepoImpl) GetByUserId(ctx context.Context, userID uint64) (*model.MemberProfile, error) {
	profile := &model.MemberProfile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(profile)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return profile, nil
}

func (s *ProfileRepoImpl) Create(ctx context.Context, profile *model.MemberProfile) error {
	result := s.db.WithContext(ctx).Create(profile)
	return result.Error
}

// Update 整行写入，合并语义由调用方先行完成
func (s *ProfileRepoImpl) Update(ctx context.Context, profile *model.MemberProfile) error {
	result := s.db.WithContext(ctx).
		Model(&model.MemberProfile{}).
		Where("user_id = ?", profile.UserID).
		Select("phone", "address", "membership_type", "status").
		Updates(profile)
	return result.Error
}

func (s *ProfileRepoImpl) UpdateType(ctx context.Context, userID uint64, membershipType string) error {
	result := s.db.WithContext(ctx).
		Model(&model.MemberProfile{}).
		Where("user_id = ?", userID).
		Update("membership_type", membershipType)
	return result.Error
}

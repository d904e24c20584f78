package repository

import (
	"Atrium/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type YouTubeLinkRepo interface {
	GetById(ctx context.Context, id uint64) (*model.YouTubeLink, error)
	List(ctx context.Context, category string) ([]*model.YouTubeLink, error)
	Create(ctx context.Context, link *model.YouTubeLink) error
	Update(ctx context.Context, link *model.YouTubeLink) error
	Delete(ctx context.Context, id uint64) (int64, error)
}

type YouTubeLinkRepoImpl struct {
	db *gorm.DB
}

func NewYouTubeLinkRepo(db *gorm.DB) YouTubeLinkRepo {
	return &YouTubeLinkRepoImpl{db: db}
}

func (s *YouTubeLinkRepoImpl) GetById(ctx context.Context, id uint64) (*model.YouTubeLink, error) {
	link := &model.YouTubeLink{}
	result := s.db.WithContext(ctx).First(link, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return link, nil
}

// List category 为空时返回全部，按创建时间倒序
func (s *YouTubeLinkRepoImpl) List(ctx context.Context, category string) ([]*model.YouTubeLink, error) {
	links := make([]*model.YouTubeLink, 0)
	query := s.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	result := query.Order("created_at DESC").Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}
	return links, nil
}

func (s *YouTubeLinkRepoImpl) Create(ctx context.Context, link *model.YouTubeLink) error {
	result := s.db.WithContext(ctx).Create(link)
	return result.Error
}

// Update 存在性由调用方先行确认，MySQL 下 RowsAffected 对等值写入不可靠
func (s *YouTubeLinkRepoImpl) Update(ctx context.Context, link *model.YouTubeLink) error {
	result := s.db.WithContext(ctx).
		Model(&model.YouTubeLink{}).
		Where("id = ?", link.ID).
		Select("title", "url", "category", "description").
		Updates(link)
	return result.Error
}

func (s *YouTubeLinkRepoImpl) Delete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.YouTubeLink{})
	return result.RowsAffected, result.Error
}

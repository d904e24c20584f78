package service

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type YouTubeService interface {
	ListLinks(ctx context.Context, category string) ([]*model.YouTubeLink, error)
	CreateLink(ctx context.Context, linkDTO *dto.YouTubeLinkDTO) (*model.YouTubeLink, error)
	UpdateLink(ctx context.Context, id uint64, linkDTO *dto.YouTubeLinkDTO) (*model.YouTubeLink, error)
	DeleteLink(ctx context.Context, id uint64) error
}

type YouTubeServiceImpl struct {
	linkRepo repository.YouTubeLinkRepo
}

func NewYouTubeService(linkRepo repository.YouTubeLinkRepo) YouTubeService {
	return &YouTubeServiceImpl{linkRepo: linkRepo}
}

var validLinkCategories = map[string]bool{
	consts.LinkCategoryWallHitting: true,
	consts.LinkCategoryLecture:     true,
	consts.LinkCategoryOther:       true,
}

// ListLinks 未识别的分类不做过滤，返回全部
func (s *YouTubeServiceImpl) ListLinks(ctx context.Context, category string) ([]*model.YouTubeLink, error) {
	if !validLinkCategories[category] {
		category = ""
	}
	return s.linkRepo.List(ctx, category)
}

func (s *YouTubeServiceImpl) CreateLink(ctx context.Context, linkDTO *dto.YouTubeLinkDTO) (*model.YouTubeLink, error) {
	link := &model.YouTubeLink{}
	if err := copier.Copy(link, linkDTO); err != nil {
		return nil, err
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *YouTubeServiceImpl) UpdateLink(ctx context.Context, id uint64, linkDTO *dto.YouTubeLinkDTO) (*model.YouTubeLink, error) {
	existing, err := s.linkRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrLinkNotFound
	}

	link := &model.YouTubeLink{}
	if err = copier.Copy(link, linkDTO); err != nil {
		return nil, err
	}
	link.ID = id

	if err = s.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	return s.linkRepo.GetById(ctx, id)
}

func (s *YouTubeServiceImpl) DeleteLink(ctx context.Context, id uint64) error {
	rows, err := s.linkRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrLinkNotFound
	}
	return nil
}

package service

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/repository"
	"context"
)

type MemberService interface {
	GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, *model.MemberProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) (*dto.UserDTO, *model.MemberProfile, error)
	GetContent(ctx context.Context, userID uint64) (string, *dto.MemberContentDTO, error)
}

type MemberServiceImpl struct {
	userRepo    repository.UserRepo
	profileRepo repository.ProfileRepo
}

func NewMemberService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo) MemberService {
	return &MemberServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// 会员自助修改允许的类型，admin 只能由管理端授予
var memberSelectableTypes = map[string]bool{
	consts.MembershipBasic:   true,
	consts.MembershipPremium: true,
	consts.MembershipVIP:     true,
}

// 各等级下发的内容
var tierContents = map[string]*dto.MemberContentDTO{
	consts.MembershipBasic: {
		Message:  "基础会员内容",
		Features: []string{"会员通讯", "基础支持"},
	},
	consts.MembershipPremium: {
		Message:  "高级会员内容",
		Features: []string{"会员通讯", "优先支持", "专属内容"},
	},
	consts.MembershipVIP: {
		Message:  "VIP会员内容",
		Features: []string{"会员通讯", "7x24支持", "专属内容", "专属活动"},
	},
}

// GetProfile 返回用户与档案，未建档时给出 basic/active 的默认视图
func (s *MemberServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, *model.MemberProfile, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	profile := user.Profile
	if profile == nil {
		profile = &model.MemberProfile{
			UserID:         userID,
			MembershipType: consts.MembershipBasic,
			Status:         consts.ProfileStatusActive,
		}
	}

	createdAt := user.CreatedAt
	userDTO := &dto.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: &createdAt,
	}
	return userDTO, profile, nil
}

// UpdateProfile 部分更新：缺省字段保持原值，无档案时惰性建档
func (s *MemberServiceImpl) UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.UpdateProfileDTO) (*dto.UserDTO, *model.MemberProfile, error) {
	if updateDTO.Name != nil && *updateDTO.Name == "" {
		return nil, nil, ErrNameRequired
	}
	if updateDTO.MembershipType != nil && !memberSelectableTypes[*updateDTO.MembershipType] {
		return nil, nil, ErrMembershipTypeInvalid
	}

	// 空字符串视为未填写，保留原值
	if updateDTO.Phone != nil && *updateDTO.Phone == "" {
		updateDTO.Phone = nil
	}
	if updateDTO.Address != nil && *updateDTO.Address == "" {
		updateDTO.Address = nil
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if updateDTO.Name != nil {
		if err = s.userRepo.UpdateUserName(ctx, userID, *updateDTO.Name); err != nil {
			return nil, nil, err
		}
	}

	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if profile == nil {
		profile = &model.MemberProfile{
			UserID:         userID,
			Phone:          updateDTO.Phone,
			Address:        updateDTO.Address,
			MembershipType: consts.MembershipBasic,
			Status:         consts.ProfileStatusActive,
		}
		if updateDTO.MembershipType != nil {
			profile.MembershipType = *updateDTO.MembershipType
		}
		if err = s.profileRepo.Create(ctx, profile); err != nil {
			return nil, nil, err
		}
	} else {
		if updateDTO.Phone != nil {
			profile.Phone = updateDTO.Phone
		}
		if updateDTO.Address != nil {
			profile.Address = updateDTO.Address
		}
		if updateDTO.MembershipType != nil {
			profile.MembershipType = *updateDTO.MembershipType
		}
		if err = s.profileRepo.Update(ctx, profile); err != nil {
			return nil, nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

// GetContent 按会员等级返回内容
func (s *MemberServiceImpl) GetContent(ctx context.Context, userID uint64) (string, *dto.MemberContentDTO, error) {
	profile, err := s.profileRepo.GetByUserId(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	membershipType := consts.MembershipBasic
	if profile != nil {
		membershipType = profile.MembershipType
	}

	content, ok := tierContents[membershipType]
	if !ok {
		content = tierContents[consts.MembershipBasic]
	}
	return membershipType, content, nil
}

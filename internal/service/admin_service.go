package service

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/pkg/security"
	"Atrium/internal/repository"
	"context"
)

type AdminService interface {
	GetPendingUsers(ctx context.Context) ([]*dto.AdminUserDTO, error)
	GetAllUsers(ctx context.Context) ([]*dto.AdminUserDTO, error)
	ApproveUser(ctx context.Context, userID uint64) error
	RejectUser(ctx context.Context, userID uint64) error
	UpdateMembershipType(ctx context.Context, userID uint64, membershipType string) error
	CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*dto.AdminUserDTO, error)
	DeleteUser(ctx context.Context, actorID uint64, actorEmail string, targetID uint64) error
}

type AdminServiceImpl struct {
	userRepo      repository.UserRepo
	profileRepo   repository.ProfileRepo
	mailService   MailService
	operatorEmail string
}

func NewAdminService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo, mailService MailService, operatorEmail string) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		mailService:   mailService,
		operatorEmail: operatorEmail,
	}
}

// 管理端可授予的会员类型，premium 只能由会员自助升级
var adminAssignableTypes = map[string]bool{
	consts.MembershipBasic: true,
	consts.MembershipVIP:   true,
	consts.MembershipAdmin: true,
}

func toAdminUserDTO(user *model.User) *dto.AdminUserDTO {
	userDTO := &dto.AdminUserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		membershipType := user.Profile.MembershipType
		userDTO.MembershipType = &membershipType
	}
	return userDTO
}

func (s *AdminServiceImpl) GetPendingUsers(ctx context.Context) ([]*dto.AdminUserDTO, error) {
	users, err := s.userRepo.GetPendingUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminUserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toAdminUserDTO(user))
	}
	return result, nil
}

func (s *AdminServiceImpl) GetAllUsers(ctx context.Context) ([]*dto.AdminUserDTO, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AdminUserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toAdminUserDTO(user))
	}
	return result, nil
}

// ApproveUser 批准后补建默认档案并异步通知申请人
func (s *AdminServiceImpl) ApproveUser(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err = s.userRepo.UpdateUserStatus(ctx, userID, consts.UserStatusApproved); err != nil {
		return err
	}

	if user.Profile == nil {
		if err = s.profileRepo.Create(ctx, &model.MemberProfile{
			UserID:         userID,
			MembershipType: consts.MembershipBasic,
			Status:         consts.ProfileStatusActive,
		}); err != nil {
			return err
		}
	}

	s.mailService.NotifyApproval(user.Email, user.Name)
	return nil
}

func (s *AdminServiceImpl) RejectUser(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err = s.userRepo.UpdateUserStatus(ctx, userID, consts.UserStatusRejected); err != nil {
		return err
	}

	s.mailService.NotifyRejection(user.Email, user.Name)
	return nil
}

// UpdateMembershipType 无档案时先建档再赋类型
func (s *AdminServiceImpl) UpdateMembershipType(ctx context.Context, userID uint64, membershipType string) error {
	if !adminAssignableTypes[membershipType] {
		return ErrMembershipTypeInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.Profile == nil {
		return s.profileRepo.Create(ctx, &model.MemberProfile{
			UserID:         userID,
			MembershipType: membershipType,
			Status:         consts.ProfileStatusActive,
		})
	}
	return s.profileRepo.UpdateType(ctx, userID, membershipType)
}

// CreateUser 管理员直接创建已批准账号，跳过审批流程
func (s *AdminServiceImpl) CreateUser(ctx context.Context, createDTO *dto.CreateUserDTO) (*dto.AdminUserDTO, error) {
	findUser, err := s.userRepo.GetUserByEmail(ctx, createDTO.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrEmailExist
	}

	membershipType := consts.MembershipBasic
	if createDTO.MembershipType != nil {
		if !adminAssignableTypes[*createDTO.MembershipType] {
			return nil, ErrMembershipTypeInvalid
		}
		membershipType = *createDTO.MembershipType
	}

	passwordHash, err := security.HashPassword(createDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    createDTO.Email,
		Password: passwordHash,
		Name:     createDTO.Name,
		Status:   consts.UserStatusApproved,
	}
	profile := &model.MemberProfile{
		MembershipType: membershipType,
		Status:         consts.ProfileStatusActive,
	}

	if err = s.userRepo.CreateUserWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	user.Profile = profile
	return toAdminUserDTO(user), nil
}

// DeleteUser 连带删除档案与经营数据。
// 运营者账号受保护，不能删除自己，admin 账号只有运营者能删。
func (s *AdminServiceImpl) DeleteUser(ctx context.Context, actorID uint64, actorEmail string, targetID uint64) error {
	if actorID == targetID {
		return ErrDeleteSelf
	}

	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if s.operatorEmail != "" && target.Email == s.operatorEmail {
		return ErrOperatorProtected
	}

	isOperator := s.operatorEmail != "" && actorEmail == s.operatorEmail
	if !isOperator && target.Profile != nil && target.Profile.MembershipType == consts.MembershipAdmin {
		return ErrDeleteAdmin
	}

	return s.userRepo.DeleteUser(ctx, targetID)
}

package service

import (
	"Atrium/internal/api/dto"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/pkg/redis"
	"Atrium/internal/pkg/security"
	"Atrium/internal/repository"
	"context"
)

type AuthService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register 提交注册申请，账号进入待审核状态，不签发 Token
func (s *AuthServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:    regDTO.Email,
		Password: passwordHash,
		Name:     regDTO.Name,
		Status:   consts.UserStatusPending,
	}

	return s.userRepo.CreateUser(ctx, user)
}

// Login 校验凭证并签发 7 天有效期的 Token。
// 未知邮箱与密码错误返回同一错误，避免账号枚举。
func (s *AuthServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, *dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	switch user.Status {
	case consts.UserStatusPending:
		return "", nil, ErrAccountPending
	case consts.UserStatusRejected:
		return "", nil, ErrAccountRejected
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	userDTO := &dto.UserDTO{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	return token, userDTO, nil
}

// Logout 将 Token 签名拉黑至其自然过期；未配置 Redis 时为空操作
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if !redis.Enabled() {
		return nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return redis.SetWithExpiration(ctx, "token:deny:"+signature, true, security.JWTExpirationTime)
}

package dto

import "time"

// UserActionDTO 审批类操作的目标用户
type UserActionDTO struct {
	UserID uint64 `json:"userId" validate:"required"`
}

// UpdateMembershipTypeDTO 会员类型变更
type UpdateMembershipTypeDTO struct {
	UserID         uint64 `json:"userId" validate:"required"`
	MembershipType string `json:"membershipType" validate:"required"`
}

// CreateUserDTO 管理员直接创建已批准用户
type CreateUserDTO struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Name           string  `json:"name" validate:"required"`
	MembershipType *string `json:"membershipType"`
}

// AdminUserDTO 管理端用户列表行，未建档时 MembershipType 为空
type AdminUserDTO struct {
	ID             uint64    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	MembershipType *string   `json:"membershipType"`
}

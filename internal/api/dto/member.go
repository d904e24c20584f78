package dto

// UpdateProfileDTO 会员资料部分更新，缺省字段保持原值
type UpdateProfileDTO struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	MembershipType *string `json:"membershipType"`
}

// MemberContentDTO 按会员等级下发的内容
type MemberContentDTO struct {
	Message  string   `json:"message"`
	Features []string `json:"features"`
}

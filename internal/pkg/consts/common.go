package consts

// 用户审批状态，pending -> approved / rejected 单向流转
const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
	UserStatusRejected = "rejected"
)

// 会员类型，vip / admin 视为管理角色
const (
	MembershipBasic   = "basic"
	MembershipPremium = "premium"
	MembershipVIP     = "vip"
	MembershipAdmin   = "admin"
)

const ProfileStatusActive = "active"

// 视频链接分类
const (
	LinkCategoryWallHitting = "wall_hitting"
	LinkCategoryLecture     = "lecture"
	LinkCategoryOther       = "other"
)

// 事业数据年份有效区间
const (
	BusinessYearMin = 2020
	BusinessYearMax = 2100
)

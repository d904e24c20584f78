package model

import "time"

type MemberProfile struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"uniqueIndex:idx_profile_user;not null" json:"userId"`
	Phone          *string   `gorm:"type:varchar(30)" json:"phone"`
	Address        *string   `gorm:"type:varchar(255)" json:"address"`
	MembershipType string    `gorm:"type:varchar(20);not null;default:'basic'" json:"membershipType"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (MemberProfile) TableName() string {
	return "member_profiles"
}

package model

import "time"

// BusinessData 月度经营数据，(user_id, year, month) 为业务主键
type BusinessData struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_user_year_month,priority:1" json:"userId"`
	Year   int    `gorm:"not null;uniqueIndex:idx_user_year_month,priority:2" json:"year"`
	Month  int    `gorm:"not null;uniqueIndex:idx_user_year_month,priority:3" json:"month"`

	// 营收
	TotalRevenue *float64 `json:"totalRevenue"`
	// 商品
	ProductName       *string  `gorm:"type:varchar(255)" json:"productName"`
	ProductPrice      *float64 `json:"productPrice"`
	ProductProfit     *float64 `json:"productProfit"`
	ProductSalesCount *int64   `json:"productSalesCount"`
	// 获客
	TotalLeads *int64 `json:"totalLeads"`
	NewLeads   *int64 `json:"newLeads"`
	// 广告
	AdSpend *float64 `json:"adSpend"`
	CPA     *float64 `gorm:"column:cpa" json:"cpa"`
	CPL     *float64 `gorm:"column:cpl" json:"cpl"`
	ROAS    *float64 `gorm:"column:roas" json:"roas"`
	// 社媒
	FollowerCount *int64 `json:"followerCount"`
	Impressions   *int64 `json:"impressions"`
	Reach         *int64 `json:"reach"`
	PostCount     *int64 `json:"postCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BusinessData) TableName() string {
	return "business_data"
}

package dto

// BusinessDataDTO 月度经营数据写入，指标字段缺省即存空
type BusinessDataDTO struct {
	Year  int `json:"year" validate:"required"`
	Month int `json:"month" validate:"required"`

	TotalRevenue      *float64 `json:"totalRevenue"`
	ProductName       *string  `json:"productName"`
	ProductPrice      *float64 `json:"productPrice"`
	ProductProfit     *float64 `json:"productProfit"`
	ProductSalesCount *int64   `json:"productSalesCount"`
	TotalLeads        *int64   `json:"totalLeads"`
	NewLeads          *int64   `json:"newLeads"`
	AdSpend           *float64 `json:"adSpend"`
	CPA               *float64 `json:"cpa"`
	CPL               *float64 `json:"cpl"`
	ROAS              *float64 `json:"roas"`
	FollowerCount     *int64   `json:"followerCount"`
	Impressions       *int64   `json:"impressions"`
	Reach             *int64   `json:"reach"`
	PostCount         *int64   `json:"postCount"`
}

package model

import "time"

type YouTubeLink struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	URL         string    `gorm:"type:varchar(512);not null" json:"url"`
	Category    string    `gorm:"type:varchar(20);not null;index:idx_link_category" json:"category"`
	Description *string   `gorm:"type:varchar(1024)" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (YouTubeLink) TableName() string {
	return "youtube_links"
}

package dto

// YouTubeLinkDTO 视频链接创建/更新
type YouTubeLinkDTO struct {
	Title       string  `json:"title" validate:"required"`
	URL         string  `json:"url" validate:"required,url"`
	Category    string  `json:"category" validate:"required,oneof=wall_hitting lecture other"`
	Description *string `json:"description"`
}

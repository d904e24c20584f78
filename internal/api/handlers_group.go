package api

import "Atrium/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler     *handler.AuthHandler
	MemberHandler   *handler.MemberHandler
	BusinessHandler *handler.BusinessHandler
	AdminHandler    *handler.AdminHandler
	YouTubeHandler  *handler.YouTubeHandler
}

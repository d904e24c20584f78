package api

import (
	"Atrium/internal/api/middleware"
	"Atrium/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			tokenGroup := authGroup.Group("")
			tokenGroup.Use(authMW)
			{
				tokenGroup.GET("/verify", group.AuthHandler.Verify)
				tokenGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		memberGroup := apiGroup.Group("/members")
		memberGroup.Use(authMW)
		{
			memberGroup.GET("/profile", group.MemberHandler.GetProfile)
			memberGroup.PUT("/profile", group.MemberHandler.UpdateProfile)
			memberGroup.GET("/content", group.MemberHandler.GetContent)
		}

		businessGroup := apiGroup.Group("/business")
		businessGroup.Use(authMW)
		{
			businessGroup.POST("/data", group.BusinessHandler.SaveData)
			businessGroup.GET("/data", group.BusinessHandler.GetData)
			businessGroup.GET("/data/:year/:month", group.BusinessHandler.GetMonth)
		}

		// 需要登录 & 管理角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(authMW, adminMW)
		{
			adminGroup.GET("/pending-users", group.AdminHandler.GetPendingUsers)
			adminGroup.GET("/all-users", group.AdminHandler.GetAllUsers)
			adminGroup.POST("/approve-user", group.AdminHandler.ApproveUser)
			adminGroup.POST("/reject-user", group.AdminHandler.RejectUser)
			adminGroup.POST("/update-membership-type", group.AdminHandler.UpdateMembershipType)
			adminGroup.POST("/create-user", group.AdminHandler.CreateUser)
			adminGroup.DELETE("/delete-user/:userId", group.AdminHandler.DeleteUser)
		}

		youtubeGroup := apiGroup.Group("/youtube")
		youtubeGroup.Use(authMW)
		{
			youtubeGroup.GET("/links", group.YouTubeHandler.ListLinks)

			linkAdminGroup := youtubeGroup.Group("")
			linkAdminGroup.Use(adminMW)
			{
				linkAdminGroup.POST("/links", group.YouTubeHandler.CreateLink)
				linkAdminGroup.PUT("/links/:id", group.YouTubeHandler.UpdateLink)
				linkAdminGroup.DELETE("/links/:id", group.YouTubeHandler.DeleteLink)
			}
		}
	}

	return r
}

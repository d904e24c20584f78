package wire

import (
	"Atrium/internal/api"
	"Atrium/internal/api/config"
	"Atrium/internal/api/handler"
	"Atrium/internal/api/middleware"
	"Atrium/internal/job"
	"Atrium/internal/pkg/cron"
	"Atrium/internal/repository"
	"Atrium/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	businessRepo := repository.NewBusinessDataRepo(db)
	linkRepo := repository.NewYouTubeLinkRepo(db)

	mailService := service.NewMailService()
	authService := service.NewAuthService(userRepo)
	memberService := service.NewMemberService(userRepo, profileRepo)
	businessService := service.NewBusinessService(businessRepo)
	adminService := service.NewAdminService(userRepo, profileRepo, mailService, cfg.Admin.OperatorEmail)
	youtubeService := service.NewYouTubeService(linkRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:     handler.NewAuthHandler(authService),
		MemberHandler:   handler.NewMemberHandler(memberService),
		BusinessHandler: handler.NewBusinessHandler(businessService),
		AdminHandler:    handler.NewAdminHandler(adminService),
		YouTubeHandler:  handler.NewYouTubeHandler(youtubeService),
	}

	authMW := middleware.AuthMiddleware(userRepo)
	adminMW := middleware.CheckAdmin(profileRepo, cfg.Admin.OperatorEmail)
	router := api.SetupRouter(handlers, authMW, adminMW)

	reminderJob := job.NewPendingReminderJob(userRepo, mailService, cfg.Admin.OperatorEmail)
	cronMgr := cron.NewCronManager(reminderJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}

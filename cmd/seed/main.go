package main

import (
	"Atrium/internal/api/config"
	"Atrium/internal/model"
	"Atrium/internal/pkg/consts"
	"Atrium/internal/pkg/database"
	"Atrium/internal/pkg/logger"
	"Atrium/internal/pkg/security"
	"Atrium/internal/repository"
	"context"
	"flag"
	log "log/slog"
	"os"
	"time"
)

// 初始化管理员账号与示例数据的命令行工具
func main() {
	email := flag.String("email", "", "管理员邮箱")
	password := flag.String("password", "", "管理员密码")
	name := flag.String("name", "管理员", "管理员姓名")
	sample := flag.Bool("sample", false, "同时写入示例经营数据与视频链接")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Error("email and password are required")
		flag.Usage()
		os.Exit(1)
	}

	if err := config.LoadConfig(); err != nil {
		log.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger.InitLogger()

	db, err := database.NewGormDB(&config.Cfg.DB)
	if err != nil {
		log.Error("failed to create database connection", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepo(db)

	adminUser, err := userRepo.GetUserByEmail(ctx, *email)
	if err != nil {
		log.Error("failed to query user", "err", err)
		os.Exit(1)
	}
	if adminUser != nil {
		log.Info("admin account already exists, skip", "email", *email)
	} else {
		passwordHash, err := security.HashPassword(*password)
		if err != nil {
			log.Error("failed to hash password", "err", err)
			os.Exit(1)
		}

		adminUser = &model.User{
			Email:    *email,
			Password: passwordHash,
			Name:     *name,
			Status:   consts.UserStatusApproved,
		}
		profile := &model.MemberProfile{
			MembershipType: consts.MembershipAdmin,
			Status:         consts.ProfileStatusActive,
		}
		if err = userRepo.CreateUserWithProfile(ctx, adminUser, profile); err != nil {
			log.Error("failed to create admin account", "err", err)
			os.Exit(1)
		}
		log.Info("admin account created", "email", *email, "user_id", adminUser.ID)
	}

	if *sample {
		seedSampleBusinessData(ctx, repository.NewBusinessDataRepo(db), adminUser.ID)
		seedSampleLinks(ctx, repository.NewYouTubeLinkRepo(db))
	}
}

// seedSampleBusinessData 为账号补一年的示例月度数据
func seedSampleBusinessData(ctx context.Context, businessRepo repository.BusinessDataRepo, userID uint64) {
	now := time.Now()
	for i := 0; i < 12; i++ {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		revenue := 80000 + float64(i)*2500
		leads := int64(30 + i*2)
		adSpend := 4000 + float64(i)*150
		followers := int64(1200 + i*40)

		rec := &model.BusinessData{
			UserID:        userID,
			Year:          month.Year(),
			Month:         int(month.Month()),
			TotalRevenue:  &revenue,
			TotalLeads:    &leads,
			AdSpend:       &adSpend,
			FollowerCount: &followers,
		}
		if err := businessRepo.Upsert(ctx, rec); err != nil {
			log.Error("failed to upsert sample business data", "year", rec.Year, "month", rec.Month, "err", err)
			continue
		}
	}
	log.Info("sample business data seeded", "user_id", userID, "months", 12)
}

func seedSampleLinks(ctx context.Context, linkRepo repository.YouTubeLinkRepo) {
	desc := "示例数据"
	links := []*model.YouTubeLink{
		{Title: "破局思维入门", URL: "https://www.youtube.com/watch?v=sample-wall-1", Category: consts.LinkCategoryWallHitting, Description: &desc},
		{Title: "经营数据讲座：看懂你的月报", URL: "https://www.youtube.com/watch?v=sample-lecture-1", Category: consts.LinkCategoryLecture, Description: &desc},
		{Title: "会员访谈精选", URL: "https://www.youtube.com/watch?v=sample-other-1", Category: consts.LinkCategoryOther, Description: &desc},
	}

	for _, link := range links {
		if err := linkRepo.Create(ctx, link); err != nil {
			log.Error("failed to create sample link", "title", link.Title, "err", err)
			continue
		}
		log.Info("sample link created", "title", link.Title, "id", link.ID)
	}
}

package job

import (
	"Atrium/internal/pkg/logger"
	"Atrium/internal/repository"
	"Atrium/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// PendingReminderJob 每日提醒运营者处理待审核的注册申请
type PendingReminderJob struct {
	userRepo      repository.UserRepo
	mailSvc       service.MailService
	operatorEmail string
}

func NewPendingReminderJob(userRepo repository.UserRepo, mailSvc service.MailService, operatorEmail string) *PendingReminderJob {
	return &PendingReminderJob{
		userRepo:      userRepo,
		mailSvc:       mailSvc,
		operatorEmail: operatorEmail,
	}
}

func (s *PendingReminderJob) Run() {
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, uuid.New().String())
	log.InfoContext(ctx, "start pending reminder job")

	if s.operatorEmail == "" {
		log.InfoContext(ctx, "operator email not configured, skip reminder")
		return
	}

	users, err := s.userRepo.GetPendingUsers(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to load pending users", "err", err)
		return
	}

	if len(users) == 0 {
		return
	}

	s.mailSvc.NotifyPendingReminder(s.operatorEmail, len(users))
	log.InfoContext(ctx, "pending reminder sent", "pending_count", len(users))
}

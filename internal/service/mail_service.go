package service

import (
	"Atrium/internal/api/config"
	"Atrium/internal/pkg/util"
	"fmt"
	"log/slog"
)

// MailService 审批结果与待办提醒的邮件通知。
// 所有投递都是尽力而为，失败只记日志，不影响主流程。
type MailService interface {
	NotifyApproval(email string, name string)
	NotifyRejection(email string, name string)
	NotifyPendingReminder(email string, pendingCount int)
}

type MailServiceImpl struct {
	enabled bool
}

func NewMailService() MailService {
	return &MailServiceImpl{enabled: config.Cfg.Mail.URL != ""}
}

func (s *MailServiceImpl) send(to string, subject string, html string) {
	if !s.enabled {
		return
	}
	go func() {
		if err := util.SendMail(to, subject, html); err != nil {
			slog.Error("邮件发送失败", "to", to, "subject", subject, "error", err)
		}
	}()
}

func (s *MailServiceImpl) NotifyApproval(email string, name string) {
	s.send(email, "您的账号已通过审核",
		fmt.Sprintf("<p>%s 您好，</p><p>您的账号已通过审核，现在可以登录使用会员服务。</p>", name))
}

func (s *MailServiceImpl) NotifyRejection(email string, name string) {
	s.send(email, "您的账号未通过审核",
		fmt.Sprintf("<p>%s 您好，</p><p>很抱歉，您的注册申请未通过审核。如有疑问请联系管理员。</p>", name))
}

func (s *MailServiceImpl) NotifyPendingReminder(email string, pendingCount int) {
	s.send(email, "有待审核的注册申请",
		fmt.Sprintf("<p>当前有 %d 个注册申请等待审核，请及时处理。</p>", pendingCount))
}

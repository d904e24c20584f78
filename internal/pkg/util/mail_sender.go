package util

import (
	"Atrium/internal/api/config"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var mailClient = resty.New().SetTimeout(5 * time.Second)

// SendMail 通过 HTTP 邮件网关投递一封邮件
func SendMail(to string, subject string, html string) error {
	mailCfg := config.Cfg.Mail

	resp, err := mailClient.R().
		SetHeader("Authorization", "Bearer "+mailCfg.ApiKey).
		SetBody(map[string]string{
			"from":    mailCfg.From,
			"to":      to,
			"subject": subject,
			"html":    html,
		}).
		Post(mailCfg.URL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode())
	}
	return nil
}

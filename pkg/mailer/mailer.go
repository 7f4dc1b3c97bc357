package mailer

import (
	"gopkg.in/gomail.v2"

	"shift-scheduler/backend/config"
)

// Notifier 通知发送接口
// 排班与调休流程中的通知都是尽力而为的旁路：调用方记录发送失败，
// 但绝不因此让主事务失败
type Notifier interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer 基于 SMTP 的 Notifier 实现
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer 创建 SMTP 邮件发送器
func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send 发送纯文本邮件
func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

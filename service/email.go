package service

import (
	"fmt"

	"moodlog/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendReminderEmail 发送每日心情记录提醒邮件
func (s *EmailService) SendReminderEmail(toEmail, username string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 EMAIL_ENABLED=true")
	}

	subject := "MoodLog - How was your day?"
	body := s.generateReminderEmailBody(username)

	return s.sendEmail(toEmail, subject, body)
}

// generateReminderEmailBody 生成提醒邮件内容
func (s *EmailService) generateReminderEmailBody(username string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #8b5cf6, #6d28d9); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .moods { text-align: center; font-size: 32px; letter-spacing: 12px; margin: 30px 0; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌙 MoodLog</h1>
        </div>
        <div class="content">
            <p>Hi <strong>%s</strong>,</p>
            <p>You haven't logged your mood today. Taking a moment to note how the day felt keeps your monthly analysis meaningful.</p>
            <div class="moods">😞 😕 😐 🙂 😄</div>
            <p>One rating and a sentence is all it takes.</p>
        </div>
        <div class="footer">
            <p>This reminder is sent at most once per day.</p>
            <p>© MoodLog - your personal mood journal</p>
        </div>
    </div>
</body>
</html>
`, username)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "MoodLog - email configuration test"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ Email configured</h2>
    <p>If you received this message, the MoodLog mail settings are correct.</p>
    <p style="color: #666;">- MoodLog</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}

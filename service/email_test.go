package service

import (
	"testing"

	"moodlog/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateReminderEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateReminderEmailBody("alice")
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "MoodLog")
	assert.Contains(t, body, "once per day")
}

func TestSendReminderEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendReminderEmail("alice@example.com", "alice")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "未启用")
}

func TestSendTestEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	assert.Error(t, s.SendTestEmail("alice@example.com"))
}

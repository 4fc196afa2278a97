package service

import (
	"fmt"
	"log"
	"time"

	"moodlog/models"

	"gorm.io/gorm"
)

// NeedsReminder 判断该用户在 now 所在的自然日是否还没有记录心情。
// 纯查询、无副作用，同一天内重复调用结果一致。
func NeedsReminder(store EntryStore, userID uint, now time.Time) (bool, error) {
	today := now.Format(models.EntryDateFormat)
	entry, err := store.Get(userID, today)
	if err != nil {
		return false, err
	}
	return entry == nil, nil
}

// ReminderService 每日提醒服务：对当天尚未记录心情的用户发送一封提醒邮件，
// 通过 reminder_logs 表保证同一用户同一天最多发送一次。
type ReminderService struct {
	db    *gorm.DB
	store EntryStore
	email *EmailService
	now   func() time.Time
}

// NewReminderService 创建提醒服务
func NewReminderService(db *gorm.DB, store EntryStore, email *EmailService) *ReminderService {
	return &ReminderService{
		db:    db,
		store: store,
		email: email,
		now:   time.Now,
	}
}

// RunOnce 执行一轮提醒检查，返回实际发送的邮件数量。
// 单个用户的检查或发送失败只记日志，不中断整轮。
func (s *ReminderService) RunOnce() (int, error) {
	today := s.now().Format(models.EntryDateFormat)

	var users []models.User
	if err := s.db.Where("status = ? AND email <> ''", models.UserStatusActive).Find(&users).Error; err != nil {
		return 0, fmt.Errorf("查询用户列表失败: %w", err)
	}

	sent := 0
	for _, user := range users {
		need, err := NeedsReminder(s.store, user.ID, s.now())
		if err != nil {
			log.Printf("提醒检查失败 user=%d: %v", user.ID, err)
			continue
		}
		if !need {
			continue
		}

		// 今天已发过则跳过
		var count int64
		if err := s.db.Model(&models.ReminderLog{}).
			Where("user_id = ? AND reminder_date = ?", user.ID, today).
			Count(&count).Error; err != nil {
			log.Printf("查询提醒记录失败 user=%d: %v", user.ID, err)
			continue
		}
		if count > 0 {
			continue
		}

		if err := s.email.SendReminderEmail(user.Email, user.Username); err != nil {
			log.Printf("提醒邮件发送失败 user=%d: %v", user.ID, err)
			continue
		}

		if err := s.db.Create(&models.ReminderLog{
			UserID:       user.ID,
			ReminderDate: today,
		}).Error; err != nil {
			log.Printf("写入提醒记录失败 user=%d: %v", user.ID, err)
		}
		sent++
	}
	return sent, nil
}

// StartDailyLoop 启动后台循环，每天本地时间 hour 点执行一轮 RunOnce
func (s *ReminderService) StartDailyLoop(hour int) {
	go func() {
		for {
			now := s.now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.Local)
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}
			time.Sleep(next.Sub(now))

			count, err := s.RunOnce()
			if err != nil {
				log.Printf("每日提醒执行失败: %v", err)
				continue
			}
			log.Printf("每日提醒完成，发送 %d 封", count)
		}
	}()
}

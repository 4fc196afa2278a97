package models

import (
	"time"
)

// ReminderLog 提醒发送记录，每个用户每个自然日最多一条，保证提醒幂等
type ReminderLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_reminder_user_date;not null"`
	ReminderDate string    `json:"reminder_date" gorm:"uniqueIndex:idx_reminder_user_date;size:10;not null"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 设置表名
func (ReminderLog) TableName() string {
	return "reminder_logs"
}

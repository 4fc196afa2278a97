package models

import (
	"time"

	"gorm.io/gorm"
)

// EntryDateFormat 日记条目日期格式（YYYY-MM-DD，补零）。
// 该格式保证字典序与时间序一致，窗口筛选和趋势排序都依赖这一点。
const EntryDateFormat = "2006-01-02"

// 心情评分常量，1 最差 5 最好
const (
	RatingTerrible  = 1
	RatingBad       = 2
	RatingOkay      = 3
	RatingGood      = 4
	RatingExcellent = 5
)

// MoodEntry 心情日记条目，每个用户每个自然日最多一条
type MoodEntry struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"uniqueIndex:idx_user_date;not null"`
	EntryDate   string         `json:"entry_date" gorm:"uniqueIndex:idx_user_date;size:10;not null"` // YYYY-MM-DD
	Rating      int            `json:"rating" gorm:"not null"`                                       // 1-5
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (MoodEntry) TableName() string {
	return "mood_entries"
}

// ratingLabels 评分标签，索引 = 评分值 - 1
var ratingLabels = [5]string{"Terrible", "Bad", "Okay", "Good", "Excellent"}

// ValidRating 评分是否在合法区间 1-5 内
func ValidRating(rating int) bool {
	return rating >= RatingTerrible && rating <= RatingExcellent
}

// RatingLabel 返回评分对应的英文标签，非法评分返回空串
func RatingLabel(rating int) string {
	if !ValidRating(rating) {
		return ""
	}
	return ratingLabels[rating-1]
}

// RatingLabels 按评分从低到高返回全部标签
func RatingLabels() []string {
	return ratingLabels[:]
}

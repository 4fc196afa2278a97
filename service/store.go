package service

import (
	"errors"
	"fmt"

	"moodlog/models"

	"gorm.io/gorm"
)

// EntryStore 心情条目存取接口，分析引擎和提醒逻辑对持久层的唯一依赖。
// Get 对不存在的日期返回 (nil, nil)；GetAll 没有数据时返回空 map 而不是错误。
type EntryStore interface {
	Get(userID uint, date string) (*models.MoodEntry, error)
	GetAll(userID uint) (map[string]models.MoodEntry, error)
	Put(userID uint, date string, rating int, description string) (*models.MoodEntry, error)
}

// DBEntryStore 基于 gorm 的 EntryStore 实现
type DBEntryStore struct {
	db *gorm.DB
}

// NewDBEntryStore 创建数据库存取实例
func NewDBEntryStore(db *gorm.DB) *DBEntryStore {
	return &DBEntryStore{db: db}
}

// Get 按日期获取单条记录，不存在时返回 (nil, nil)
func (s *DBEntryStore) Get(userID uint, date string) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := s.db.Where("user_id = ? AND entry_date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询心情记录失败: %w", err)
	}
	return &entry, nil
}

// GetAll 获取该用户全部记录，按日期字符串建 map
func (s *DBEntryStore) GetAll(userID uint) (map[string]models.MoodEntry, error) {
	var entries []models.MoodEntry
	if err := s.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("查询心情记录失败: %w", err)
	}

	result := make(map[string]models.MoodEntry, len(entries))
	for _, e := range entries {
		result[e.EntryDate] = e
	}
	return result, nil
}

// Put 按日期写入记录，同一天已有记录时覆盖（无删除路径）
func (s *DBEntryStore) Put(userID uint, date string, rating int, description string) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := s.db.Where("user_id = ? AND entry_date = ?", userID, date).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.MoodEntry{
			UserID:      userID,
			EntryDate:   date,
			Rating:      rating,
			Description: description,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("创建心情记录失败: %w", err)
		}
		return &entry, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询心情记录失败: %w", err)
	}

	updates := map[string]interface{}{
		"rating":      rating,
		"description": description,
	}
	if err := s.db.Model(&entry).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新心情记录失败: %w", err)
	}
	entry.Rating = rating
	entry.Description = description
	return &entry, nil
}

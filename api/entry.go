package api

import (
	"time"

	"moodlog/database"
	"moodlog/middleware"
	"moodlog/models"
	"moodlog/service"

	"github.com/gin-gonic/gin"
)

// EntryHandler 心情日记处理器
type EntryHandler struct{}

// NewEntryHandler 创建心情日记处理器
func NewEntryHandler() *EntryHandler {
	return &EntryHandler{}
}

// UpsertEntryRequest 写入心情记录请求
type UpsertEntryRequest struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Description string `json:"description" example:"Productive day at work, evening run felt great"`
}

// EntryListRequest 心情记录列表请求
type EntryListRequest struct {
	Page     int `form:"page" example:"1"`
	PageSize int `form:"page_size" example:"10"`
}

// CalendarDay 日历单日视图
type CalendarDay struct {
	Date   string `json:"date" example:"2024-06-15"`
	Rating int    `json:"rating" example:"4"`
}

// Upsert 写入某天的心情记录
// @Summary 写入某天的心情记录
// @Description 以日期为主键写入心情记录，同一天重复提交会覆盖旧记录（不提供删除）
// @Tags 心情记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "日期 (YYYY-MM-DD)"
// @Param request body UpsertEntryRequest true "心情记录信息"
// @Success 200 {object} Response{data=models.MoodEntry} "保存成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/entries/{date} [put]
func (h *EntryHandler) Upsert(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	date := c.Param("date")
	if _, err := time.ParseInLocation(models.EntryDateFormat, date, time.Local); err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	var req UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	store := service.NewDBEntryStore(database.DB)
	entry, err := store.Put(userID, date, req.Rating, req.Description)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "保存心情记录失败"))
		return
	}

	SuccessWithMessage(c, "保存成功", entry)
}

// Get 获取某天的心情记录
// @Summary 获取某天的心情记录
// @Description 根据日期获取当前用户的心情记录
// @Tags 心情记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "日期 (YYYY-MM-DD)"
// @Success 200 {object} Response{data=models.MoodEntry} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "当天没有记录"
// @Router /api/v1/entries/{date} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	date := c.Param("date")
	if _, err := time.ParseInLocation(models.EntryDateFormat, date, time.Local); err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	store := service.NewDBEntryStore(database.DB)
	entry, err := store.Get(userID, date)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if entry == nil {
		NotFound(c, "当天没有记录")
		return
	}

	Success(c, entry)
}

// List 获取心情记录列表
// @Summary 获取心情记录列表
// @Description 按日期倒序返回当前用户的心情记录，支持分页
// @Tags 心情记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} Response{data=PageResponse{list=[]models.MoodEntry}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req EntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.MoodEntry{}).Where("user_id = ?", userID)

	// 获取总数
	var total int64
	query.Count(&total)

	// 获取列表
	var entries []models.MoodEntry
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("entry_date DESC").Offset(offset).Limit(req.PageSize).Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     entries,
	})
}

// Calendar 获取某月的日历视图
// @Summary 获取某月的日历视图
// @Description 返回指定月份内每个有记录的日期及其评分，供客户端渲染日历
// @Tags 心情记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param year_month query string true "年月（格式：2024-06）"
// @Success 200 {object} Response{data=[]CalendarDay} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/entries/calendar [get]
func (h *EntryHandler) Calendar(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	yearMonth := c.Query("year_month")
	if yearMonth == "" {
		BadRequest(c, "year_month参数必填（格式：2024-06）")
		return
	}
	monthStart, err := time.ParseInLocation("2006-01", yearMonth, time.Local)
	if err != nil {
		BadRequest(c, "year_month格式错误，应为：2024-06")
		return
	}

	// 日期列为 YYYY-MM-DD 字符串，月份范围可直接用字符串比较
	first := monthStart.Format(models.EntryDateFormat)
	last := monthStart.AddDate(0, 1, -1).Format(models.EntryDateFormat)

	var entries []models.MoodEntry
	if err := database.DB.
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?", userID, first, last).
		Order("entry_date ASC").
		Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	days := make([]CalendarDay, 0, len(entries))
	for _, e := range entries {
		days = append(days, CalendarDay{Date: e.EntryDate, Rating: e.Rating})
	}

	Success(c, days)
}

// GetRatingLabels 获取评分标签列表
// @Summary 获取评分标签列表
// @Description 返回 1-5 分对应的英文标签，按分值从低到高排列
// @Tags 心情记录
// @Accept json
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/ratings [get]
func (h *EntryHandler) GetRatingLabels(c *gin.Context) {
	Success(c, models.RatingLabels())
}

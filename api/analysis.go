package api

import (
	"strconv"

	"moodlog/database"
	"moodlog/middleware"
	"moodlog/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler 月度分析处理器
type AnalysisHandler struct{}

// NewAnalysisHandler 创建月度分析处理器
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// GetMonthlyAnalysis 获取月度心情分析
// @Summary 获取月度心情分析
// @Description 对当前用户最近 window_days 天（默认 30 天）的心情记录做趋势分类、主题提取并生成洞察与建议。窗口内没有记录时返回引导性的默认报告。
// @Tags 分析
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param window_days query int false "回看窗口天数（1-365）" default(30)
// @Success 200 {object} Response{data=service.MonthlyAnalysis} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 500 {object} Response "分析失败"
// @Router /api/v1/analysis/monthly [get]
func (h *AnalysisHandler) GetMonthlyAnalysis(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	windowDays := service.DefaultWindowDays
	if s := c.Query("window_days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 365 {
			BadRequest(c, "window_days格式错误，应为 1-365 的整数")
			return
		}
		windowDays = n
	}

	analyzer := service.NewAnalyzer(service.NewDBEntryStore(database.DB))
	report, err := analyzer.Analyze(userID, windowDays)
	if err != nil {
		// 存储失败原样向上，由客户端决定重试
		InternalError(c, SafeErrorMessage(err, "分析失败"))
		return
	}

	Success(c, report)
}

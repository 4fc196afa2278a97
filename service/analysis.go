package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"moodlog/models"
)

// 情绪趋势三分类
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

const (
	// DefaultWindowDays 默认分析窗口
	DefaultWindowDays = 30

	// minTrendEntries 少于 7 条记录时数据太稀疏，不下趋势结论
	minTrendEntries = 7

	// trendThreshold 前后两半均分差超过 0.3 才认为情绪发生了有意义的变化
	trendThreshold = 0.3
)

// MonthlyAnalysis 月度分析报告（派生数据，不落库）
type MonthlyAnalysis struct {
	Period             string         `json:"period" example:"Last 30 days"`
	TotalDays          int            `json:"total_days" example:"30"`
	RatedDays          int            `json:"rated_days" example:"22"`
	AverageRating      float64        `json:"average_rating" example:"3.6"`
	RatingDistribution map[string]int `json:"rating_distribution"`
	EmotionalTrend     string         `json:"emotional_trend" example:"improving"`
	TopThemes          []string       `json:"top_themes"`
	Insights           []string       `json:"insights"`
	Recommendations    []string       `json:"recommendations"`
}

// Analyzer 月度分析编排器。持有条目存储和时钟，两者都可注入，便于测试。
type Analyzer struct {
	store EntryStore
	now   func() time.Time
}

// NewAnalyzer 创建分析器
func NewAnalyzer(store EntryStore) *Analyzer {
	return &Analyzer{
		store: store,
		now:   time.Now,
	}
}

// Analyze 拉取窗口内的记录并生成完整报告。
// 存储错误原样向上传播，由调用方决定如何呈现；评分非法（不在 1-5）的
// 记录在进入所有统计之前剔除。
func (a *Analyzer) Analyze(userID uint, windowDays int) (*MonthlyAnalysis, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	all, err := a.store.GetAll(userID)
	if err != nil {
		return nil, err
	}

	windowed := selectWindow(all, windowDays, a.now())

	if len(windowed) == 0 {
		return emptyAnalysis(windowDays), nil
	}

	// 评分分布与均分
	distribution := make(map[string]int, 5)
	for _, label := range models.RatingLabels() {
		distribution[label] = 0
	}
	sum := 0
	for _, e := range windowed {
		distribution[models.RatingLabel(e.Rating)]++
		sum += e.Rating
	}
	ratedDays := len(windowed)
	avgRating := roundToOneDecimal(float64(sum) / float64(ratedDays))

	trend := classifyTrend(windowed)
	themes := ExtractThemes(windowed)

	return &MonthlyAnalysis{
		Period:             periodLabel(windowDays),
		TotalDays:          windowDays,
		RatedDays:          ratedDays,
		AverageRating:      avgRating,
		RatingDistribution: distribution,
		EmotionalTrend:     trend,
		TopThemes:          themes,
		Insights:           GenerateInsights(ratedDays, avgRating, trend, themes),
		Recommendations:    GenerateRecommendations(avgRating, trend, themes),
	}, nil
}

// selectWindow 筛选出日期落在 [today-windowDays, ∞) 的记录。
// 下界按自然日计算（AddDate 而非固定 24h），恰好在 windowDays 天前的记录
// 包含在内；晚于今天的记录不做过滤，原样放行。评分非法的记录在此剔除。
func selectWindow(all map[string]models.MoodEntry, windowDays int, today time.Time) map[string]models.MoodEntry {
	cutoff := today.AddDate(0, 0, -windowDays).Format(models.EntryDateFormat)

	result := make(map[string]models.MoodEntry)
	for date, e := range all {
		// 日期键必须是合法的 YYYY-MM-DD，该格式下字典序即时间序
		if _, err := time.ParseInLocation(models.EntryDateFormat, date, time.Local); err != nil {
			continue
		}
		if !models.ValidRating(e.Rating) {
			continue
		}
		if date >= cutoff {
			result[date] = e
		}
	}
	return result
}

// classifyTrend 按日期排序后对半切分，比较前后两半的平均评分。
// 记录数为奇数时多出的一条归入后半。不足 7 条一律判为 stable。
func classifyTrend(entries map[string]models.MoodEntry) string {
	if len(entries) < minTrendEntries {
		return TrendStable
	}

	dates := make([]string, 0, len(entries))
	for date := range entries {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	half := len(dates) / 2
	firstMean := meanRating(entries, dates[:half])
	secondMean := meanRating(entries, dates[half:])

	diff := secondMean - firstMean
	switch {
	case diff > trendThreshold:
		return TrendImproving
	case diff < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanRating(entries map[string]models.MoodEntry, dates []string) float64 {
	if len(dates) == 0 {
		return 0
	}
	sum := 0
	for _, date := range dates {
		sum += entries[date].Rating
	}
	return float64(sum) / float64(len(dates))
}

// emptyAnalysis 窗口内无记录时的专用报告，不走通用规则
func emptyAnalysis(windowDays int) *MonthlyAnalysis {
	distribution := make(map[string]int, 5)
	for _, label := range models.RatingLabels() {
		distribution[label] = 0
	}
	return &MonthlyAnalysis{
		Period:             periodLabel(windowDays),
		TotalDays:          windowDays,
		RatedDays:          0,
		AverageRating:      0,
		RatingDistribution: distribution,
		EmotionalTrend:     TrendStable,
		TopThemes:          []string{},
		Insights:           []string{"No mood entries in this period yet. Log how today felt to get started."},
		Recommendations:    []string{"Begin tracking today. Even one sentence about your day counts."},
	}
}

func periodLabel(windowDays int) string {
	return fmt.Sprintf("Last %d days", windowDays)
}

// roundToOneDecimal 四舍五入到一位小数（远离零方向）
func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

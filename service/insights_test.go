package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInsights_ConsistencyTiers(t *testing.T) {
	// 三档恰好命中一条
	high := GenerateInsights(25, 3.5, TrendStable, nil)
	assert.Contains(t, high[0], "Excellent consistency")

	mid := GenerateInsights(15, 3.5, TrendStable, nil)
	assert.Contains(t, mid[0], "Good tracking")

	low := GenerateInsights(14, 3.5, TrendStable, nil)
	assert.Contains(t, low[0], "more regularly")
}

func TestGenerateInsights_MoodTiers(t *testing.T) {
	positive := GenerateInsights(20, 4.0, TrendStable, nil)
	assert.Contains(t, positive[1], "very positive")

	balanced := GenerateInsights(20, 3.0, TrendStable, nil)
	assert.Contains(t, balanced[1], "balanced")

	tough := GenerateInsights(20, 2.9, TrendStable, nil)
	assert.Contains(t, tough[1], "challenging")
}

func TestGenerateInsights_TrendMessage(t *testing.T) {
	improving := GenerateInsights(20, 3.5, TrendImproving, nil)
	assert.Len(t, improving, 3)
	assert.Contains(t, improving[2], "improving")

	declining := GenerateInsights(20, 3.5, TrendDeclining, nil)
	assert.Len(t, declining, 3)
	assert.Contains(t, declining[2], "downward")

	// stable 不追加趋势文案
	stable := GenerateInsights(20, 3.5, TrendStable, nil)
	assert.Len(t, stable, 2)
}

func TestGenerateInsights_ThemeSummary(t *testing.T) {
	insights := GenerateInsights(20, 3.5, TrendStable, []string{"Work", "Stress"})
	last := insights[len(insights)-1]
	assert.Contains(t, last, "Work, Stress")

	// 无主题则无汇总行
	insights2 := GenerateInsights(20, 3.5, TrendStable, nil)
	for _, s := range insights2 {
		assert.NotContains(t, s, "Recurring topics")
	}
}

func TestGenerateInsights_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, GenerateInsights(0, 0, TrendStable, nil))
}

func TestGenerateRecommendations_LowMood(t *testing.T) {
	recs := GenerateRecommendations(2.5, TrendStable, nil)
	assert.Len(t, recs, 2)
	assert.Contains(t, strings.Join(recs, " "), "talking to someone")
}

func TestGenerateRecommendations_ThemeRules(t *testing.T) {
	stress := GenerateRecommendations(3.5, TrendStable, []string{"Stress"})
	assert.Len(t, stress, 2)

	work := GenerateRecommendations(3.5, TrendStable, []string{"Work"})
	assert.Len(t, work, 1)
	assert.Contains(t, work[0], "cut-off time")

	social := GenerateRecommendations(3.5, TrendStable, []string{"Social"})
	assert.Len(t, social, 1)

	health := GenerateRecommendations(3.5, TrendStable, []string{"Health"})
	assert.Len(t, health, 1)

	// Learning/Achievement 没有专属建议规则
	other := GenerateRecommendations(3.5, TrendStable, []string{"Learning", "Achievement"})
	assert.Len(t, other, 3) // 回退到通用建议
}

func TestGenerateRecommendations_Fallback(t *testing.T) {
	recs := GenerateRecommendations(3.5, TrendStable, nil)
	assert.Len(t, recs, 3)
}

func TestGenerateRecommendations_CappedAtFour(t *testing.T) {
	// 低均分 + 下行趋势 + Stress 主题会命中 6 条，截断到前 4 条，
	// 低均分规则优先保留
	recs := GenerateRecommendations(2.0, TrendDeclining, []string{"Stress", "Work", "Social", "Health"})
	assert.Len(t, recs, 4)
	assert.Contains(t, recs[0], "lifts your mood")

	// 任意组合都不超过 4 条
	cases := []struct {
		avg    float64
		trend  string
		themes []string
	}{
		{1.0, TrendDeclining, []string{"Work", "Social", "Health", "Stress"}},
		{5.0, TrendImproving, nil},
		{3.0, TrendStable, []string{"Work"}},
		{2.9, TrendDeclining, nil},
	}
	for _, tc := range cases {
		got := GenerateRecommendations(tc.avg, tc.trend, tc.themes)
		assert.LessOrEqual(t, len(got), 4)
		assert.NotEmpty(t, got)
	}
}

package service

import (
	"strings"
)

// maxRecommendations 建议列表上限，规则再多也只保留前 4 条
const maxRecommendations = 4

// GenerateInsights 根据记录天数、平均评分、趋势和主题生成洞察文案。
// 各规则相互独立，按固定顺序追加；坚持度和情绪档位各自恰好命中一条。
func GenerateInsights(ratedDays int, avgRating float64, trend string, themes []string) []string {
	insights := make([]string, 0, 4)

	// 坚持度档位
	switch {
	case ratedDays >= 25:
		insights = append(insights, "Excellent consistency! You logged your mood almost every day.")
	case ratedDays >= 15:
		insights = append(insights, "Good tracking this period. Logging a few more days will sharpen your trends.")
	default:
		insights = append(insights, "Try to track your mood more regularly to get fuller insights.")
	}

	// 情绪档位
	switch {
	case avgRating >= 4.0:
		insights = append(insights, "Your overall mood has been very positive. Keep it up!")
	case avgRating >= 3.0:
		insights = append(insights, "Your mood has stayed fairly balanced this period.")
	default:
		insights = append(insights, "This period included some challenging days. Be kind to yourself.")
	}

	// 趋势文案，stable 不提示
	switch trend {
	case TrendImproving:
		insights = append(insights, "Your mood has been improving lately. Whatever you changed seems to be working.")
	case TrendDeclining:
		insights = append(insights, "Your mood has been trending downward. It may help to reflect on what changed.")
	}

	// 主题汇总
	if len(themes) > 0 {
		insights = append(insights, "Recurring topics in your notes: "+strings.Join(themes, ", ")+".")
	}

	return insights
}

// GenerateRecommendations 按固定顺序评估各条件规则，截断到前 4 条。
// 所有规则都未命中时回退到 3 条通用建议。
func GenerateRecommendations(avgRating float64, trend string, themes []string) []string {
	recs := make([]string, 0, 8)

	if avgRating < 3.0 {
		recs = append(recs,
			"Plan one small activity each day that usually lifts your mood.",
			"Consider talking to someone you trust about how you have been feeling.")
	}

	if trend == TrendDeclining {
		recs = append(recs,
			"Look back at your recent entries to spot what changed.",
			"If the downward trend continues, consider reaching out for support.")
	}

	if containsTheme(themes, "Stress") {
		recs = append(recs,
			"Try a short breathing or relaxation exercise when stress peaks.",
			"Pick one source of stress and reduce it this week.")
	}

	if containsTheme(themes, "Work") {
		recs = append(recs, "Protect your evenings: set a clear cut-off time for work.")
	}

	if containsTheme(themes, "Social") {
		recs = append(recs, "Keep investing time in the people who energize you.")
	}

	if containsTheme(themes, "Health") {
		recs = append(recs, "Your healthy habits show up in your notes. Keep them going.")
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Keep logging daily to build a fuller picture of your mood.",
			"Add a few words about what shaped each day.",
			"Review your month now and then to spot patterns early.")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func containsTheme(themes []string, label string) bool {
	for _, t := range themes {
		if t == label {
			return true
		}
	}
	return false
}

package service

import (
	"sort"
	"strings"
	"unicode"

	"moodlog/models"
)

// maxTopThemes 报告中最多展示的主题数
const maxTopThemes = 3

type themeCategory struct {
	Label string
	Stems []string
}

// themeTable 固定主题词表。声明顺序同时是同分并列时的排序依据，调整顺序会
// 改变报告输出，属于行为变更。
var themeTable = []themeCategory{
	{Label: "Work", Stems: []string{"work", "job", "meeting", "deadline", "boss", "office"}},
	{Label: "Social", Stems: []string{"friend", "family", "party", "dinner", "people"}},
	{Label: "Health", Stems: []string{"exercise", "gym", "run", "sleep", "sick", "doctor"}},
	{Label: "Learning", Stems: []string{"learn", "read", "study", "course", "book"}},
	{Label: "Stress", Stems: []string{"stress", "anxious", "worried", "overwhelm", "pressure"}},
	{Label: "Achievement", Stems: []string{"achieve", "finish", "complete", "win", "success", "proud"}},
}

// ExtractThemes 对窗口内全部笔记做固定词表的词干前缀计数，
// 返回计数非零、按计数降序排列的前 3 个主题标签。
// 计数与遍历顺序无关，同样输入必然得到同样输出；同分主题按词表声明顺序排列。
func ExtractThemes(entries map[string]models.MoodEntry) []string {
	var blob strings.Builder
	for _, e := range entries {
		blob.WriteString(strings.ToLower(e.Description))
		blob.WriteByte(' ')
	}

	words := splitWords(blob.String())

	scores := make([]int, len(themeTable))
	for i, theme := range themeTable {
		for _, stem := range theme.Stems {
			for _, word := range words {
				if strings.HasPrefix(word, stem) {
					scores[i]++
				}
			}
		}
	}

	// 稳定排序保证同分时保持词表声明顺序
	order := make([]int, len(themeTable))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	result := make([]string, 0, maxTopThemes)
	for _, idx := range order {
		if len(result) == maxTopThemes {
			break
		}
		if scores[idx] == 0 {
			continue
		}
		result = append(result, themeTable[idx].Label)
	}
	return result
}

// splitWords 按非字母数字边界切词，保证词干匹配锚定在词首
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package service

import (
	"testing"

	"moodlog/models"

	"github.com/stretchr/testify/assert"
)

func entriesWithNotes(notes ...string) map[string]models.MoodEntry {
	entries := make(map[string]models.MoodEntry, len(notes))
	for i, note := range notes {
		date := testToday.AddDate(0, 0, -i).Format(models.EntryDateFormat)
		entries[date] = models.MoodEntry{EntryDate: date, Rating: 3, Description: note}
	}
	return entries
}

func TestExtractThemes_Basic(t *testing.T) {
	entries := entriesWithNotes(
		"long day at work, another meeting about the deadline",
		"work again, boss was unhappy",
		"went for a run and slept early",
	)

	themes := ExtractThemes(entries)

	// Work 计数最高（work x2, meeting, deadline, boss），Health 其次
	assert.Equal(t, []string{"Work", "Health"}, themes)
}

func TestExtractThemes_PrefixBoundedAtWordStart(t *testing.T) {
	// "working" 以词干 work 开头，计入；"network" 虽包含 work 但不在词首，不计
	themes := ExtractThemes(entriesWithNotes("working late again"))
	assert.Equal(t, []string{"Work"}, themes)

	themes2 := ExtractThemes(entriesWithNotes("fixed the network"))
	assert.Empty(t, themes2)
}

func TestExtractThemes_CaseFolding(t *testing.T) {
	themes := ExtractThemes(entriesWithNotes("STRESSED about WORK"))
	assert.ElementsMatch(t, []string{"Work", "Stress"}, themes)
}

func TestExtractThemes_TopThreeNonZeroOnly(t *testing.T) {
	entries := entriesWithNotes(
		"work work work work",
		"stress stress stress",
		"friend friend",
		"gym",
	)

	themes := ExtractThemes(entries)

	assert.Len(t, themes, 3)
	assert.Equal(t, []string{"Work", "Stress", "Social"}, themes)
}

func TestExtractThemes_EmptyAndNoMatches(t *testing.T) {
	assert.Empty(t, ExtractThemes(nil))
	assert.Empty(t, ExtractThemes(entriesWithNotes("", "", "")))
	assert.Empty(t, ExtractThemes(entriesWithNotes("the weather was nice")))
}

func TestExtractThemes_TieBreakFollowsTableOrder(t *testing.T) {
	// Social 和 Work 各计 1 次，词表中 Work 声明在前
	themes := ExtractThemes(entriesWithNotes("met a friend after work"))
	assert.Equal(t, []string{"Work", "Social"}, themes)

	// 词在文本中的先后顺序不影响结果
	themes2 := ExtractThemes(entriesWithNotes("work came up while seeing a friend"))
	assert.Equal(t, []string{"Work", "Social"}, themes2)
}

func TestExtractThemes_Deterministic(t *testing.T) {
	entries := entriesWithNotes(
		"stressful meeting at work",
		"dinner with family and friends",
		"morning run then study session",
	)

	first := ExtractThemes(entries)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ExtractThemes(entries))
	}
}

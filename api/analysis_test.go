package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"moodlog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisHandler_GetMonthlyAnalysis(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 最近 10 天的记录，评分稳定
	rows := sqlmock.NewRows(entryColumns)
	now := time.Now()
	for i := 0; i < 10; i++ {
		date := now.AddDate(0, 0, -i).Format(models.EntryDateFormat)
		rows.AddRow(i+1, 1, date, 3, "regular work day", now, now, nil)
	}
	mock.ExpectQuery("SELECT .* FROM `mood_entries`").
		WithArgs(uint(1)).
		WillReturnRows(rows)

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/analysis/monthly", NewAnalysisHandler().GetMonthlyAnalysis)

	req := httptest.NewRequest("GET", "/analysis/monthly", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Last 30 days", data["period"])
	assert.Equal(t, float64(10), data["rated_days"])
	assert.Equal(t, float64(3.0), data["average_rating"])
	assert.Equal(t, "stable", data["emotional_trend"])
	assert.NotEmpty(t, data["insights"])
	assert.NotEmpty(t, data["recommendations"])
	dist := data["rating_distribution"].(map[string]interface{})
	assert.Equal(t, float64(10), dist["Okay"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisHandler_GetMonthlyAnalysis_CustomWindow(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 只有 20 天前的一条记录，7 天窗口应该取不到
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `mood_entries`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, now.AddDate(0, 0, -20).Format(models.EntryDateFormat), 4, "old entry", now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/analysis/monthly", NewAnalysisHandler().GetMonthlyAnalysis)

	req := httptest.NewRequest("GET", "/analysis/monthly?window_days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Last 7 days", data["period"])
	assert.Equal(t, float64(0), data["rated_days"])
	insights := data["insights"].([]interface{})
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0], "No mood entries")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisHandler_GetMonthlyAnalysis_InvalidWindow(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/analysis/monthly", NewAnalysisHandler().GetMonthlyAnalysis)

	for _, q := range []string{"window_days=0", "window_days=366", "window_days=abc"} {
		req := httptest.NewRequest("GET", "/analysis/monthly?"+q, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, q)
	}
}

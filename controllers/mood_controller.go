package controllers

import (
	"net/http"
	"time"

	"github.com/Ahsin6/Mood-Tracker/config"
	"github.com/Ahsin6/Mood-Tracker/models"
	"github.com/Ahsin6/Mood-Tracker/services"

	"github.com/gin-gonic/gin"
)

const recentLimit = 5

type MoodController struct {
	store *services.MoodStore
}

func NewMoodController(store *services.MoodStore) *MoodController {
	return &MoodController{store: store}
}

// LogMood 处理心情记录提交
func (mc *MoodController) LogMood(c *gin.Context) {
	var req models.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// 接口层拒绝目录之外的标签，存储层本身不校验
	if !models.IsCatalogMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未知的心情标签"})
		return
	}

	if err := mc.store.Log(c.Request.Context(), req.Mood, req.Note); err != nil {
		config.Logger.Errorw("记录心情失败", "mood", req.Mood, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "记录心情失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "心情记录成功"})
}

// GetDashboard 返回指定日期的看板数据（统计、最近记录、日期范围）
// 读取失败时降级为空数据并附带提示，不返回错误状态码
func (mc *MoodController) GetDashboard(c *gin.Context) {
	resp := models.DashboardResponse{
		Tally:    map[string]int{},
		Recent:   []models.RecentEntryResponse{},
		SheetURL: mc.store.Handle().URL(),
	}

	entries, err := mc.store.LoadAll(c.Request.Context())
	if err != nil {
		config.Logger.Errorw("读取心情数据失败", "error", err)
		resp.Error = "读取心情数据失败"
	}
	resp.Total = len(entries)
	resp.MinDate, resp.MaxDate = services.DateBounds(entries)

	// 默认选中数据中的最新日期，无数据时选今天
	date := c.Query("date")
	if date == "" {
		if resp.MaxDate != "" {
			date = resp.MaxDate
		} else {
			date = time.Now().Format(models.DateLayout)
		}
	}
	resp.Date = date

	tally, order := services.Tally(entries, date)
	resp.Tally = tally
	resp.MoodOrder = order

	for _, e := range services.Recent(entries, date, recentLimit) {
		resp.Recent = append(resp.Recent, models.RecentEntryResponse{
			Timestamp: e.Timestamp.Format(models.TimestampLayout),
			Time:      e.Timestamp.Format("15:04"),
			Mood:      e.Mood,
			Note:      e.Note,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetCatalog 返回固定的心情目录
func (mc *MoodController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, models.CatalogResponse{Moods: models.MoodCatalog})
}

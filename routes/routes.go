package routes

import (
	"github.com/Ahsin6/Mood-Tracker/controllers"
	"github.com/Ahsin6/Mood-Tracker/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *services.MoodStore, refreshSeconds int) {
	moodController := controllers.NewMoodController(store)
	dashboardController := controllers.NewDashboardController(refreshSeconds)

	// 看板页面
	r.GET("/", dashboardController.Index)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/moods", moodController.LogMood)
		public.GET("/moods", moodController.GetDashboard)
		public.GET("/catalog", moodController.GetCatalog)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

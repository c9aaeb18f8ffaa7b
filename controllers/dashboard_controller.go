package controllers

import (
	"net/http"

	"github.com/Ahsin6/Mood-Tracker/models"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	refreshSeconds int
}

func NewDashboardController(refreshSeconds int) *DashboardController {
	return &DashboardController{refreshSeconds: refreshSeconds}
}

// Index 渲染心情看板页面
func (dc *DashboardController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"moods":          models.MoodCatalog,
		"refreshSeconds": dc.refreshSeconds,
	})
}
